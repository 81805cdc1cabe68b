package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, valid := range []string{"top", "bottom", "shoes", "accessories"} {
		c, err := ParseCategory(valid)
		require.NoError(t, err)
		assert.Equal(t, Category(valid), c)
		assert.True(t, c.Valid())
	}

	for _, invalid := range []string{"", "hats", "TOP", "full_body"} {
		_, err := ParseCategory(invalid)
		assert.ErrorIs(t, err, ErrInvalidCategory, "ParseCategory(%q)", invalid)
	}
}

func TestProductListing_JSONShape(t *testing.T) {
	listing := ProductListing{
		ID:       "myntra-1700000000000-0",
		Name:     "Roadster Slim Fit Shirt",
		Price:    "Rs. 799",
		ImageURL: "https://assets.myntassets.com/1.jpg",
		Category: CategoryTop,
		Source:   "Myntra",
	}

	data, err := json.Marshal(listing)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Optional fields stay off the wire when empty
	assert.NotContains(t, decoded, "brand")
	assert.NotContains(t, decoded, "originalPrice")
	assert.NotContains(t, decoded, "discount")
	assert.NotContains(t, decoded, "buyLink")

	assert.Equal(t, "top", decoded["category"])
	assert.Equal(t, "https://assets.myntassets.com/1.jpg", decoded["image"])
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.True(t, config.UseHeadlessBrowser)
	assert.Positive(t, config.NavigationTimeout)
	assert.Positive(t, config.SelectorTimeout)
	assert.Greater(t, config.NavigationTimeout, config.SelectorTimeout)
	assert.Positive(t, config.DefaultLimit)
	assert.NotEmpty(t, config.Sources)
}
