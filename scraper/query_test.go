package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		colors   []string
		occasion string
		expected string
	}{
		{"formal with color", "Formal Business Attire", []string{"Navy Blue", "Charcoal Grey"}, "Formal", "navy blue formal shirt men"},
		{"smart casual", "Smart Casual", []string{"Olive Green"}, "Semi-Formal", "olive green casual shirt men"},
		{"streetwear no colors", "Casual Streetwear", nil, "Casual", "tshirt men"},
		{"ethnic", "Traditional Ethnic", []string{"Maroon"}, "Formal", "maroon kurta men"},
		{"sporty", "Sporty Athletic", []string{"Black"}, "Casual", "black sports tshirt men"},
		{"unknown style falls back", "Avant Garde", []string{"Red"}, "Party", "red shirt men"},
		{"unknown style no colors", "Avant Garde", nil, "", "shirt men"},
		{"empty first color ignored", "Smart Casual", []string{""}, "", "casual shirt men"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildSearchQuery(tt.style, tt.colors, tt.occasion))
		})
	}
}

func TestBuildSearchQuery_Deterministic(t *testing.T) {
	first := BuildSearchQuery("Party Evening Wear", []string{"Gold"}, "Party")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildSearchQuery("Party Evening Wear", []string{"Gold"}, "Party"))
	}
}

func TestApplyGender(t *testing.T) {
	assert.Equal(t, "formal shirt women", applyGender("formal shirt men", "women"))
	assert.Equal(t, "formal shirt women", applyGender("formal shirt men", "Women"))
	assert.Equal(t, "formal shirt men", applyGender("formal shirt men", "men"))
	assert.Equal(t, "formal shirt men", applyGender("formal shirt men", ""))
	assert.Equal(t, "navy blue kurta women", applyGender("navy blue kurta men", "women"))
}
