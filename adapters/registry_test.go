package adapters

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tamil182006/AI-Stylist-manoj/internal/types"
)

func TestForSource(t *testing.T) {
	config := types.DefaultConfig()
	logger := logrus.New()

	tests := []struct {
		name     string
		expected string
	}{
		{"myntra", "Myntra"},
		{"Myntra", "Myntra"},
		{"myntra.com", "Myntra"},
		{"ajio", "Ajio"},
		{" ajio.com ", "Ajio"},
	}

	for _, tt := range tests {
		site, ok := ForSource(tt.name, config, logger)
		require.True(t, ok, "expected adapter for %q", tt.name)
		assert.Equal(t, tt.expected, site.Name())
	}

	_, ok := ForSource("flipkart", config, logger)
	assert.False(t, ok)
}

func TestFromConfig_SkipsUnknownSources(t *testing.T) {
	config := types.DefaultConfig()
	config.Sources = []string{"myntra", "flipkart", "ajio"}

	sites := FromConfig(config, logrus.New())

	require.Len(t, sites, 2)
	assert.Equal(t, "Myntra", sites[0].Name())
	assert.Equal(t, "Ajio", sites[1].Name())
}
