package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"radixconv/internal/domain/types"
)

func TestPreferences_Validate(t *testing.T) {
	assert.NoError(t, types.DefaultPreferences().Validate())

	p := types.DefaultPreferences()
	p.DefaultFrom = 1
	assert.ErrorContains(t, p.Validate(), "default_from")

	p = types.DefaultPreferences()
	p.DefaultTo = 37
	assert.ErrorContains(t, p.Validate(), "default_to")

	p = types.DefaultPreferences()
	p.LogLevel = "loud"
	assert.ErrorContains(t, p.Validate(), "log_level")
}

func TestPreferences_WithDefaults(t *testing.T) {
	got := types.Preferences{DefaultTo: 16}.WithDefaults()
	assert.Equal(t, types.Preferences{DefaultFrom: 10, DefaultTo: 16, LogLevel: "info"}, got)
}

func TestRadix(t *testing.T) {
	assert.True(t, types.Radix(2).Valid())
	assert.True(t, types.Radix(36).Valid())
	assert.False(t, types.Radix(1).Valid())
	assert.False(t, types.Radix(37).Valid())
	assert.Equal(t, "16", types.Radix(16).String())
}
