package economics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetApply_FixedTier_OverridesPriceAndFCR(t *testing.T) {
	base := DefaultInputs()
	base.PricePer1KTokens = 9.99
	base.FCR = 0.10

	nano, err := PresetByName(DefaultPresets(), "Nano (barato)")
	require.NoError(t, err)

	got := nano.Apply(base)

	assert.Equal(t, 0.20, got.PricePer1KTokens)
	assert.Equal(t, 0.55, got.FCR)
	assert.Equal(t, base.Tickets, got.Tickets, "non-preset fields must be preserved")
	assert.Equal(t, base.HandlingTimeMinutes, got.HandlingTimeMinutes)
}

func TestPresetApply_Custom_KeepsCallerValues(t *testing.T) {
	base := DefaultInputs()
	base.PricePer1KTokens = 1.15
	base.FCR = 0.91

	custom, err := PresetByName(DefaultPresets(), CustomPreset)
	require.NoError(t, err)

	assert.True(t, custom.IsCustom())
	assert.Equal(t, base, custom.Apply(base))
}

func TestPresetByName_Unknown_ReturnsError(t *testing.T) {
	_, err := PresetByName(DefaultPresets(), "Mega")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mega")
	assert.Contains(t, err.Error(), DefaultPresetName)
}

func TestDefaultInputs_MatchDefaultPreset(t *testing.T) {
	pro, err := PresetByName(DefaultPresets(), DefaultPresetName)
	require.NoError(t, err)

	in := DefaultInputs()
	assert.Equal(t, in, pro.Apply(in))
}
