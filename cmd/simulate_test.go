package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-product-ops/productops/economics"
)

func parseSimulationFlags(t *testing.T, args ...string) (string, economics.CostInputs, error) {
	t.Helper()
	fs := simulationFlags()
	require.NoError(t, fs.Parse(args))
	return resolveSimulation(fs, builtinDefaults())
}

func TestResolveSimulation_NoFlags_UsesDefaults(t *testing.T) {
	preset, in, err := parseSimulationFlags(t)

	require.NoError(t, err)
	assert.Equal(t, economics.DefaultPresetName, preset)
	assert.Equal(t, economics.DefaultInputs(), in)
}

func TestResolveSimulation_FixedPreset_IgnoresPriceAndFCR(t *testing.T) {
	preset, in, err := parseSimulationFlags(t, "--preset", "Ultra (caro)", "--price", "0.01", "--fcr", "0.2", "--tickets", "250")

	require.NoError(t, err)
	assert.Equal(t, "Ultra (caro)", preset)
	assert.Equal(t, 2.50, in.PricePer1KTokens)
	assert.Equal(t, 0.85, in.FCR)
	assert.Equal(t, 250, in.Tickets)
}

func TestResolveSimulation_Custom_UsesFlags(t *testing.T) {
	_, in, err := parseSimulationFlags(t, "--preset", "Custom", "--price", "1.1", "--fcr", "0.9", "--aht", "30", "--hourly-cost", "40", "--tokens-per-ticket", "1500")

	require.NoError(t, err)
	assert.Equal(t, economics.CostInputs{
		Tickets:             1000,
		TokensPerTicket:     1500,
		PricePer1KTokens:    1.1,
		FCR:                 0.9,
		HourlyAgentCost:     40,
		HandlingTimeMinutes: 30,
	}, in)
}

func TestResolveSimulation_OutOfRange_ReturnsError(t *testing.T) {
	tests := []struct {
		name string
		args []string
		sub  string
	}{
		{"zero tickets", []string{"--tickets", "0"}, "tickets"},
		{"negative tokens", []string{"--tokens-per-ticket", "-1"}, "tokens-per-ticket"},
		{"fcr above one", []string{"--preset", "Custom", "--fcr", "1.2"}, "fcr"},
		{"negative price", []string{"--preset", "Custom", "--price", "-0.5"}, "price"},
		{"negative hourly cost", []string{"--hourly-cost", "-3"}, "hourly-cost"},
		{"negative aht", []string{"--aht", "-1"}, "aht"},
		{"unknown preset", []string{"--preset", "Mega"}, "unknown preset"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := parseSimulationFlags(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.sub)
		})
	}
}
