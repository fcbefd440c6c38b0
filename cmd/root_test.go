package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ai-product-ops/productops/design"
	"github.com/ai-product-ops/productops/economics"
)

func TestPrintSimulation_ShowsCostsAndAssessment(t *testing.T) {
	// GIVEN the default Pro simulation
	sim := design.NewSimulation(economics.DefaultPresetName, economics.DefaultInputs())

	// WHEN printed
	var buf bytes.Buffer
	printSimulation(&buf, sim)
	output := buf.String()

	// THEN the three cost figures and the verdict appear
	assert.Contains(t, output, "TI vs SI Simulation")
	assert.Contains(t, output, "Pro (equilibrado)")
	assert.Contains(t, output, "Tokens total         : 800000")
	assert.Contains(t, output, "Coste TI (API)       : 640.00 €")
	assert.Contains(t, output, "Coste Operativo      : 1750.00 €")
	assert.Contains(t, output, "COSTE TOTAL          : 2390.00 €")
	assert.Contains(t, output, "[warning]")
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"init", "goal", "pipeline", "roles", "metrics", "guardrails", "simulate", "export", "preview"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}
