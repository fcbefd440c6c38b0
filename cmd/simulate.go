package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ai-product-ops/productops/design"
	"github.com/ai-product-ops/productops/economics"
)

var saveSimulation bool // Store the snapshot in the session file

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the TI vs SI cost model",
	Long: "Compute API (TI) cost, human rework cost and total (SI) cost for a model preset. " +
		"Unset flags fall back to defaults.yaml. With --save the result is stored in the session file.",
	Run: func(cmd *cobra.Command, args []string) {
		defaults := mustLoadDefaults()

		preset, in, err := resolveSimulation(cmd.Flags(), defaults)
		if err != nil {
			logrus.Fatalf("Invalid simulation inputs: %v", err)
		}
		logrus.Infof("Simulating preset %q: %+v", preset, in)

		sim := design.NewSimulation(preset, in)
		printSimulation(os.Stdout, sim)

		if !saveSimulation {
			return
		}
		st, err := design.LoadState(statePath)
		if err != nil {
			logrus.Fatalf("Failed to load state: %v", err)
		}
		st.Simulation = sim
		if err := design.SaveState(statePath, st); err != nil {
			logrus.Fatalf("Failed to save state: %v", err)
		}
		logrus.Infof("Simulation stored in %s", statePath)
	},
}

// simulationFlags defines the cost model inputs. Defaults shown in help are
// the built-ins; defaults.yaml applies to every flag left unset.
func simulationFlags() *pflag.FlagSet {
	d := economics.DefaultInputs()
	fs := pflag.NewFlagSet("simulate", pflag.ContinueOnError)
	fs.String("preset", economics.DefaultPresetName, "Model preset (see defaults.yaml); \"Custom\" takes --price and --fcr")
	fs.Int("tickets", d.Tickets, "Tickets per period")
	fs.Int("tokens-per-ticket", d.TokensPerTicket, "Estimated tokens per ticket")
	fs.Float64("price", d.PricePer1KTokens, "Model cost per 1k tokens (Custom preset only)")
	fs.Float64("fcr", d.FCR, "Estimated first contact resolution, 0..1 (Custom preset only)")
	fs.Float64("hourly-cost", d.HourlyAgentCost, "Hourly cost of a human agent")
	fs.Float64("aht", d.HandlingTimeMinutes, "Handling time in minutes of a ticket that bounces to a human")
	return fs
}

// resolveSimulation merges explicitly set flags over the defaults, applies
// the preset, and enforces the input ranges the cost model relies on.
func resolveSimulation(fs *pflag.FlagSet, d Defaults) (string, economics.CostInputs, error) {
	name, _ := fs.GetString("preset")
	preset, err := economics.PresetByName(d.Presets, name)
	if err != nil {
		return "", economics.CostInputs{}, err
	}

	in := d.Simulation
	if fs.Changed("tickets") {
		in.Tickets, _ = fs.GetInt("tickets")
	}
	if fs.Changed("tokens-per-ticket") {
		in.TokensPerTicket, _ = fs.GetInt("tokens-per-ticket")
	}
	if fs.Changed("price") {
		in.PricePer1KTokens, _ = fs.GetFloat64("price")
	}
	if fs.Changed("fcr") {
		in.FCR, _ = fs.GetFloat64("fcr")
	}
	if fs.Changed("hourly-cost") {
		in.HourlyAgentCost, _ = fs.GetFloat64("hourly-cost")
	}
	if fs.Changed("aht") {
		in.HandlingTimeMinutes, _ = fs.GetFloat64("aht")
	}
	if !preset.IsCustom() && (fs.Changed("price") || fs.Changed("fcr")) {
		logrus.Warnf("--price/--fcr ignored: preset %q fixes them (use --preset %s)", preset.Name, economics.CustomPreset)
	}
	in = preset.Apply(in)

	if err := validateInputs(in); err != nil {
		return "", economics.CostInputs{}, err
	}
	return preset.Name, in, nil
}

func validateInputs(in economics.CostInputs) error {
	switch {
	case in.Tickets < 1:
		return fmt.Errorf("tickets must be at least 1, got %d", in.Tickets)
	case in.TokensPerTicket < 0:
		return fmt.Errorf("tokens-per-ticket must be non-negative, got %d", in.TokensPerTicket)
	case in.PricePer1KTokens < 0:
		return fmt.Errorf("price must be non-negative, got %v", in.PricePer1KTokens)
	case in.FCR < 0 || in.FCR > 1:
		return fmt.Errorf("fcr must be within [0, 1], got %v", in.FCR)
	case in.HourlyAgentCost < 0:
		return fmt.Errorf("hourly-cost must be non-negative, got %v", in.HourlyAgentCost)
	case in.HandlingTimeMinutes < 0:
		return fmt.Errorf("aht must be non-negative, got %v", in.HandlingTimeMinutes)
	}
	return nil
}

// printSimulation displays the result and the trade-off assessment.
func printSimulation(w io.Writer, sim *design.Simulation) {
	in, r := sim.Inputs, sim.Result
	a := economics.Assess(in, r)
	fmt.Fprintln(w, "=== TI vs SI Simulation ===")
	fmt.Fprintf(w, "Preset               : %s\n", sim.Preset)
	fmt.Fprintf(w, "Price / FCR          : %v €/1k tokens / %v\n", in.PricePer1KTokens, in.FCR)
	fmt.Fprintf(w, "Tokens total         : %d\n", r.TokensTotal)
	fmt.Fprintf(w, "Coste TI (API)       : %.2f €\n", r.AutomationCost)
	fmt.Fprintf(w, "Coste por rebote     : %.2f €\n", r.HumanCostPerRejectedTicket)
	fmt.Fprintf(w, "Coste Operativo      : %.2f €\n", r.HumanReworkCost)
	fmt.Fprintf(w, "COSTE TOTAL          : %.2f €\n", r.TotalCost)
	fmt.Fprintf(w, "Assessment           : [%s] %s\n", a.Verdict, a.Message)
}

func init() {
	simulateCmd.Flags().AddFlagSet(simulationFlags())
	simulateCmd.Flags().BoolVar(&saveSimulation, "save", false, "Store the result in the session file (--state)")

	rootCmd.AddCommand(simulateCmd)
}
