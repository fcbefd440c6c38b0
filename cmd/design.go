package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ai-product-ops/productops/design"
)

// editState loads the session file, applies edit and saves it back.
func editState(what string, edit func(*design.State, *pflag.FlagSet) error, fs *pflag.FlagSet) *design.State {
	st, err := design.LoadState(statePath)
	if err != nil {
		logrus.Fatalf("Failed to load state: %v", err)
	}
	if err := edit(st, fs); err != nil {
		logrus.Fatalf("Invalid %s: %v", what, err)
	}
	if err := design.SaveState(statePath, st); err != nil {
		logrus.Fatalf("Failed to save state: %v", err)
	}
	return st
}

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Set the objective of the design",
	Run: func(cmd *cobra.Command, args []string) {
		st := editState("goal", setGoal, cmd.Flags())
		logrus.Infof("Goal set to %q", st.Goal)
	},
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Assign owners to the governance roles",
	Long: "Only the roles given on the command line change. Kill-switch owner: SRE, Product Owner, Dev Lead. " +
		"Data-policy owner: Legal, Data Steward, CISO. Pass an empty value to unassign a role.",
	Run: func(cmd *cobra.Command, args []string) {
		st := editState("roles", setRoles, cmd.Flags())
		logrus.Infof("Roles set to %+v", st.Roles)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Name the outcome, efficiency and safety metrics",
	Run: func(cmd *cobra.Command, args []string) {
		st := editState("metrics", setMetrics, cmd.Flags())
		logrus.Infof("Metrics set to %+v", st.Metrics)
	},
}

var guardrailsCmd = &cobra.Command{
	Use:   "guardrails",
	Short: "Set the latency SLO and the hallucination threshold",
	Run: func(cmd *cobra.Command, args []string) {
		st := editState("guardrails", setGuardrails, cmd.Flags())
		logrus.Infof("Guardrails set to %+v", st.Guardrails)
	},
}

func goalFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("goal", pflag.ContinueOnError)
	fs.String("text", design.DefaultGoal, "Objective of the AI system")
	return fs
}

func roleFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("roles", pflag.ContinueOnError)
	fs.String("kill-switch-owner", "", "Who can switch the model off")
	fs.String("data-policy-owner", "", "Who owns the data policy")
	fs.String("service-owner", "", "Service owner")
	fs.String("sre-owner", "", "SRE owner")
	fs.String("data-steward", "", "Data steward")
	return fs
}

func metricsFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("metrics", pflag.ContinueOnError)
	fs.String("outcome", "", "Outcome metric")
	fs.String("efficiency", "", "Efficiency metric")
	fs.String("safety", "", "Safety metric")
	return fs
}

func guardrailFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("guardrails", pflag.ContinueOnError)
	fs.Float64("slo-latency", 2.0, "p95 latency SLO in seconds (minimum 0.1)")
	fs.Float64("max-hallucination-rate", 0.02, "Maximum tolerated hallucination rate, 0..1")
	return fs
}

// setGoal stores --text; an unset flag restores the default objective.
func setGoal(st *design.State, fs *pflag.FlagSet) error {
	st.Goal, _ = fs.GetString("text")
	return nil
}

// stringFlag overwrites *dst when name was given explicitly.
func stringFlag(fs *pflag.FlagSet, name string, dst *string) {
	if fs.Changed(name) {
		*dst, _ = fs.GetString(name)
	}
}

// setRoles applies the explicitly set role flags. st is left untouched when
// an owner is outside its option list.
func setRoles(st *design.State, fs *pflag.FlagSet) error {
	roles := st.Roles
	stringFlag(fs, "kill-switch-owner", &roles.KillSwitchOwner)
	stringFlag(fs, "data-policy-owner", &roles.DataPolicyOwner)
	stringFlag(fs, "service-owner", &roles.ServiceOwner)
	stringFlag(fs, "sre-owner", &roles.SREOwner)
	stringFlag(fs, "data-steward", &roles.DataSteward)
	if err := roles.Validate(); err != nil {
		return err
	}
	st.Roles = roles
	return nil
}

func setMetrics(st *design.State, fs *pflag.FlagSet) error {
	stringFlag(fs, "outcome", &st.Metrics.Outcome)
	stringFlag(fs, "efficiency", &st.Metrics.Efficiency)
	stringFlag(fs, "safety", &st.Metrics.Safety)
	return nil
}

// setGuardrails applies the explicitly set thresholds. st is left untouched
// when a threshold is out of range.
func setGuardrails(st *design.State, fs *pflag.FlagSet) error {
	g := st.Guardrails
	if fs.Changed("slo-latency") {
		g.LatencySLOSeconds, _ = fs.GetFloat64("slo-latency")
	}
	if fs.Changed("max-hallucination-rate") {
		g.MaxHallucinationRate, _ = fs.GetFloat64("max-hallucination-rate")
	}
	if err := g.Validate(); err != nil {
		return err
	}
	st.Guardrails = g
	return nil
}

func init() {
	goalCmd.Flags().AddFlagSet(goalFlags())
	rolesCmd.Flags().AddFlagSet(roleFlags())
	metricsCmd.Flags().AddFlagSet(metricsFlags())
	guardrailsCmd.Flags().AddFlagSet(guardrailFlags())

	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(guardrailsCmd)
}
