package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel         string // Log verbosity level
	defaultsFilePath string // Presets and simulator defaults
	configFilePath   string // Optional settings file
	statePath        string // Session state file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "productops",
	Short: "AI Product Ops: TI vs SI cost simulator and SDD exporter",
	Long: "Design an AI-enabled service (pipeline, roles, metrics, guardrails), simulate the " +
		"trade-off between API cost and human rework, and export the System Design Document.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up persistent flags; subcommands register themselves in their own files
func init() {
	cobra.OnInitialize(loadSettings)

	rootCmd.PersistentFlags().StringVar(&configFilePath, "config", "", "Settings file (YAML); PRODUCTOPS_* environment variables override it")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Path to defaults.yaml (presets and simulator defaults)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "sdd.yaml", "Session state file")
}
