package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ai-product-ops/productops/design"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a session file with the default design",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initState(statePath, forceInit); err != nil {
			logrus.Fatalf("init failed: %v", err)
		}
		logrus.Infof("Wrote default state to %s", statePath)
	},
}

// initState writes the default state unless path exists and force is false.
func initState(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	st := design.DefaultState()
	return design.SaveState(path, &st)
}

var (
	pipelineSteps []string // Steps in declared order
	pipelineRanks []int    // Optional rank per step
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Set the ordered pipeline of the design",
	Long: "Replace the pipeline in the session file. Steps keep the order given with --step " +
		"unless --order assigns a rank to each of them. Known steps: Auth, RAG, Inferencia, " +
		"Validación Humana, Filtro PII, Auditoría.",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := design.LoadState(statePath)
		if err != nil {
			logrus.Fatalf("Failed to load state: %v", err)
		}
		if err := setPipeline(st, pipelineSteps, pipelineRanks); err != nil {
			logrus.Fatalf("Invalid pipeline: %v", err)
		}
		for _, w := range st.Warnings() {
			logrus.Warn(w)
		}
		if err := design.SaveState(statePath, st); err != nil {
			logrus.Fatalf("Failed to save state: %v", err)
		}
		logrus.Infof("Pipeline set to %v", st.Pipeline)
	},
}

// setPipeline orders steps by ranks and stores them in st.
func setPipeline(st *design.State, steps []string, ranks []int) error {
	ordered, err := design.OrderSteps(steps, ranks)
	if err != nil {
		return err
	}
	for _, s := range ordered {
		if !design.InCatalog(s) {
			logrus.Warnf("step %q is not in the catalog %v", s, design.Catalog)
		}
	}
	st.Pipeline = ordered
	return nil
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing session file")

	pipelineCmd.Flags().StringArrayVar(&pipelineSteps, "step", nil, "Pipeline step (can be repeated)")
	pipelineCmd.Flags().IntSliceVar(&pipelineRanks, "order", nil, "Comma-separated rank per step; lower runs first")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(pipelineCmd)
}
