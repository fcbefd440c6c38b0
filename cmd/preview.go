package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ai-product-ops/productops/design"
	"github.com/ai-product-ops/productops/report"
)

var (
	previewWidth int
	previewStyle string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the System Design Document in the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := design.LoadState(statePath)
		if err != nil {
			logrus.Fatalf("Failed to load state: %v", err)
		}
		out, err := renderPreview(*st, time.Now(), previewStyle, previewWidth)
		if err != nil {
			logrus.Fatalf("Preview failed: %v", err)
		}
		fmt.Print(out)
	},
}

func renderPreview(st design.State, date time.Time, style string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		styleOption(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	return renderer.Render(report.RenderMarkdown(st, date))
}

// styleOption picks a glamour style; "auto" follows the terminal background.
func styleOption(style string) glamour.TermRendererOption {
	if style == "auto" {
		return glamour.WithAutoStyle()
	}
	return glamour.WithStandardStyle(style)
}

func init() {
	previewCmd.Flags().IntVar(&previewWidth, "width", 80, "Word-wrap width")
	previewCmd.Flags().StringVar(&previewStyle, "style", "auto", "Glamour style (auto, dark, light, notty, ascii)")

	rootCmd.AddCommand(previewCmd)
}
