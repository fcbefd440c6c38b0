package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ai-product-ops/productops/design"
	"github.com/ai-product-ops/productops/report"
)

// Fixed names of the exported artifacts.
const (
	markdownFileName = "sdd_ai_product_ops.md"
	pdfFileName      = "sdd_ai_product_ops.pdf"
)

// Artifact is one exported file.
type Artifact struct {
	Path     string
	MIMEType string
	Size     int
}

var (
	exportDir  string
	exportDate string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the System Design Document as Markdown and PDF",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := design.LoadState(statePath)
		if err != nil {
			logrus.Fatalf("Failed to load state: %v", err)
		}
		date, err := parseExportDate(exportDate)
		if err != nil {
			logrus.Fatalf("Invalid --date: %v", err)
		}
		for _, w := range st.Warnings() {
			logrus.Warn(w)
		}
		artifacts, err := exportSDD(*st, date, exportDir)
		if err != nil {
			logrus.Fatalf("Export failed: %v", err)
		}
		for _, a := range artifacts {
			fmt.Printf("%s (%s, %d bytes)\n", a.Path, a.MIMEType, a.Size)
		}
	},
}

// parseExportDate accepts YYYY-MM-DD; empty means today.
func parseExportDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return time.Parse(time.DateOnly, s)
}

// exportSDD renders st and writes both artifacts into dir.
func exportSDD(st design.State, date time.Time, dir string) ([]Artifact, error) {
	md := report.RenderMarkdown(st, date)

	ps := report.DefaultPageSetup()
	ps.CreationDate = date
	doc, err := ps.Render(md)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	files := []struct {
		name, mime string
		data       []byte
	}{
		{markdownFileName, "text/markdown", []byte(md)},
		{pdfFileName, "application/pdf", doc},
	}
	artifacts := make([]Artifact, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		logrus.Debugf("Wrote %s (%d bytes)", path, len(f.data))
		artifacts = append(artifacts, Artifact{Path: path, MIMEType: f.mime, Size: len(f.data)})
	}
	return artifacts, nil
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "out-dir", ".", "Directory for the exported files")
	exportCmd.Flags().StringVar(&exportDate, "date", "", "Document date, YYYY-MM-DD (default today)")

	rootCmd.AddCommand(exportCmd)
}
