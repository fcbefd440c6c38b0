package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ai-product-ops/productops/economics"
)

// Defaults represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Defaults struct {
	Version    string               `yaml:"version"`
	Presets    []economics.Preset   `yaml:"presets"`
	Simulation economics.CostInputs `yaml:"simulation"`
}

func builtinDefaults() Defaults {
	return Defaults{
		Presets:    economics.DefaultPresets(),
		Simulation: economics.DefaultInputs(),
	}
}

// loadDefaultsConfig parses defaults.yaml on top of the built-in presets and
// simulator inputs. A missing file yields the built-ins; sections absent from
// the file keep their built-in values.
func loadDefaultsConfig(path string) (Defaults, error) {
	cfg := builtinDefaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Debugf("defaults file %s not found, using built-in presets", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading defaults file %s: %w", path, err)
	}

	// Parse YAML with strict field checking: typos must cause errors
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing defaults file %s: %w", path, err)
	}

	if _, err := economics.PresetByName(cfg.Presets, economics.CustomPreset); err != nil {
		cfg.Presets = append(cfg.Presets, economics.Preset{Name: economics.CustomPreset})
	}
	logrus.Debugf("Loaded %d presets from %s", len(cfg.Presets), path)
	return cfg, nil
}

// mustLoadDefaults is loadDefaultsConfig for command bodies.
func mustLoadDefaults() Defaults {
	cfg, err := loadDefaultsConfig(defaultsFilePath)
	if err != nil {
		logrus.Fatalf("Failed to load defaults: %v", err)
	}
	return cfg
}
