package design

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadState reads a session file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadState(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading state: %w", err)
	}
	var st State
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&st); err != nil {
		return nil, fmt.Errorf("parsing state: %w", err)
	}
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("invalid state %s: %w", path, err)
	}
	return &st, nil
}

// SaveState writes the session file, replacing any existing content.
func SaveState(path string, st *State) error {
	if err := st.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}

// Validate checks the invariants every session record must hold.
func (s *State) Validate() error {
	slo := s.Guardrails.LatencySLOSeconds
	if math.IsNaN(slo) || math.IsInf(slo, 0) || slo <= 0 {
		return fmt.Errorf("guardrails.slo_latency_s must be a positive number, got %v", slo)
	}
	h := s.Guardrails.MaxHallucinationRate
	if math.IsNaN(h) || h < 0 || h > 1 {
		return fmt.Errorf("guardrails.max_hallucination_rate must be within [0, 1], got %v", h)
	}
	return s.Roles.Validate()
}
