// Package design models the configuration a user builds for an AI-enabled
// service: goal, ordered pipeline, role owners, metrics, guardrails and the
// latest cost simulation.
//
// A State is owned by a single session. The CLI loads it from a YAML session
// file, mutates it field by field, and hands it read-only to the report
// package at export time.
package design

import (
	"fmt"
	"math"
	"strings"

	"github.com/ai-product-ops/productops/economics"
)

// DefaultGoal is the goal statement of a fresh session.
const DefaultGoal = "Diseñar un sistema IA operable, medible y gobernable, explicitando trade-offs (Coste vs Calidad, TI vs SI)."

// State is the session-scoped configuration record.
type State struct {
	Goal       string      `yaml:"goal"`
	Pipeline   []string    `yaml:"pipeline"`
	Roles      Roles       `yaml:"roles"`
	Metrics    Metrics     `yaml:"metrics"`
	Guardrails Guardrails  `yaml:"guardrails"`
	Simulation *Simulation `yaml:"simulation,omitempty"` // nil until the simulator has run
}

// Metrics holds the three mandatory metric definitions.
type Metrics struct {
	Outcome    string `yaml:"outcome"`    // value
	Efficiency string `yaml:"efficiency"` // cost
	Safety     string `yaml:"safety"`     // risk
}

// Guardrails bound the acceptable risk of the service.
type Guardrails struct {
	LatencySLOSeconds    float64 `yaml:"slo_latency_s"`
	MaxHallucinationRate float64 `yaml:"max_hallucination_rate"`
}

// Simulation is the snapshot stored after a cost model run.
type Simulation struct {
	Preset string               `yaml:"preset"`
	Inputs economics.CostInputs `yaml:"inputs"`
	Result economics.CostResult `yaml:"result"`
}

// NewSimulation runs the cost model and wraps inputs and result in a snapshot.
func NewSimulation(preset string, in economics.CostInputs) *Simulation {
	return &Simulation{Preset: preset, Inputs: in, Result: economics.Compute(in)}
}

// DefaultState returns the record a new session starts with.
func DefaultState() State {
	return State{
		Goal:     DefaultGoal,
		Pipeline: []string{StepAuth, StepRAG, StepInference, StepAudit},
		Metrics: Metrics{
			Outcome:    "FCR (First Contact Resolution)",
			Efficiency: "€/ticket",
			Safety:     "Tasa de alucinación / fuga PII",
		},
		Guardrails: Guardrails{
			LatencySLOSeconds:    2.0,
			MaxHallucinationRate: 0.02,
		},
	}
}

// HasStep reports whether the pipeline contains step.
func (s *State) HasStep(step string) bool {
	for _, p := range s.Pipeline {
		if p == step {
			return true
		}
	}
	return false
}

// GoalOrDefault returns the goal, or a generic goal when it is blank.
func (s *State) GoalOrDefault() string {
	if strings.TrimSpace(s.Goal) == "" {
		return "Definir un sistema IA operable, medible y gobernable, explicitando trade-offs."
	}
	return s.Goal
}

// MinLatencySLOSeconds is the smallest latency SLO the designer accepts.
const MinLatencySLOSeconds = 0.1

// Validate checks the ranges the designer enforces on guardrail input.
func (g Guardrails) Validate() error {
	if math.IsNaN(g.LatencySLOSeconds) || math.IsInf(g.LatencySLOSeconds, 0) || g.LatencySLOSeconds < MinLatencySLOSeconds {
		return fmt.Errorf("guardrails.slo_latency_s must be at least %v, got %v", MinLatencySLOSeconds, g.LatencySLOSeconds)
	}
	if math.IsNaN(g.MaxHallucinationRate) || g.MaxHallucinationRate < 0 || g.MaxHallucinationRate > 1 {
		return fmt.Errorf("guardrails.max_hallucination_rate must be within [0, 1], got %v", g.MaxHallucinationRate)
	}
	return nil
}
