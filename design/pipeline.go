package design

import (
	"fmt"
	"sort"
)

// Pipeline steps offered by the designer.
const (
	StepAuth       = "Auth"
	StepRAG        = "RAG"
	StepInference  = "Inferencia"
	StepHumanCheck = "Validación Humana"
	StepPIIFilter  = "Filtro PII"
	StepAudit      = "Auditoría"
)

// Catalog lists the known pipeline steps in display order.
var Catalog = []string{StepAuth, StepRAG, StepInference, StepHumanCheck, StepPIIFilter, StepAudit}

// InCatalog reports whether step is one of the known pipeline steps.
func InCatalog(step string) bool {
	for _, c := range Catalog {
		if c == step {
			return true
		}
	}
	return false
}

// OrderSteps sorts steps by their rank (ascending). Equal ranks keep the
// order in which the steps were given. With no ranks the steps are returned
// as given.
func OrderSteps(steps []string, ranks []int) ([]string, error) {
	out := append([]string(nil), steps...)
	if len(ranks) == 0 {
		return out, nil
	}
	if len(ranks) != len(steps) {
		return nil, fmt.Errorf("got %d ranks for %d steps", len(ranks), len(steps))
	}
	idx := make([]int, len(steps))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return ranks[idx[a]] < ranks[idx[b]] })
	for i, j := range idx {
		out[i] = steps[j]
	}
	return out, nil
}

// Warnings returns the design risks the wizard flags for the current state.
func (s *State) Warnings() []string {
	var w []string
	if !s.HasStep(StepHumanCheck) {
		w = append(w, "Peligro: estás diseñando un sistema sin Human-in-the-loop (Validación Humana).")
	}
	if !s.HasStep(StepAudit) {
		w = append(w, "Peligro: estás diseñando un sistema sin trazabilidad (Auditoría).")
	}
	return w
}
