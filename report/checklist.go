package report

import "github.com/ai-product-ops/productops/design"

// Check is one governance checklist item.
type Check struct {
	Label string
	OK    bool
}

// Checklist evaluates the six governance checks in their fixed order.
func Checklist(st *design.State) []Check {
	return []Check{
		{"Kill Switch definido", st.Roles.KillSwitchOwner != ""},
		{"Auditoría/Logs activados", st.HasStep(design.StepAudit)},
		{"Validación humana (HITL)", st.HasStep(design.StepHumanCheck)},
		{"Filtro PII", st.HasStep(design.StepPIIFilter)},
		{"RBAC/roles mínimos", st.Roles.Assigned() > 0},
		{"SLO definido", st.Guardrails.LatencySLOSeconds > 0},
	}
}
