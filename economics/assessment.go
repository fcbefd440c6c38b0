package economics

// Verdict classifies where the cost of a configuration comes from.
type Verdict int

const (
	// Balanced: automation cost dominates or equals rework cost.
	Balanced Verdict = iota
	// Warning: human rework already costs more than automation.
	Warning
	// Alert: rework dominates and quality is below AlertFCRThreshold.
	Alert
)

// AlertFCRThreshold is the FCR below which a rework-dominated run is an alert.
const AlertFCRThreshold = 0.65

func (v Verdict) String() string {
	switch v {
	case Alert:
		return "alert"
	case Warning:
		return "warning"
	default:
		return "balanced"
	}
}

// Assessment is the advisory shown next to a simulation result.
type Assessment struct {
	Verdict Verdict
	Message string
}

// Assess flags the optimization trap: saving on TI while rework inflates SI.
func Assess(in CostInputs, r CostResult) Assessment {
	reworkDominates := r.HumanReworkCost > r.AutomationCost
	switch {
	case in.FCR < AlertFCRThreshold && reworkDominates:
		return Assessment{Alert, "ALERTA: estás ahorrando en TI, pero el retrabajo humano domina el coste total (SI)."}
	case reworkDominates:
		return Assessment{Warning, "Atención: el coste operativo ya supera el coste TI. Revisa FCR/HITL/guardrails."}
	default:
		return Assessment{Balanced, "Buen balance: el coste TI domina (o está equilibrado) y el retrabajo está contenido."}
	}
}
