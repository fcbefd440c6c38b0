package economics

// CostInputs holds the economic parameters of one simulation run.
// Ranges are enforced by the caller; Compute accepts any values.
type CostInputs struct {
	Tickets             int     `yaml:"tickets"`
	TokensPerTicket     int     `yaml:"tokens_per_ticket"`
	PricePer1KTokens    float64 `yaml:"price_per_1k_tokens"`
	FCR                 float64 `yaml:"fcr"` // first contact resolution, 0..1
	HourlyAgentCost     float64 `yaml:"hourly_agent_cost"`
	HandlingTimeMinutes float64 `yaml:"handling_time_minutes"` // AHT of a ticket that bounces to a human
}

// CostResult is fully determined by the CostInputs it was computed from.
type CostResult struct {
	TokensTotal                int     `yaml:"tokens_total"`
	AutomationCost             float64 `yaml:"automation_cost"`
	HumanCostPerRejectedTicket float64 `yaml:"human_cost_per_rejected_ticket"`
	HumanReworkCost            float64 `yaml:"human_rework_cost"`
	TotalCost                  float64 `yaml:"total_cost"`
}

const (
	tokensPerPriceUnit = 1000.0
	minutesPerHour     = 60.0
)

// Compute derives token volume, automation (TI) cost, human rework cost and
// total (SI) cost. It never fails: negative or nonsensical inputs produce
// arithmetically consistent results.
func Compute(in CostInputs) CostResult {
	tokensTotal := in.Tickets * in.TokensPerTicket
	automation := (float64(tokensTotal) / tokensPerPriceUnit) * in.PricePer1KTokens

	perTicket := (in.HandlingTimeMinutes / minutesPerHour) * in.HourlyAgentCost
	rework := float64(in.Tickets) * (1.0 - in.FCR) * perTicket

	return CostResult{
		TokensTotal:                tokensTotal,
		AutomationCost:             automation,
		HumanCostPerRejectedTicket: perTicket,
		HumanReworkCost:            rework,
		TotalCost:                  automation + rework,
	}
}
