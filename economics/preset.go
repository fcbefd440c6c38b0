package economics

import "fmt"

// CustomPreset is the preset name under which price and FCR come from the user.
const CustomPreset = "Custom"

// Preset pins the price and quality of a model tier.
type Preset struct {
	Name             string  `yaml:"name"`
	PricePer1KTokens float64 `yaml:"price_per_1k_tokens"`
	FCR              float64 `yaml:"fcr"`
}

// IsCustom reports whether the preset leaves price and FCR to the caller.
func (p Preset) IsCustom() bool {
	return p.Name == CustomPreset
}

// Apply returns base with price and FCR replaced by the preset's values.
// A custom preset returns base unchanged.
func (p Preset) Apply(base CostInputs) CostInputs {
	if p.IsCustom() {
		return base
	}
	base.PricePer1KTokens = p.PricePer1KTokens
	base.FCR = p.FCR
	return base
}

// DefaultPresetName is the tier selected when none is requested.
const DefaultPresetName = "Pro (equilibrado)"

// DefaultPresets returns the built-in model tiers in display order.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "Nano (barato)", PricePer1KTokens: 0.20, FCR: 0.55},
		{Name: "Pro (equilibrado)", PricePer1KTokens: 0.80, FCR: 0.72},
		{Name: "Ultra (caro)", PricePer1KTokens: 2.50, FCR: 0.85},
		{Name: CustomPreset},
	}
}

// DefaultInputs returns the simulator's starting values (Pro tier, 1000 tickets).
func DefaultInputs() CostInputs {
	return CostInputs{
		Tickets:             1000,
		TokensPerTicket:     800,
		PricePer1KTokens:    0.80,
		FCR:                 0.72,
		HourlyAgentCost:     25.0,
		HandlingTimeMinutes: 15.0,
	}
}

// PresetByName finds a preset by exact name.
func PresetByName(presets []Preset, name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.Name)
	}
	return Preset{}, fmt.Errorf("unknown preset %q; valid: %v", name, names)
}
