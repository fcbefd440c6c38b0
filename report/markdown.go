package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ai-product-ops/productops/design"
)

// Title is the top-level heading of every generated document.
const Title = "AI Product Ops: De Modelo a Sistema — SDD"

const notAvailable = "(n/a)"

// RenderMarkdown assembles the SDD for st as of date. Sections are built
// independently and separated by one blank line. The output depends only on
// st and the calendar day of date.
func RenderMarkdown(st design.State, date time.Time) string {
	sections := []string{
		titleSection(date),
		goalSection(&st),
		tradeoffSection(st.Simulation),
		pipelineSection(st.Pipeline),
		rolesSection(st.Roles),
		metricsSection(st.Metrics, st.Guardrails),
		checklistSection(&st),
		risksSection(),
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func section(heading string, lines ...string) string {
	return heading + "\n\n" + strings.Join(lines, "\n")
}

func titleSection(date time.Time) string {
	return section("# "+Title, fmt.Sprintf("- Fecha: **%s**", date.Format(time.DateOnly)))
}

func goalSection(st *design.State) string {
	return section("## 1. Objetivo", st.GoalOrDefault())
}

func tradeoffSection(sim *design.Simulation) string {
	const heading = "## 2. Trade-offs TI vs SI (simulación)"
	if sim == nil {
		return section(heading, "- (No se ejecutó el simulador)")
	}
	in, r := sim.Inputs, sim.Result
	return section(heading,
		fmt.Sprintf("- Modelo/preset: **%s**", orNA(sim.Preset)),
		fmt.Sprintf("- Precio: **%s €/1k tokens**", formatNumber(in.PricePer1KTokens)),
		fmt.Sprintf("- Calidad (FCR): **%s**", formatNumber(in.FCR)),
		fmt.Sprintf("- Tickets: **%d** — Tokens/ticket: **%d**", in.Tickets, in.TokensPerTicket),
		fmt.Sprintf("- Coste TI: **%.2f €**", r.AutomationCost),
		fmt.Sprintf("- Coste Operativo: **%.2f €**", r.HumanReworkCost),
		fmt.Sprintf("- Coste Total: **%.2f €**", r.TotalCost),
	)
}

func pipelineSection(steps []string) string {
	const heading = "## 3. Diseño del flujo (Process & Tech)"
	if len(steps) == 0 {
		return section(heading, "- (No definido)")
	}
	lines := []string{"Orden seleccionado:"}
	for i, step := range steps {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, step))
	}
	return section(heading, lines...)
}

func rolesSection(roles design.Roles) string {
	entries := roles.Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("- **%s**: %s", e.Key, orNA(e.Owner)))
	}
	return section("## 4. Roles y responsabilidades (People)", lines...)
}

func metricsSection(m design.Metrics, g design.Guardrails) string {
	slo := notAvailable
	if g.LatencySLOSeconds > 0 {
		slo = formatNumber(g.LatencySLOSeconds)
	}
	return section("## 5. Métricas & Guardrails (Data & Policy)",
		"### Métricas",
		"",
		fmt.Sprintf("- Outcome (Valor): **%s**", orNA(m.Outcome)),
		fmt.Sprintf("- Efficiency (Coste): **%s**", orNA(m.Efficiency)),
		fmt.Sprintf("- Safety (Riesgo): **%s**", orNA(m.Safety)),
		"",
		"### SLO / Umbrales",
		"",
		fmt.Sprintf("- Latencia p95 ≤ **%s s**", slo),
		fmt.Sprintf("- Tasa alucinación máx ≤ **%s**", formatNumber(g.MaxHallucinationRate)),
	)
}

func checklistSection(st *design.State) string {
	checks := Checklist(st)
	lines := make([]string, 0, len(checks))
	for _, c := range checks {
		box := " "
		if c.OK {
			box = "x"
		}
		lines = append(lines, fmt.Sprintf("- [%s] %s", box, c.Label))
	}
	return section("## 6. Checklist de seguridad y gobernanza", lines...)
}

func risksSection() string {
	return section("## 7. Riesgos y mitigaciones (RAGA-lite)",
		"- Riesgo: Optimización TI (€/tokens) destruye SI (retrabajo humano). Mitigación: operar por **coste total** + FCR.",
		"- Riesgo: PII en logs/prompts. Mitigación: filtro PII + minimización + auditoría.",
		"- Riesgo: Sin kill switch / sin HITL. Mitigación: control operativo (SRE/Owner) y escalado.",
	)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

// formatNumber prints the shortest decimal that round-trips, keeping at
// least one fractional digit (0.8, 2.0, 0.02).
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
