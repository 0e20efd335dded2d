// Package report assembles the life cycle assessment report and renders it.
//
// BuildModel formats the inventory and its summary once; the chart, PDF,
// terminal and HTML renderers all consume the resulting Model and never
// recompute or reformat the underlying data.
package report

import (
	"fmt"
	"time"

	"lca-bot/greenops"
	"lca-bot/lcia"
	"lca-bot/models"
)

// Report wording.
const (
	Title          = "ISO-Compliant LCA Report"
	SystemBoundary = "Cradle-to-grave"
	DefaultProduct = "Generic Product"
)

// Metric is one labelled impact total.
type Metric struct {
	Label string  `json:"label"`
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// Formatted returns the value with two decimals.
func (m Metric) Formatted() string {
	return fmt.Sprintf("%.2f", m.Value)
}

// Line returns the metric as a report line, e.g. "Total GHG: 18.50 kg CO2-eq".
func (m Metric) Line() string {
	return fmt.Sprintf("%s: %.2f %s", m.Name, m.Value, m.Unit)
}

// Model is the rendered-once view of an assessment.
type Model struct {
	Product        string                `json:"product"`
	GeneratedAt    time.Time             `json:"generated_at"`
	Goal           string                `json:"goal"`
	Boundary       string                `json:"boundary"`
	Inventory      models.InventoryTable `json:"inventory"`
	InventoryLines []string              `json:"inventory_lines"`
	Summary        models.Summary        `json:"summary"`
	Totals         []Metric              `json:"totals"`
	Contributions  []models.Contribution `json:"contributions"`
	TopContributor string                `json:"top_contributor"`
	Interpretation string                `json:"interpretation"`
	Equivalency    string                `json:"equivalency,omitempty"`
}

// BuildModel formats a product's inventory and summary for rendering.
func BuildModel(product string, table models.InventoryTable, summary models.Summary, now time.Time) Model {
	lines := make([]string, 0, len(table))
	for _, r := range table {
		lines = append(lines, InventoryLine(r))
	}

	m := Model{
		Product:        product,
		GeneratedAt:    now,
		Goal:           fmt.Sprintf("Goal: Assess environmental impacts of %s over its full life cycle.", product),
		Boundary:       fmt.Sprintf("System boundary: %s.", SystemBoundary),
		Inventory:      table,
		InventoryLines: lines,
		Summary:        summary,
		Totals: []Metric{
			{Label: "Total GHG Emissions (kg CO2-eq)", Name: "Total GHG", Unit: "kg CO2-eq", Value: summary.GHGTotal},
			{Label: "Total Energy Use (MJ)", Name: "Total Energy", Unit: "MJ", Value: summary.EnergyTotal},
			{Label: "Total Water Use (L)", Name: "Total Water", Unit: "L", Value: summary.WaterTotal},
		},
		Contributions:  lcia.Contributions(table, summary),
		TopContributor: fmt.Sprintf("Greatest GHG contributor: %s", summary.TopProcess),
		Interpretation: fmt.Sprintf("Most impactful process: %s", summary.TopProcess),
	}

	if eq, err := greenops.Calculate(summary.GHGTotal); err == nil && !eq.IsEmpty {
		m.Equivalency = eq.Text
	}

	return m
}

// InventoryLine formats one inventory row for the report.
func InventoryLine(r models.InventoryRecord) string {
	return fmt.Sprintf("%s: %.2f MJ, %.2f kg CO2-eq, %.2f L", r.Process, r.EnergyMJ, r.GHGKgCO2e, r.WaterL)
}

// TotalLines returns the impact totals as report lines.
func (m Model) TotalLines() []string {
	out := make([]string, 0, len(m.Totals))
	for _, t := range m.Totals {
		out = append(out, t.Line())
	}
	return out
}
