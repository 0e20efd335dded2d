// models/summary.go
package models

// Summary holds the impact totals of one inventory table.
type Summary struct {
	GHGTotal    float64 `json:"ghg_total"`
	EnergyTotal float64 `json:"energy_total"`
	WaterTotal  float64 `json:"water_total"`
	TopProcess  string  `json:"top_process"`
}

// Contribution is one stage's share of the GHG total.
type Contribution struct {
	Process string  `json:"process"`
	Percent float64 `json:"percent"`
}
