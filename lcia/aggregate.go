// Package lcia turns a life cycle inventory into impact totals.
package lcia

import "lca-bot/models"

// Aggregate sums each metric column and picks the process with the largest
// GHG value. Ties go to the first row in table order.
func Aggregate(table models.InventoryTable) (models.Summary, error) {
	if len(table) == 0 {
		return models.Summary{}, ErrEmptyInventory
	}

	var s models.Summary
	top := 0
	for i, r := range table {
		s.EnergyTotal += r.EnergyMJ
		s.GHGTotal += r.GHGKgCO2e
		s.WaterTotal += r.WaterL
		if r.GHGKgCO2e > table[top].GHGKgCO2e {
			top = i
		}
	}
	s.TopProcess = table[top].Process

	return s, nil
}

// Contributions returns each row's share of the GHG total in percent.
// Shares are zero when the total is zero.
func Contributions(table models.InventoryTable, summary models.Summary) []models.Contribution {
	out := make([]models.Contribution, 0, len(table))
	for _, r := range table {
		c := models.Contribution{Process: r.Process}
		if summary.GHGTotal > 0 {
			c.Percent = r.GHGKgCO2e / summary.GHGTotal * 100
		}
		out = append(out, c)
	}
	return out
}
