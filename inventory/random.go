package inventory

import (
	"context"
	"math/rand/v2"
	"sync"

	"lca-bot/models"
)

// Value ranges drawn by RandomSource.
const (
	MinEnergyMJ = 10.0
	MaxEnergyMJ = 100.0
	MinGHGKg    = 1.0
	MaxGHGKg    = 10.0
	MinWaterL   = 5.0
	MaxWaterL   = 50.0
)

// RandomSource fabricates a cradle-to-grave inventory with uniformly drawn
// values. The product name is ignored.
type RandomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource returns a source backed by rng. A nil rng uses the
// unseeded global generator.
func NewRandomSource(rng *rand.Rand) *RandomSource {
	return &RandomSource{rng: rng}
}

// Fetch draws a fresh five-stage table. It never fails.
func (s *RandomSource) Fetch(_ context.Context, _ string) (models.InventoryTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := make(models.InventoryTable, 0, len(models.Stages))
	for _, stage := range models.Stages {
		table = append(table, models.InventoryRecord{
			Process:   stage,
			EnergyMJ:  s.uniform(MinEnergyMJ, MaxEnergyMJ),
			GHGKgCO2e: s.uniform(MinGHGKg, MaxGHGKg),
			WaterL:    s.uniform(MinWaterL, MaxWaterL),
		})
	}
	return table, nil
}

func (s *RandomSource) uniform(lo, hi float64) float64 {
	var f float64
	if s.rng != nil {
		f = s.rng.Float64()
	} else {
		f = rand.Float64()
	}
	return lo + f*(hi-lo)
}
