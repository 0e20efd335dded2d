// Package inventory provides the life cycle inventory data sources.
//
// A Source yields the inventory table for one assessment run. The default
// RandomSource fabricates placeholder data; FixedSource, FileSource and
// SQLiteSource return recorded data so runs can be reproduced.
package inventory

import (
	"context"
	"fmt"

	"lca-bot/models"
)

// Source produces the inventory table for a product.
type Source interface {
	Fetch(ctx context.Context, product string) (models.InventoryTable, error)
}

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

const (
	// ErrNegativeValue indicates a metric value below zero.
	ErrNegativeValue = constError("negative inventory value")

	// ErrUnknownSource indicates an unrecognized source kind in configuration.
	ErrUnknownSource = constError("unknown inventory source")
)

// Validate checks that every metric in the table is non-negative.
func Validate(table models.InventoryTable) error {
	for i, r := range table {
		if r.EnergyMJ < 0 || r.GHGKgCO2e < 0 || r.WaterL < 0 {
			return fmt.Errorf("row %d (%s): %w", i, r.Process, ErrNegativeValue)
		}
	}
	return nil
}

// FixedSource always returns the same table.
type FixedSource struct {
	Table models.InventoryTable
}

// Fetch returns a copy of the fixed table.
func (s FixedSource) Fetch(_ context.Context, _ string) (models.InventoryTable, error) {
	return append(models.InventoryTable(nil), s.Table...), nil
}
