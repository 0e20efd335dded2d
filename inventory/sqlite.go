package inventory

import (
	"context"
	"database/sql"
	"fmt"

	"lca-bot/models"
)

// SQLiteSource reads recorded inventory rows for a product. A product
// without rows yields an empty table.
type SQLiteSource struct {
	DB *sql.DB
}

// Fetch returns the product's rows in stage order.
func (s SQLiteSource) Fetch(ctx context.Context, product string) (models.InventoryTable, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT process, energy_mj, ghg_kg_co2e, water_l
		FROM inventory_records
		WHERE product = ?
		ORDER BY stage_order
	`, product)
	if err != nil {
		return nil, fmt.Errorf("querying inventory for %q: %w", product, err)
	}
	defer rows.Close()

	table := models.InventoryTable{}
	for rows.Next() {
		var r models.InventoryRecord
		if err := rows.Scan(&r.Process, &r.EnergyMJ, &r.GHGKgCO2e, &r.WaterL); err != nil {
			return nil, fmt.Errorf("scanning inventory row: %w", err)
		}
		table = append(table, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading inventory rows: %w", err)
	}
	return table, nil
}

// Import replaces the recorded rows of a product with table.
func (s SQLiteSource) Import(ctx context.Context, product string, table models.InventoryTable) error {
	if err := Validate(table); err != nil {
		return err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM inventory_records WHERE product = ?`, product); err != nil {
		tx.Rollback()
		return fmt.Errorf("clearing inventory for %q: %w", product, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO inventory_records (product, stage_order, process, energy_mj, ghg_kg_co2e, water_l)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range table {
		if _, err := stmt.ExecContext(ctx, product, i, r.Process, r.EnergyMJ, r.GHGKgCO2e, r.WaterL); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting %s: %w", r.Process, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}
