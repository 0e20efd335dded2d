package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// OpenDB opens the SQLite inventory database and creates the schema if needed.
func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps in-memory databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func createTables(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// One row per lifecycle stage of a recorded product inventory.
	recordsTable := `
		CREATE TABLE IF NOT EXISTS inventory_records (
		product TEXT NOT NULL,
		stage_order INTEGER NOT NULL,
		process TEXT NOT NULL,
		energy_mj REAL NOT NULL CHECK(energy_mj >= 0),
		ghg_kg_co2e REAL NOT NULL CHECK(ghg_kg_co2e >= 0),
		water_l REAL NOT NULL CHECK(water_l >= 0),
		PRIMARY KEY (product, stage_order)
	);`
	if _, err = tx.Exec(recordsTable); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to create inventory_records table: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
