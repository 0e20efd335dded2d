package inventory

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lca-bot/models"
)

// Fixture is the YAML layout of a recorded inventory.
type Fixture struct {
	Product string                `yaml:"product,omitempty"`
	Records models.InventoryTable `yaml:"records"`
}

// FileSource reads the inventory from a YAML fixture file on every fetch.
type FileSource struct {
	Path string
}

// Fetch loads and validates the fixture table.
func (s FileSource) Fetch(_ context.Context, _ string) (models.InventoryTable, error) {
	f, err := LoadFixture(s.Path)
	if err != nil {
		return nil, err
	}
	return f.Records, nil
}

// LoadFixture parses a YAML fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading inventory fixture: %w", err)
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing inventory fixture %s: %w", path, err)
	}
	if err := Validate(f.Records); err != nil {
		return nil, fmt.Errorf("inventory fixture %s: %w", path, err)
	}
	return &f, nil
}
