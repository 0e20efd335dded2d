package inventory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const widgetFixture = `product: Widget
records:
  - process: Extraction
    energy_mj: 50
    ghg_kg_co2e: 5
    water_l: 20
  - process: Manufacturing
    energy_mj: 80
    ghg_kg_co2e: 9
    water_l: 30
  - process: Transport
    energy_mj: 20
    ghg_kg_co2e: 2
    water_l: 5
  - process: Use
    energy_mj: 10
    ghg_kg_co2e: 1
    water_l: 40
  - process: End-of-life
    energy_mj: 15
    ghg_kg_co2e: 1.5
    water_l: 10
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileSource_Fetch(t *testing.T) {
	src := FileSource{Path: writeFixture(t, widgetFixture)}

	table, err := src.Fetch(context.Background(), "ignored")
	require.NoError(t, err)
	require.Len(t, table, 5)
	assert.Equal(t, "Manufacturing", table[1].Process)
	assert.Equal(t, 80.0, table[1].EnergyMJ)
	assert.Equal(t, 1.5, table[4].GHGKgCO2e)
}

func TestLoadFixture_Product(t *testing.T) {
	f, err := LoadFixture(writeFixture(t, widgetFixture))
	require.NoError(t, err)
	assert.Equal(t, "Widget", f.Product)
}

func TestLoadFixture_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
		contain string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			wantErr: os.ErrNotExist,
		},
		{
			name:    "bad yaml",
			path:    func(t *testing.T) string { return writeFixture(t, "records: [oops") },
			contain: "parsing inventory fixture",
		},
		{
			name: "negative value",
			path: func(t *testing.T) string {
				return writeFixture(t, "records:\n  - process: A\n    energy_mj: -3\n")
			},
			wantErr: ErrNegativeValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFixture(tt.path(t))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.contain != "" {
				assert.Contains(t, err.Error(), tt.contain)
			}
		})
	}
}

func TestFileSource_EmptyRecords(t *testing.T) {
	table, err := FileSource{Path: writeFixture(t, "records: []\n")}.Fetch(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, table)
}
