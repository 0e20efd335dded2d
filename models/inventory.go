package models

// Lifecycle stage labels in cradle-to-grave order.
const (
	StageExtraction    = "Raw material extraction"
	StageManufacturing = "Manufacturing"
	StageTransport     = "Transport"
	StageUse           = "Use phase"
	StageEndOfLife     = "End-of-life"
)

// Stages lists the lifecycle stages in table order.
var Stages = []string{StageExtraction, StageManufacturing, StageTransport, StageUse, StageEndOfLife}

// InventoryRecord is one life cycle inventory row.
type InventoryRecord struct {
	Process   string  `json:"process" yaml:"process"`
	EnergyMJ  float64 `json:"energy_mj" yaml:"energy_mj"`
	GHGKgCO2e float64 `json:"ghg_kg_co2e" yaml:"ghg_kg_co2e"`
	WaterL    float64 `json:"water_l" yaml:"water_l"`
}

// InventoryTable is an ordered sequence of inventory records.
type InventoryTable []InventoryRecord
