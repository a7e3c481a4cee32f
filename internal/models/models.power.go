// FilePath: internal/models/models.power.go
package models

import "time"

// Grid is a utility-grid power source.
type Grid struct {
	ID                  string    `json:"id" db:"id"`
	Name                string    `json:"name" db:"name" readxs:"*" writexs:"*"`
	OutputVoltage       float64   `json:"output_voltage" db:"output_voltage" readxs:"*" writexs:"*"`
	MaxOutputCurrent    float64   `json:"max_output_current" db:"max_output_current" readxs:"*" writexs:"*"`
	OutputConnectorType string    `json:"output_connector_type" db:"output_connector_type" readxs:"*" writexs:"*"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

// DGSet is a diesel generator set, a generator-based power source.
type DGSet struct {
	ID                  string    `json:"id" db:"id"`
	Name                string    `json:"name" db:"name" readxs:"*" writexs:"*"`
	OutputVoltage       float64   `json:"output_voltage" db:"output_voltage" readxs:"*" writexs:"*"`
	MaxOutputCurrent    float64   `json:"max_output_current" db:"max_output_current" readxs:"*" writexs:"*"`
	FuelType            string    `json:"fuel_type" db:"fuel_type" readxs:"*" writexs:"*"`
	FuelCapacity        float64   `json:"fuel_capacity" db:"fuel_capacity" readxs:"*" writexs:"*"`
	OutputConnectorType string    `json:"output_connector_type" db:"output_connector_type" readxs:"*" writexs:"*"`
	MotorType           string    `json:"motor_type" db:"motor_type" readxs:"*" writexs:"*"`
	WarehouseID         string    `json:"warehouse_id,omitempty" db:"warehouse_id" readxs:"*" writexs:"*"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

// PowerSwitch records which power source currently supplies the facility.
// Status true means generator supply (dgset_id set), false means grid supply
// (grid_id set). Exactly one of the two source ids is populated; each switch
// overwrites the previous state, there is no persisted history.
type PowerSwitch struct {
	ID        string    `json:"id" db:"id"`
	Status    bool      `json:"powerSource_status" db:"status"`
	GridID    *string   `json:"grid_id,omitempty" db:"grid_id"`
	DGSetID   *string   `json:"dgset_id,omitempty" db:"dgset_id"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
