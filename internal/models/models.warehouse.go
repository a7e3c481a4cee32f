// FilePath: internal/models/models.warehouse.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// Dimensions holds the physical dimensions of a warehouse in meters.
// Stored as a single JSONB column.
type Dimensions struct {
	Length float64 `json:"length" db:"length"`
	Width  float64 `json:"width" db:"width"`
	Height float64 `json:"height" db:"height"`
}

// Value implements the driver.Valuer interface
func (d Dimensions) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements the sql.Scanner interface
func (d *Dimensions) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, d)
}

// Warehouse is the aggregate root of the facility hierarchy. Child entities
// are referenced by id only; the arrays are not enforced as foreign keys, so
// a stale id is a valid (if degraded) state the resolver must tolerate.
type Warehouse struct {
	ID             string         `json:"id" db:"id"`
	Name           string         `json:"name" db:"name" readxs:"*" writexs:"*"`
	Latitude       float64        `json:"latitude" db:"latitude" readxs:"*" writexs:"*"`
	Longitude      float64        `json:"longitude" db:"longitude" readxs:"*" writexs:"*"`
	Dimensions     Dimensions     `json:"dimensions" db:"dimensions" readxs:"*" writexs:"*"`
	EnergyResource string         `json:"energy_resource" db:"energy_resource" readxs:"*" writexs:"*"`
	CoolingUnits   int            `json:"cooling_units" db:"cooling_units" readxs:"*" writexs:"*"`
	SensorCount    int            `json:"sensor_count" db:"sensor_count" readxs:"*" writexs:"*"`
	OwnerID        string         `json:"owner_id" db:"owner_id" readxs:"owner,system,superadmin" writexs:"system,superadmin"`
	OwnerEmail     string         `json:"owner_email" db:"owner_email" readxs:"owner,system,superadmin" writexs:"system,superadmin"`
	RoomIDs        pq.StringArray `json:"room_ids" db:"room_ids" readxs:"*" writexs:"*"`
	GridIDs        pq.StringArray `json:"grid_ids" db:"grid_ids" readxs:"*" writexs:"*"`
	DGSetIDs       pq.StringArray `json:"dgset_ids" db:"dgset_ids" readxs:"*" writexs:"*"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}
