// FilePath: internal/models/models.room.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// LevelSlots maps a level label to the ordered slot numbers on that level.
// Stored as a single JSONB column.
type LevelSlots map[string][]int

// Value implements the driver.Valuer interface
func (l LevelSlots) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(LevelSlots{})
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *LevelSlots) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, l)
}

type Room struct {
	ID          string     `json:"id" db:"id"`
	RoomNumber  string     `json:"room_number" db:"room_number" readxs:"*" writexs:"*"`
	RoomName    string     `json:"room_name" db:"room_name" readxs:"*" writexs:"*"`
	Racks       int        `json:"racks" db:"racks" readxs:"*" writexs:"*"`
	PowerPoint  int        `json:"power_point" db:"power_point" readxs:"*" writexs:"*"`
	Slot        int        `json:"slot" db:"slot" readxs:"*" writexs:"*"`
	LevelSlots  LevelSlots `json:"level_slots" db:"level_slots" readxs:"*" writexs:"*"`
	OwnerID     string     `json:"owner_id" db:"owner_id" readxs:"owner,system,superadmin" writexs:"system,superadmin"`
	WarehouseID string     `json:"warehouse_id,omitempty" db:"warehouse_id" readxs:"*" writexs:"*"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
