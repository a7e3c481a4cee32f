// FilePath: internal/models/models.views.go
package models

// View projections returned by the composed warehouse endpoints. The detail
// types are the response contract: they carry the subset of child fields the
// warehouse view needs, never owner data or timestamps.

type RoomDetail struct {
	ID         string     `json:"id"`
	RoomName   string     `json:"room_name"`
	Racks      int        `json:"racks"`
	PowerPoint int        `json:"power_point"`
	Slot       int        `json:"slot"`
	LevelSlots LevelSlots `json:"level_slots"`
}

type GridDetail struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	OutputVoltage       float64 `json:"output_voltage"`
	MaxOutputCurrent    float64 `json:"max_output_current"`
	OutputConnectorType string  `json:"output_connector_type"`
}

type DGSetDetail struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	OutputVoltage       float64 `json:"output_voltage"`
	MaxOutputCurrent    float64 `json:"max_output_current"`
	FuelType            string  `json:"fuel_type"`
	FuelCapacity        float64 `json:"fuel_capacity"`
	OutputConnectorType string  `json:"output_connector_type"`
	MotorType           string  `json:"motor_type"`
}

// WarehouseDetail is a warehouse with its child id arrays replaced by resolved
// detail objects. A nil entry marks an id with no matching record.
type WarehouseDetail struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	Dimensions     Dimensions     `json:"dimensions"`
	EnergyResource string         `json:"energy_resource"`
	CoolingUnits   int            `json:"cooling_units"`
	SensorCount    int            `json:"sensor_count"`
	OwnerID        string         `json:"owner_id"`
	OwnerEmail     string         `json:"owner_email"`
	Rooms          []*RoomDetail  `json:"rooms"`
	Grids          []*GridDetail  `json:"grids"`
	DGSets         []*DGSetDetail `json:"dgsets"`
}

func NewRoomDetail(r *Room) *RoomDetail {
	if r == nil {
		return nil
	}
	return &RoomDetail{
		ID:         r.ID,
		RoomName:   r.RoomName,
		Racks:      r.Racks,
		PowerPoint: r.PowerPoint,
		Slot:       r.Slot,
		LevelSlots: r.LevelSlots,
	}
}

func NewGridDetail(g *Grid) *GridDetail {
	if g == nil {
		return nil
	}
	return &GridDetail{
		ID:                  g.ID,
		Name:                g.Name,
		OutputVoltage:       g.OutputVoltage,
		MaxOutputCurrent:    g.MaxOutputCurrent,
		OutputConnectorType: g.OutputConnectorType,
	}
}

func NewDGSetDetail(d *DGSet) *DGSetDetail {
	if d == nil {
		return nil
	}
	return &DGSetDetail{
		ID:                  d.ID,
		Name:                d.Name,
		OutputVoltage:       d.OutputVoltage,
		MaxOutputCurrent:    d.MaxOutputCurrent,
		FuelType:            d.FuelType,
		FuelCapacity:        d.FuelCapacity,
		OutputConnectorType: d.OutputConnectorType,
		MotorType:           d.MotorType,
	}
}

// NewWarehouseDetail builds the detail envelope from the stored warehouse.
// The resolved child slices are filled in by the composer.
func NewWarehouseDetail(w *Warehouse) *WarehouseDetail {
	return &WarehouseDetail{
		ID:             w.ID,
		Name:           w.Name,
		Latitude:       w.Latitude,
		Longitude:      w.Longitude,
		Dimensions:     w.Dimensions,
		EnergyResource: w.EnergyResource,
		CoolingUnits:   w.CoolingUnits,
		SensorCount:    w.SensorCount,
		OwnerID:        w.OwnerID,
		OwnerEmail:     w.OwnerEmail,
		Rooms:          []*RoomDetail{},
		Grids:          []*GridDetail{},
		DGSets:         []*DGSetDetail{},
	}
}
