// Package fleetrepo persists vehicles, keyed by plate.
package fleetrepo

import (
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
)

// VehicleDTO is the database row for a vehicle. The plate is the primary
// key; there is no surrogate id.
type VehicleDTO struct {
	Plate        string `gorm:"primaryKey;type:varchar(10)"`
	CapacityKG   float64
	VehicleType  string
	Availability string `gorm:"type:varchar(16)"`
}

// TableName overrides GORM's default naming.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *fleet.Vehicle) VehicleDTO {
	return VehicleDTO{
		Plate:        v.Plate().String(),
		CapacityKG:   v.Capacity().KG(),
		VehicleType:  v.VehicleType(),
		Availability: v.Availability().String(),
	}
}

func toDomain(dto VehicleDTO) (*fleet.Vehicle, error) {
	plate, err := fleet.NewPlate(dto.Plate)
	if err != nil {
		return nil, err
	}

	capacity, err := kernel.NewWeight(dto.CapacityKG)
	if err != nil {
		return nil, err
	}

	availability, err := fleet.ParseAvailability(dto.Availability)
	if err != nil {
		return nil, err
	}

	return fleet.RestoreVehicle(plate, capacity, dto.VehicleType, availability)
}
