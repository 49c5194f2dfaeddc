// Package shipmentrepo persists load entries. Entries sharing a plate and a
// load timestamp form one load event; there is no separate event row.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// EntryDTO is the database row for one parcel on one load event. The triple
// (plate, parcel_id, loaded_at) is the primary key.
type EntryDTO struct {
	Plate    string    `gorm:"primaryKey;type:varchar(10)"`
	ParcelID int64     `gorm:"primaryKey"`
	LoadedAt time.Time `gorm:"primaryKey"`
}

// TableName overrides GORM's default naming.
func (EntryDTO) TableName() string {
	return "shipment_entries"
}

func fromDomain(e *shipment.Entry) EntryDTO {
	return EntryDTO{
		Plate:    e.Plate().String(),
		ParcelID: e.ParcelID().Int64(),
		LoadedAt: e.LoadedAt(),
	}
}

func toDomain(dto EntryDTO) (*shipment.Entry, error) {
	plate, err := fleet.NewPlate(dto.Plate)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreEntry(plate, kernel.ID(dto.ParcelID), dto.LoadedAt)
}
