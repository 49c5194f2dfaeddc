// Package parcelrepo persists parcels and their destination snapshots. The
// two tables form one storage concern: every parcel references exactly one
// snapshot, frozen at registration time.
package parcelrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
)

// ParcelDTO is the database row for a parcel. SenderID, RecipientID,
// SnapshotID and DriverID are reference columns without schema-level
// foreign keys.
type ParcelDTO struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	TrackingCode     string `gorm:"type:varchar(32);uniqueIndex"`
	SenderID         int64  `gorm:"index"`
	RecipientID      int64  `gorm:"index"`
	SnapshotID       int64
	DriverID         *int64 `gorm:"index"`
	WeightKG         float64
	Category         string `gorm:"type:varchar(16)"`
	Status           string `gorm:"type:varchar(16);index"`
	RegisteredAt     time.Time
	ExpectedDelivery *time.Time
}

// TableName overrides GORM's default naming.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// SnapshotDTO is the database row for a frozen destination.
type SnapshotDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	RecipientName  string
	RecipientCPF   *string `gorm:"column:recipient_cpf;type:varchar(14)"`
	RecipientPhone string
	PostalCode     string
	State          string
	City           string
	District       string
	Street         string
	Number         string
	Complement     *string
}

// TableName overrides GORM's default naming.
func (SnapshotDTO) TableName() string {
	return "tracking_snapshots"
}

func parcelFromDomain(p *parcel.Parcel) ParcelDTO {
	var driverID *int64
	if p.DriverID() != nil {
		raw := p.DriverID().Int64()
		driverID = &raw
	}

	return ParcelDTO{
		ID:               p.ID().Int64(),
		TrackingCode:     p.TrackingCode().String(),
		SenderID:         p.SenderID().Int64(),
		RecipientID:      p.RecipientID().Int64(),
		SnapshotID:       p.SnapshotID().Int64(),
		DriverID:         driverID,
		WeightKG:         p.Weight().KG(),
		Category:         p.Category().String(),
		Status:           p.Status().String(),
		RegisteredAt:     p.RegisteredAt(),
		ExpectedDelivery: p.ExpectedDelivery(),
	}
}

func parcelToDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	weight, err := kernel.NewWeight(dto.WeightKG)
	if err != nil {
		return nil, err
	}

	category, err := parcel.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.ID
	if dto.DriverID != nil {
		id := kernel.ID(*dto.DriverID)
		driverID = &id
	}

	return parcel.RestoreParcel(kernel.ID(dto.ID), parcel.TrackingCode(dto.TrackingCode),
		kernel.ID(dto.SenderID), kernel.ID(dto.RecipientID), kernel.ID(dto.SnapshotID),
		weight, category, status, dto.RegisteredAt, dto.ExpectedDelivery, driverID)
}

func snapshotFromDomain(s *parcel.TrackingSnapshot) SnapshotDTO {
	return SnapshotDTO{
		ID:             s.ID().Int64(),
		RecipientName:  s.RecipientName(),
		RecipientCPF:   s.RecipientCPF(),
		RecipientPhone: s.RecipientPhone(),
		PostalCode:     s.PostalCode(),
		State:          s.State(),
		City:           s.City(),
		District:       s.District(),
		Street:         s.Street(),
		Number:         s.Number(),
		Complement:     s.Complement(),
	}
}

func snapshotToDomain(dto SnapshotDTO) (*parcel.TrackingSnapshot, error) {
	return parcel.RestoreSnapshot(kernel.ID(dto.ID), dto.RecipientName, dto.RecipientCPF,
		dto.RecipientPhone, dto.PostalCode, dto.State, dto.City,
		dto.District, dto.Street, dto.Number, dto.Complement)
}
