package shipmentrepo

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// AddEntry inserts one entry. Inserting the same (plate, parcel, loadedAt)
// tuple twice reports a duplicate.
func (r *GormShipmentRepository) AddEntry(ctx context.Context, entry *shipment.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	err := r.db.WithContext(ctx).Create(&dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewDuplicateValueErrorWithCause("shipmentEntry", dto.ParcelID, err)
	}
	return err
}

// GetEventEntries retrieves every entry of one load event. A missing event
// yields an empty slice, not an error.
func (r *GormShipmentRepository) GetEventEntries(ctx context.Context, plate fleet.Plate, loadedAt time.Time) ([]*shipment.Entry, error) {
	if err := plate.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "plate = ? AND loaded_at = ?", plate.String(), loadedAt).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*shipment.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// RemoveEntry deletes one entry from a load event.
func (r *GormShipmentRepository) RemoveEntry(ctx context.Context, plate fleet.Plate, parcelID kernel.ID, loadedAt time.Time) error {
	if err := plate.Validate(); err != nil {
		return err
	}
	if err := parcelID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Delete(&EntryDTO{}, "plate = ? AND parcel_id = ? AND loaded_at = ?",
			plate.String(), parcelID.Int64(), loadedAt)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipmentEntry", parcelID.Int64())
	}

	return nil
}

// DeleteEvent deletes every entry of one load event.
func (r *GormShipmentRepository) DeleteEvent(ctx context.Context, plate fleet.Plate, loadedAt time.Time) error {
	if err := plate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Delete(&EntryDTO{}, "plate = ? AND loaded_at = ?", plate.String(), loadedAt)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipmentEvent", plate.String())
	}

	return nil
}
