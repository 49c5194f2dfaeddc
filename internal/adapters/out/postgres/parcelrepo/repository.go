package parcelrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db *gorm.DB
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB) *GormParcelRepository {
	return &GormParcelRepository{db: db}
}

// Add inserts the parcel and assigns the generated id to the aggregate.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := parcelFromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateValueErrorWithCause("trackingCode", dto.TrackingCode, err)
		}
		return err
	}

	return aggregate.AssignID(kernel.ID(dto.ID))
}

// Update saves an existing parcel.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := parcelFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", dto.ID)
	}

	return nil
}

// Get retrieves a parcel by id.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.ID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.Int64())
		}
		return nil, err
	}

	return parcelToDomain(dto)
}

// Delete removes a parcel by id.
func (r *GormParcelRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ParcelDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", id.Int64())
	}

	return nil
}

// AddSnapshot inserts the snapshot and assigns the generated id.
func (r *GormParcelRepository) AddSnapshot(ctx context.Context, snapshot *parcel.TrackingSnapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	dto := snapshotFromDomain(snapshot)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return snapshot.AssignID(kernel.ID(dto.ID))
}

// GetSnapshot retrieves a snapshot by id.
func (r *GormParcelRepository) GetSnapshot(ctx context.Context, id kernel.ID) (*parcel.TrackingSnapshot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SnapshotDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("snapshot", id.Int64())
		}
		return nil, err
	}

	return snapshotToDomain(dto)
}

// DeleteSnapshot removes a snapshot by id.
func (r *GormParcelRepository) DeleteSnapshot(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&SnapshotDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("snapshot", id.Int64())
	}

	return nil
}
