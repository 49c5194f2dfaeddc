package fleetrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Add inserts the vehicle. The plate is the primary key, so registering a
// plate twice reports a duplicate.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *fleet.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Create(&dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewDuplicateValueErrorWithCause("plate", dto.Plate, err)
	}
	return err
}

// Update saves an existing vehicle.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *fleet.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&VehicleDTO{}).Where("plate = ?", dto.Plate).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", dto.Plate)
	}

	return nil
}

// Get retrieves a vehicle by plate.
func (r *GormVehicleRepository) Get(ctx context.Context, plate fleet.Plate) (*fleet.Vehicle, error) {
	if err := plate.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "plate = ?", plate.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", plate.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a vehicle by plate.
func (r *GormVehicleRepository) Delete(ctx context.Context, plate fleet.Plate) error {
	if err := plate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VehicleDTO{}, "plate = ?", plate.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", plate.String())
	}

	return nil
}
