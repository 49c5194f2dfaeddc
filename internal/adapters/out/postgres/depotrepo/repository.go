package depotrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/depot"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHeadquartersRepository implements HeadquartersRepository using GORM.
type GormHeadquartersRepository struct {
	db *gorm.DB
}

// NewGormHeadquartersRepository creates a new GORM headquarters repository.
func NewGormHeadquartersRepository(db *gorm.DB) *GormHeadquartersRepository {
	return &GormHeadquartersRepository{db: db}
}

// Add inserts the site and assigns the generated id to the aggregate.
func (r *GormHeadquartersRepository) Add(ctx context.Context, aggregate *depot.Headquarters) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(kernel.ID(dto.ID))
}

// Update saves an existing site.
func (r *GormHeadquartersRepository) Update(ctx context.Context, aggregate *depot.Headquarters) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&HeadquartersDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("headquarters", dto.ID)
	}

	return nil
}

// Get retrieves a site by id.
func (r *GormHeadquartersRepository) Get(ctx context.Context, id kernel.ID) (*depot.Headquarters, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HeadquartersDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("headquarters", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a site by id.
func (r *GormHeadquartersRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&HeadquartersDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("headquarters", id.Int64())
	}

	return nil
}
