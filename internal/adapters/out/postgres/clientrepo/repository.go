package clientrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM.
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GORM client repository.
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// Add inserts the client row. The key is the person's id, so nothing is
// generated on insert.
func (r *GormClientRepository) Add(ctx context.Context, aggregate *party.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a client by person id.
func (r *GormClientRepository) Get(ctx context.Context, personID kernel.ID) (*party.Client, error) {
	if err := personID.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "person_id = ?", personID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client", personID.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a client by person id.
func (r *GormClientRepository) Delete(ctx context.Context, personID kernel.ID) error {
	if err := personID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ClientDTO{}, "person_id = ?", personID.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("client", personID.Int64())
	}

	return nil
}
