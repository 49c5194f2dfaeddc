package accountrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Add inserts the account row. Both the person key and the username are
// unique, so a second account for the person or a taken username reports a
// duplicate.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Create(&dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewDuplicateValueErrorWithCause("username", dto.Username, err)
	}
	return err
}

// Update saves an existing account.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).Where("person_id = ?", dto.PersonID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", dto.PersonID)
	}

	return nil
}

// Get retrieves an account by person id.
func (r *GormAccountRepository) Get(ctx context.Context, personID kernel.ID) (*account.Account, error) {
	if err := personID.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "person_id = ?", personID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", personID.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an account by person id.
func (r *GormAccountRepository) Delete(ctx context.Context, personID kernel.ID) error {
	if err := personID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AccountDTO{}, "person_id = ?", personID.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", personID.Int64())
	}

	return nil
}
