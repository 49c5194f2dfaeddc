package partyrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// Add inserts the address and assigns the generated id to the aggregate.
func (r *GormAddressRepository) Add(ctx context.Context, aggregate *party.Address) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := addressFromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(kernel.ID(dto.ID))
}

// Update saves an existing address.
func (r *GormAddressRepository) Update(ctx context.Context, aggregate *party.Address) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := addressFromDomain(aggregate)
	// Select("*") writes every column, so clearing the nullable complement
	// is persisted too.
	result := r.db.WithContext(ctx).Model(&AddressDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", dto.ID)
	}

	return nil
}

// Get retrieves an address by id.
func (r *GormAddressRepository) Get(ctx context.Context, id kernel.ID) (*party.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.Int64())
		}
		return nil, err
	}

	return addressToDomain(dto)
}

// Delete removes an address by id.
func (r *GormAddressRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AddressDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", id.Int64())
	}

	return nil
}

// GormPersonRepository implements PersonRepository using GORM.
type GormPersonRepository struct {
	db *gorm.DB
}

// NewGormPersonRepository creates a new GORM person repository.
func NewGormPersonRepository(db *gorm.DB) *GormPersonRepository {
	return &GormPersonRepository{db: db}
}

// Add inserts the person and assigns the generated id to the aggregate.
func (r *GormPersonRepository) Add(ctx context.Context, aggregate *party.Person) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := personFromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(kernel.ID(dto.ID))
}

// Update saves an existing person.
func (r *GormPersonRepository) Update(ctx context.Context, aggregate *party.Person) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := personFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PersonDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("person", dto.ID)
	}

	return nil
}

// Get retrieves a person by id.
func (r *GormPersonRepository) Get(ctx context.Context, id kernel.ID) (*party.Person, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PersonDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("person", id.Int64())
		}
		return nil, err
	}

	return personToDomain(dto)
}

// Delete removes a person by id.
func (r *GormPersonRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PersonDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("person", id.Int64())
	}

	return nil
}
