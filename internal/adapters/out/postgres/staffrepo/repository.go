package staffrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/staff"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEmployeeRepository implements EmployeeRepository using GORM.
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GORM employee repository.
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// Add inserts the employee row. The CPF is unique across staff, so hiring
// the same document twice reports a duplicate.
func (r *GormEmployeeRepository) Add(ctx context.Context, aggregate *staff.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Create(&dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewDuplicateValueErrorWithCause("cpf", dto.CPF, err)
	}
	return err
}

// Update saves an existing employee. Select("*") writes the nullable
// reference columns too, so a reassignment clears the stale one.
func (r *GormEmployeeRepository) Update(ctx context.Context, aggregate *staff.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&EmployeeDTO{}).Where("person_id = ?", dto.PersonID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("employee", dto.PersonID)
	}

	return nil
}

// Get retrieves an employee by person id.
func (r *GormEmployeeRepository) Get(ctx context.Context, personID kernel.ID) (*staff.Employee, error) {
	if err := personID.Validate(); err != nil {
		return nil, err
	}

	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "person_id = ?", personID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", personID.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an employee by person id.
func (r *GormEmployeeRepository) Delete(ctx context.Context, personID kernel.ID) error {
	if err := personID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&EmployeeDTO{}, "person_id = ?", personID.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("employee", personID.Int64())
	}

	return nil
}
