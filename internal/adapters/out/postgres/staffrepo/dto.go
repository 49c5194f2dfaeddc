// Package staffrepo persists employee annotations, keyed by person id.
package staffrepo

import (
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/staff"
)

// EmployeeDTO is the database row for an employee. The reference columns are
// nullable: only drivers may carry vehicle_plate, only site staff
// headquarters_id, and either can be NULL while unassigned.
type EmployeeDTO struct {
	PersonID       int64  `gorm:"primaryKey"`
	CPF            string `gorm:"column:cpf;type:varchar(14);uniqueIndex"`
	Department     string
	Role           string `gorm:"type:varchar(32)"`
	VehiclePlate   *string
	HeadquartersID *int64
}

// TableName overrides GORM's default naming.
func (EmployeeDTO) TableName() string {
	return "employees"
}

func fromDomain(e *staff.Employee) EmployeeDTO {
	var plate *string
	if p := e.VehiclePlate(); p != nil {
		raw := p.String()
		plate = &raw
	}

	var hqID *int64
	if id := e.HeadquartersID(); id != nil {
		raw := id.Int64()
		hqID = &raw
	}

	return EmployeeDTO{
		PersonID:       e.PersonID().Int64(),
		CPF:            e.CPF(),
		Department:     e.Department(),
		Role:           e.Role().String(),
		VehiclePlate:   plate,
		HeadquartersID: hqID,
	}
}

func toDomain(dto EmployeeDTO) (*staff.Employee, error) {
	role, err := staff.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	var plate *fleet.Plate
	if dto.VehiclePlate != nil {
		p, plateErr := fleet.NewPlate(*dto.VehiclePlate)
		if plateErr != nil {
			return nil, plateErr
		}
		plate = &p
	}

	var hqID *kernel.ID
	if dto.HeadquartersID != nil {
		id := kernel.ID(*dto.HeadquartersID)
		hqID = &id
	}

	return staff.RestoreEmployee(kernel.ID(dto.PersonID), dto.CPF, dto.Department, role, plate, hqID)
}
