// Package partyrepo persists addresses and people. The schema carries no
// foreign keys; references are plain columns and the integrity guard probes
// them before destructive operations.
package partyrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
)

// AddressDTO is the database row for a shared address.
type AddressDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	PostalCode string
	State      string
	City       string
	District   string
	Street     string
	Number     string
	Complement *string
}

// TableName overrides GORM's default naming.
func (AddressDTO) TableName() string {
	return "addresses"
}

// PersonDTO is the database row for a person. AddressID is a reference
// column, not a schema-level foreign key.
type PersonDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	Name       string
	NationalID *string
	Phone      string
	Email      string
	AddressID  int64 `gorm:"index"`
}

// TableName overrides GORM's default naming.
func (PersonDTO) TableName() string {
	return "people"
}

func addressFromDomain(a *party.Address) AddressDTO {
	return AddressDTO{
		ID:         a.ID().Int64(),
		PostalCode: a.PostalCode(),
		State:      a.State(),
		City:       a.City(),
		District:   a.District(),
		Street:     a.Street(),
		Number:     a.Number(),
		Complement: a.Complement(),
	}
}

func addressToDomain(dto AddressDTO) (*party.Address, error) {
	return party.RestoreAddress(kernel.ID(dto.ID), dto.PostalCode, dto.State, dto.City,
		dto.District, dto.Street, dto.Number, dto.Complement)
}

func personFromDomain(p *party.Person) PersonDTO {
	return PersonDTO{
		ID:         p.ID().Int64(),
		Name:       p.Name(),
		NationalID: p.NationalID(),
		Phone:      p.Phone(),
		Email:      p.Email(),
		AddressID:  p.AddressID().Int64(),
	}
}

func personToDomain(dto PersonDTO) (*party.Person, error) {
	return party.RestorePerson(kernel.ID(dto.ID), dto.Name, dto.NationalID,
		dto.Phone, dto.Email, kernel.ID(dto.AddressID))
}
