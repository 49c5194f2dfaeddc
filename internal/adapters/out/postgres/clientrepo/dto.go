// Package clientrepo persists client annotations, keyed by person id.
package clientrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/party"
)

// ClientDTO is the database row for a client. Exactly one variant's columns
// are populated: PF rows carry cpf and birth_date, PJ rows carry cnpj and
// company_name.
type ClientDTO struct {
	PersonID    int64  `gorm:"primaryKey"`
	Kind        string `gorm:"type:varchar(2)"`
	CPF         *string
	BirthDate   *time.Time
	CNPJ        *string
	CompanyName *string
}

// TableName overrides GORM's default naming.
func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(c *party.Client) ClientDTO {
	return ClientDTO{
		PersonID:    c.PersonID().Int64(),
		Kind:        c.Kind().String(),
		CPF:         c.CPF(),
		BirthDate:   c.BirthDate(),
		CNPJ:        c.CNPJ(),
		CompanyName: c.CompanyName(),
	}
}

func toDomain(dto ClientDTO) (*party.Client, error) {
	kind, err := party.ParseClientKind(dto.Kind)
	if err != nil {
		return nil, err
	}

	return party.RestoreClient(kernel.ID(dto.PersonID), kind, dto.CPF, dto.BirthDate,
		dto.CNPJ, dto.CompanyName)
}
