// Package depotrepo persists company headquarters.
package depotrepo

import (
	"logistics/internal/core/domain/model/depot"
	"logistics/internal/core/domain/model/kernel"
)

// HeadquartersDTO is the database row for a site. AddressID references a
// dedicated address row owned by the site.
type HeadquartersDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	Name      string
	Kind      string `gorm:"type:varchar(16)"`
	Phone     string
	AddressID int64  `gorm:"index"`
}

// TableName overrides GORM's default naming.
func (HeadquartersDTO) TableName() string {
	return "headquarters"
}

func fromDomain(h *depot.Headquarters) HeadquartersDTO {
	return HeadquartersDTO{
		ID:        h.ID().Int64(),
		Name:      h.Name(),
		Kind:      h.Kind().String(),
		Phone:     h.Phone(),
		AddressID: h.AddressID().Int64(),
	}
}

func toDomain(dto HeadquartersDTO) (*depot.Headquarters, error) {
	kind, err := depot.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}

	return depot.RestoreHeadquarters(kernel.ID(dto.ID), dto.Name, kind, dto.Phone, kernel.ID(dto.AddressID))
}
