// Package accountrepo persists login accounts, keyed by person id.
package accountrepo

import (
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
)

// AccountDTO is the database row for a login account. The password column
// always holds a hash.
type AccountDTO struct {
	PersonID     int64  `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"type:varchar(32)"`
}

// TableName overrides GORM's default naming.
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(a *account.Account) AccountDTO {
	return AccountDTO{
		PersonID:     a.PersonID().Int64(),
		Username:     a.Username(),
		PasswordHash: a.PasswordHash(),
		Role:         a.Role().String(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	role, err := account.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(kernel.ID(dto.PersonID), dto.Username, dto.PasswordHash, role)
}
