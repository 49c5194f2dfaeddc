package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrphanedAddressesQueryHandler finds address rows that nothing
// references anymore.
type GetOrphanedAddressesQueryHandler struct {
	db *gorm.DB
}

// NewGetOrphanedAddressesQueryHandler creates the handler.
func NewGetOrphanedAddressesQueryHandler(db *gorm.DB) GetOrphanedAddressesQueryHandler {
	return GetOrphanedAddressesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrphanedAddressesQueryHandler) Handle(
	ctx context.Context,
	query GetOrphanedAddressesQuery,
) ([]GetOrphanedAddressesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	addresses := make([]GetOrphanedAddressesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.postal_code,
			a.city,
			a.street,
			a.number
		FROM addresses a
		WHERE NOT EXISTS (SELECT 1 FROM people p WHERE p.address_id = a.id)
		  AND NOT EXISTS (SELECT 1 FROM headquarters h WHERE h.address_id = a.id)
		ORDER BY a.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orphan GetOrphanedAddressesQueryResponse

		err = rows.Scan(
			&orphan.ID,
			&orphan.PostalCode,
			&orphan.City,
			&orphan.Street,
			&orphan.Number,
		)
		if err != nil {
			return nil, err
		}

		addresses = append(addresses, orphan)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}
