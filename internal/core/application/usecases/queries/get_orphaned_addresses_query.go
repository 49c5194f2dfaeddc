package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetOrphanedAddressesQueryIsNotConstructed = errors.New(
	"GetOrphanedAddressesQuery must be created via NewGetOrphanedAddressesQuery constructor",
)

// GetOrphanedAddressesQuery lists addresses no person or headquarters
// references. Failed multi-step writes deliberately leave the address row
// behind; this query surfaces those leftovers for cleanup.
type GetOrphanedAddressesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrphanedAddressesQuery creates the query. It takes no parameters.
func NewGetOrphanedAddressesQuery() GetOrphanedAddressesQuery {
	return GetOrphanedAddressesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrphanedAddressesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrphanedAddressesQueryIsNotConstructed)
}

// GetOrphanedAddressesQueryResponse is one unreferenced address.
type GetOrphanedAddressesQueryResponse struct {
	ID         int64
	PostalCode string
	City       string
	Street     string
	Number     string
}
