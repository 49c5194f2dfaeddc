// Package queries contains the read side of the application. Query handlers
// bypass the repositories and read the database directly, returning flat
// response models shaped for their callers.
package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetAvailableVehiclesQueryIsNotConstructed = errors.New(
	"GetAvailableVehiclesQuery must be created via NewGetAvailableVehiclesQuery constructor",
)

// GetAvailableVehiclesQuery lists the vehicles that can take a load right now.
//
// Example:
//
//	query := NewGetAvailableVehiclesQuery()
//	handler := NewGetAvailableVehiclesQueryHandler(db)
//
//	vehicles, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list vehicles: %w", err)
//	}
type GetAvailableVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableVehiclesQuery creates the query. It takes no parameters.
func NewGetAvailableVehiclesQuery() GetAvailableVehiclesQuery {
	return GetAvailableVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableVehiclesQueryIsNotConstructed)
}

// GetAvailableVehiclesQueryResponse is one vehicle in the read model.
type GetAvailableVehiclesQueryResponse struct {
	Plate       string
	CapacityKG  float64
	VehicleType string
}
