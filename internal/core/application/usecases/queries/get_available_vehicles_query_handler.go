package queries

import (
	"context"

	"logistics/internal/core/domain/model/fleet"

	"gorm.io/gorm"
)

// GetAvailableVehiclesQueryHandler reads available vehicles straight from the
// database with raw SQL, skipping the domain model.
type GetAvailableVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableVehiclesQueryHandler creates the handler.
func NewGetAvailableVehiclesQueryHandler(db *gorm.DB) GetAvailableVehiclesQueryHandler {
	return GetAvailableVehiclesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by plate for stable output.
func (h GetAvailableVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableVehiclesQuery,
) ([]GetAvailableVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetAvailableVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			plate,
			capacity_kg,
			vehicle_type
		FROM vehicles
		WHERE availability = ?
		ORDER BY plate
	`, fleet.Available.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var vehicle GetAvailableVehiclesQueryResponse

		err = rows.Scan(
			&vehicle.Plate,
			&vehicle.CapacityKG,
			&vehicle.VehicleType,
		)
		if err != nil {
			return nil, err
		}

		vehicles = append(vehicles, vehicle)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
