package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShipmentEventsQueryHandler aggregates shipment entries into load events,
// joining the parcels table for the total weight on board.
type GetShipmentEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentEventsQueryHandler creates the handler.
func NewGetShipmentEventsQueryHandler(db *gorm.DB) GetShipmentEventsQueryHandler {
	return GetShipmentEventsQueryHandler{db: db}
}

// Handle executes the query. The newest event comes first.
func (h GetShipmentEventsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentEventsQuery,
) ([]GetShipmentEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetShipmentEventsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			se.plate,
			se.loaded_at,
			COUNT(se.parcel_id) AS parcel_count,
			COALESCE(SUM(p.weight_kg), 0) AS total_weight_kg
		FROM shipment_entries se
		LEFT JOIN parcels p ON p.id = se.parcel_id
		GROUP BY se.plate, se.loaded_at
		ORDER BY se.loaded_at DESC, se.plate
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event GetShipmentEventsQueryResponse

		err = rows.Scan(
			&event.Plate,
			&event.LoadedAt,
			&event.ParcelCount,
			&event.TotalWeightKG,
		)
		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
