package queries

import (
	"context"

	"logistics/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetLoadCandidatesQueryHandler finds parcels that can go into one load
// event: loadable status, not already in that event. Oldest registrations
// come first so the backlog drains in order.
type GetLoadCandidatesQueryHandler struct {
	db *gorm.DB
}

// NewGetLoadCandidatesQueryHandler creates the handler.
func NewGetLoadCandidatesQueryHandler(db *gorm.DB) GetLoadCandidatesQueryHandler {
	return GetLoadCandidatesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetLoadCandidatesQueryHandler) Handle(
	ctx context.Context,
	query GetLoadCandidatesQuery,
) ([]GetLoadCandidatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]GetLoadCandidatesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.tracking_code,
			p.weight_kg,
			p.status,
			p.registered_at
		FROM parcels p
		WHERE p.status IN (?, ?)
		  AND NOT EXISTS (
			SELECT 1 FROM shipment_entries se
			WHERE se.parcel_id = p.id AND se.plate = ? AND se.loaded_at = ?
		  )
		ORDER BY p.registered_at, p.id
	`, parcel.Processing.String(), parcel.AwaitingPickup.String(),
		query.Plate().String(), query.LoadedAt()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var candidate GetLoadCandidatesQueryResponse

		err = rows.Scan(
			&candidate.ID,
			&candidate.TrackingCode,
			&candidate.WeightKG,
			&candidate.Status,
			&candidate.RegisteredAt,
		)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, candidate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}
