package queries

import (
	"context"

	"logistics/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetOverdueParcelsQueryHandler finds parcels still in flight past their
// due date. Delivered and cancelled parcels are done and never overdue.
type GetOverdueParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueParcelsQueryHandler creates the handler.
func NewGetOverdueParcelsQueryHandler(db *gorm.DB) GetOverdueParcelsQueryHandler {
	return GetOverdueParcelsQueryHandler{db: db}
}

// Handle executes the query. The oldest parcel comes first.
func (h GetOverdueParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueParcelsQuery,
) ([]GetOverdueParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetOverdueParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			status,
			registered_at,
			expected_delivery,
			sender_id,
			recipient_id
		FROM parcels
		WHERE status NOT IN (?, ?)
		  AND (
			(expected_delivery IS NOT NULL AND expected_delivery < ?)
			OR (expected_delivery IS NULL AND registered_at < ?)
		  )
		ORDER BY registered_at, id
	`, parcel.Delivered.String(), parcel.Cancelled.String(),
		query.AsOf(), query.FallbackCutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var overdue GetOverdueParcelsQueryResponse

		err = rows.Scan(
			&overdue.ID,
			&overdue.TrackingCode,
			&overdue.Status,
			&overdue.RegisteredAt,
			&overdue.ExpectedDelivery,
			&overdue.SenderID,
			&overdue.RecipientID,
		)
		if err != nil {
			return nil, err
		}

		parcels = append(parcels, overdue)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
