package queries

import (
	"errors"
	"time"

	"logistics/internal/pkg/guard"
)

var ErrGetShipmentEventsQueryIsNotConstructed = errors.New(
	"GetShipmentEventsQuery must be created via NewGetShipmentEventsQuery constructor",
)

// GetShipmentEventsQuery lists load events. Entries sharing a plate and a
// load timestamp form one event; the read model aggregates them.
type GetShipmentEventsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShipmentEventsQuery creates the query. It takes no parameters.
func NewGetShipmentEventsQuery() GetShipmentEventsQuery {
	return GetShipmentEventsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentEventsQueryIsNotConstructed)
}

// GetShipmentEventsQueryResponse is one load event in the read model.
type GetShipmentEventsQueryResponse struct {
	Plate         string
	LoadedAt      time.Time
	ParcelCount   int64
	TotalWeightKG float64
}
