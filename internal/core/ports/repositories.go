// Package ports declares the driven-side interfaces the core depends on.
// Adapters under internal/adapters implement them.
package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/depot"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/party"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/staff"
)

// AddressRepository stores shared addresses. Add assigns the generated id to
// the aggregate.
type AddressRepository interface {
	Add(ctx context.Context, aggregate *party.Address) error
	Update(ctx context.Context, aggregate *party.Address) error
	Get(ctx context.Context, id kernel.ID) (*party.Address, error)
	Delete(ctx context.Context, id kernel.ID) error
}

// PersonRepository stores people. Add assigns the generated id.
type PersonRepository interface {
	Add(ctx context.Context, aggregate *party.Person) error
	Update(ctx context.Context, aggregate *party.Person) error
	Get(ctx context.Context, id kernel.ID) (*party.Person, error)
	Delete(ctx context.Context, id kernel.ID) error
}

// ClientRepository stores client annotations, keyed by person id.
type ClientRepository interface {
	Add(ctx context.Context, aggregate *party.Client) error
	Get(ctx context.Context, personID kernel.ID) (*party.Client, error)
	Delete(ctx context.Context, personID kernel.ID) error
}

// EmployeeRepository stores employee annotations, keyed by person id.
type EmployeeRepository interface {
	Add(ctx context.Context, aggregate *staff.Employee) error
	Update(ctx context.Context, aggregate *staff.Employee) error
	Get(ctx context.Context, personID kernel.ID) (*staff.Employee, error)
	Delete(ctx context.Context, personID kernel.ID) error
}

// VehicleRepository stores fleet vehicles, keyed by plate.
type VehicleRepository interface {
	Add(ctx context.Context, aggregate *fleet.Vehicle) error
	Update(ctx context.Context, aggregate *fleet.Vehicle) error
	Get(ctx context.Context, plate fleet.Plate) (*fleet.Vehicle, error)
	Delete(ctx context.Context, plate fleet.Plate) error
}

// HeadquartersRepository stores company sites. Add assigns the generated id.
type HeadquartersRepository interface {
	Add(ctx context.Context, aggregate *depot.Headquarters) error
	Update(ctx context.Context, aggregate *depot.Headquarters) error
	Get(ctx context.Context, id kernel.ID) (*depot.Headquarters, error)
	Delete(ctx context.Context, id kernel.ID) error
}

// ParcelRepository stores parcels and their destination snapshots. Add
// assigns the generated ids.
type ParcelRepository interface {
	Add(ctx context.Context, aggregate *parcel.Parcel) error
	Update(ctx context.Context, aggregate *parcel.Parcel) error
	Get(ctx context.Context, id kernel.ID) (*parcel.Parcel, error)
	Delete(ctx context.Context, id kernel.ID) error

	AddSnapshot(ctx context.Context, snapshot *parcel.TrackingSnapshot) error
	GetSnapshot(ctx context.Context, id kernel.ID) (*parcel.TrackingSnapshot, error)
	DeleteSnapshot(ctx context.Context, id kernel.ID) error
}

// ShipmentRepository stores load entries. A load event is identified by
// (plate, loadedAt); there is no separate shipment row.
type ShipmentRepository interface {
	AddEntry(ctx context.Context, entry *shipment.Entry) error
	GetEventEntries(ctx context.Context, plate fleet.Plate, loadedAt time.Time) ([]*shipment.Entry, error)
	RemoveEntry(ctx context.Context, plate fleet.Plate, parcelID kernel.ID, loadedAt time.Time) error
	DeleteEvent(ctx context.Context, plate fleet.Plate, loadedAt time.Time) error
}

// AccountRepository stores login accounts, keyed by person id.
type AccountRepository interface {
	Add(ctx context.Context, aggregate *account.Account) error
	Update(ctx context.Context, aggregate *account.Account) error
	Get(ctx context.Context, personID kernel.ID) (*account.Account, error)
	Delete(ctx context.Context, personID kernel.ID) error
}
