package ports

import "context"

// Dependency names one referential edge between tables. The integrity guard
// probes these edges before destructive operations, since the schema carries
// no foreign keys.
type Dependency int

const (
	// AccountByPerson: an account exists for the person.
	AccountByPerson Dependency = iota

	// ClientByPerson: a client row exists for the person.
	ClientByPerson

	// EmployeeByPerson: an employee row exists for the person.
	EmployeeByPerson

	// ParcelBySender: a parcel names the person as sender.
	ParcelBySender

	// ParcelByRecipient: a parcel names the person as recipient.
	ParcelByRecipient

	// PersonByAddress: a person references the address.
	PersonByAddress

	// HeadquartersByAddress: a site references the address.
	HeadquartersByAddress

	// EmployeeByVehicle: a driver references the vehicle.
	EmployeeByVehicle

	// ShipmentEntryByVehicle: a load entry references the vehicle.
	ShipmentEntryByVehicle

	// EmployeeByHeadquarters: an employee references the site.
	EmployeeByHeadquarters

	// ShipmentEntryByParcel: a load entry references the parcel.
	ShipmentEntryByParcel

	// ParcelByDriver: a parcel names the employee as its driver.
	ParcelByDriver
)

// String names the edge for error messages and logs.
func (d Dependency) String() string {
	switch d {
	case AccountByPerson:
		return "accounts"
	case ClientByPerson:
		return "clients"
	case EmployeeByPerson:
		return "employees"
	case ParcelBySender:
		return "parcels (as sender)"
	case ParcelByRecipient:
		return "parcels (as recipient)"
	case PersonByAddress:
		return "people"
	case HeadquartersByAddress:
		return "headquarters"
	case EmployeeByVehicle:
		return "employees (drivers)"
	case ShipmentEntryByVehicle:
		return "shipment entries"
	case EmployeeByHeadquarters:
		return "employees"
	case ShipmentEntryByParcel:
		return "shipment entries"
	case ParcelByDriver:
		return "parcels (as driver)"
	}
	return "unknown"
}

// IntegrityGuard probes referential edges. Refers reports whether at least
// one row on the edge references the given key. The probe and the mutation
// it protects are separate statements, so a concurrent writer can still slip
// a reference in between them; callers accept that window.
type IntegrityGuard interface {
	Refers(ctx context.Context, dep Dependency, key any) (bool, error)
}
