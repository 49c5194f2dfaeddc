// Package postgres holds the storage adapters. The repositories live in
// per-aggregate subpackages; this package carries the integrity guard, which
// spans all tables.
package postgres

import (
	"context"
	"fmt"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// probe is one referential edge expressed as a table and the column that
// carries the reference.
type probe struct {
	table  string
	column string
}

// probes maps every Dependency to its SQL probe. The schema has no foreign
// keys, so these lookups are the only referential checks in the system.
var probes = map[ports.Dependency]probe{
	ports.AccountByPerson:        {table: "accounts", column: "person_id"},
	ports.ClientByPerson:         {table: "clients", column: "person_id"},
	ports.EmployeeByPerson:       {table: "employees", column: "person_id"},
	ports.ParcelBySender:         {table: "parcels", column: "sender_id"},
	ports.ParcelByRecipient:      {table: "parcels", column: "recipient_id"},
	ports.PersonByAddress:        {table: "people", column: "address_id"},
	ports.HeadquartersByAddress:  {table: "headquarters", column: "address_id"},
	ports.EmployeeByVehicle:      {table: "employees", column: "vehicle_plate"},
	ports.ShipmentEntryByVehicle: {table: "shipment_entries", column: "plate"},
	ports.EmployeeByHeadquarters: {table: "employees", column: "headquarters_id"},
	ports.ShipmentEntryByParcel:  {table: "shipment_entries", column: "parcel_id"},
	ports.ParcelByDriver:         {table: "parcels", column: "driver_id"},
}

// GormIntegrityGuard implements IntegrityGuard by probing reference columns
// with EXISTS queries.
type GormIntegrityGuard struct {
	db *gorm.DB
}

// NewGormIntegrityGuard creates the guard.
func NewGormIntegrityGuard(db *gorm.DB) *GormIntegrityGuard {
	return &GormIntegrityGuard{db: db}
}

// Refers reports whether at least one row on the edge references the key.
func (g *GormIntegrityGuard) Refers(ctx context.Context, dep ports.Dependency, key any) (bool, error) {
	p, ok := probes[dep]
	if !ok {
		return false, errs.NewValueIsInvalidErrorWithCause("dependency",
			fmt.Errorf("no probe registered for dependency %d", dep))
	}

	// Table and column come from the static probe map above, never from the
	// caller; only the key is bound as a parameter.
	var exists bool
	err := g.db.WithContext(ctx).
		Raw(fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = ?)", p.table, p.column), key).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}

	return exists, nil
}
