// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// integrity probes, and persistence through a compensating sequence.
//
// The schema carries no foreign keys and the handlers run no transactions.
// Multi-write operations go through sequence.Sequence, which undoes what it
// can on failure and reports what it cannot.
package commands

import "time"

// Clock supplies the current instant. Handlers that stamp registration or
// loading times take one so tests can pin it.
type Clock func() time.Time

// AddressPayload carries the raw address fields of a command. Validation
// happens when the domain Address is constructed.
type AddressPayload struct {
	PostalCode string
	State      string
	City       string
	District   string
	Street     string
	Number     string
	Complement *string
}
