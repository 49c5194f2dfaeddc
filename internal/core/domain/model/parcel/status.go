package parcel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is a parcel's position in its delivery lifecycle.
type Status int

const (
	// UnknownStatus catches uninitialized values.
	UnknownStatus Status = iota

	// Processing means the parcel was registered and is being prepared.
	Processing

	// AwaitingPickup means the parcel is ready to be loaded onto a vehicle.
	AwaitingPickup

	// InTransit means the parcel is on a vehicle.
	InTransit

	// Delivered is a final state: the parcel reached its recipient.
	Delivered

	// Cancelled is a final state: the parcel was withdrawn.
	Cancelled

	// DeliveryFailed means a delivery attempt failed; the parcel may be
	// retried or cancelled.
	DeliveryFailed
)

func statusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:  "Unknown",
		Processing:     "Processing",
		AwaitingPickup: "AwaitingPickup",
		InTransit:      "InTransit",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
		DeliveryFailed: "DeliveryFailed",
	}
}

// ParseStatus converts the persisted representation back to a Status.
func ParseStatus(s string) (Status, error) {
	for st, str := range statusStrings() {
		if str == s && st != UnknownStatus {
			return st, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks the status is one of the valid values.
func (s Status) Validate() error {
	switch s {
	case Processing, AwaitingPickup, InTransit, Delivered, Cancelled, DeliveryFailed:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%d is not a valid status", s))
}

// IsFinal reports whether no further transitions leave this status.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// Loadable reports whether a parcel in this status may be packed onto a
// shipment.
func (s Status) Loadable() bool {
	return s == Processing || s == AwaitingPickup
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// TransitionPolicy decides which status changes are accepted.
type TransitionPolicy int

const (
	// Permissive accepts any change between valid statuses. This matches
	// operator-driven corrections where back-office staff fix mistakes by
	// setting the status directly.
	Permissive TransitionPolicy = iota

	// Guarded only accepts transitions along the delivery lifecycle graph
	// and rejects any change out of a final status.
	Guarded
)

// guardedTransitions is the lifecycle graph enforced by the Guarded policy.
var guardedTransitions = map[Status][]Status{
	Processing:     {AwaitingPickup, Cancelled},
	AwaitingPickup: {InTransit, Cancelled},
	InTransit:      {Delivered, DeliveryFailed},
	DeliveryFailed: {InTransit, Cancelled},
}

// CanTransition reports whether the policy accepts moving from one status to
// another. Same-status changes are always accepted.
func (p TransitionPolicy) CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	if p == Permissive {
		return true
	}
	for _, next := range guardedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
