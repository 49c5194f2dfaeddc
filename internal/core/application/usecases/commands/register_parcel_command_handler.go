package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/sequence"
)

// RegisterParcelCommandHandler registers a parcel. The sender must be a
// registered client, the recipient a person, and the driver, when assigned
// up front, an employee with the Driver role. The recipient's contact data
// and address are copied into a snapshot before the parcel row is written.
// The snapshot insert carries an undo, so a failed parcel insert does not
// leave a stray snapshot behind.
type RegisterParcelCommandHandler struct {
	people    ports.PersonRepository
	clients   ports.ClientRepository
	employees ports.EmployeeRepository
	addresses ports.AddressRepository
	parcels   ports.ParcelRepository
	clock     Clock
}

// NewRegisterParcelCommandHandler creates the handler.
func NewRegisterParcelCommandHandler(people ports.PersonRepository, clients ports.ClientRepository,
	employees ports.EmployeeRepository, addresses ports.AddressRepository,
	parcels ports.ParcelRepository, clock Clock) RegisterParcelCommandHandler {
	return RegisterParcelCommandHandler{
		people:    people,
		clients:   clients,
		employees: employees,
		addresses: addresses,
		parcels:   parcels,
		clock:     clock,
	}
}

// Handle runs the command and returns the registered parcel, including its
// generated id and tracking code.
func (h *RegisterParcelCommandHandler) Handle(ctx context.Context, cmd RegisterParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	// Only clients send parcels.
	if _, err := h.clients.Get(ctx, cmd.SenderID()); err != nil {
		return nil, err
	}

	recipient, err := h.people.Get(ctx, cmd.RecipientID())
	if err != nil {
		return nil, err
	}

	if err := checkDriver(ctx, h.employees, cmd.DriverID()); err != nil {
		return nil, err
	}

	address, err := h.addresses.Get(ctx, recipient.AddressID())
	if err != nil {
		return nil, err
	}

	snapshot, err := parcel.NewSnapshotForRecipient(recipient, address)
	if err != nil {
		return nil, err
	}

	var registered *parcel.Parcel

	result := sequence.New().
		Add(sequence.Step{
			Name: "snapshot.add",
			Run: func(ctx context.Context) error {
				return h.parcels.AddSnapshot(ctx, snapshot)
			},
			Undo: func(ctx context.Context) error {
				return h.parcels.DeleteSnapshot(ctx, snapshot.ID())
			},
		}).
		Add(sequence.Step{
			Name: "parcel.add",
			Run: func(ctx context.Context) error {
				p, err := parcel.NewParcel(cmd.SenderID(), cmd.RecipientID(), snapshot.ID(),
					cmd.Weight(), cmd.Category(), h.clock(), cmd.ExpectedDelivery(), cmd.DriverID())
				if err != nil {
					return err
				}
				registered = p
				return h.parcels.Add(ctx, registered)
			},
		}).
		Execute(ctx)

	if result.Failed() {
		return nil, result
	}

	return registered, nil
}

// checkDriver verifies that the referenced employee exists and actually
// drives. A nil id means no driver assigned yet.
func checkDriver(ctx context.Context, employees ports.EmployeeRepository, driverID *kernel.ID) error {
	if driverID == nil {
		return nil
	}

	driver, err := employees.Get(ctx, *driverID)
	if err != nil {
		return err
	}
	if !driver.Role().TakesVehicle() {
		return errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("employee %d has role %s, not Driver", driverID.Int64(), driver.Role()))
	}
	return nil
}
