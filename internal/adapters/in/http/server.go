// Package http exposes the back-office operations over REST. Handlers bind
// the request, build a command or query, and map domain errors to statuses;
// all rules live in the core.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/depot"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/staff"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP surface to the command and query handlers.
type Server struct {
	// Command handlers
	createPerson        commands.CreatePersonCommandHandler
	updatePerson        commands.UpdatePersonCommandHandler
	deletePerson        commands.DeletePersonCommandHandler
	registerClient      commands.RegisterClientCommandHandler
	removeClient        commands.RemoveClientCommandHandler
	hireEmployee        commands.HireEmployeeCommandHandler
	reassignEmployee    commands.ReassignEmployeeCommandHandler
	dismissEmployee     commands.DismissEmployeeCommandHandler
	registerVehicle     commands.RegisterVehicleCommandHandler
	refitVehicle        commands.RefitVehicleCommandHandler
	retireVehicle       commands.RetireVehicleCommandHandler
	openHeadquarters    commands.OpenHeadquartersCommandHandler
	renameHeadquarters  commands.RenameHeadquartersCommandHandler
	closeHeadquarters   commands.CloseHeadquartersCommandHandler
	registerParcel      commands.RegisterParcelCommandHandler
	correctParcel       commands.CorrectParcelCommandHandler
	deleteParcel        commands.DeleteParcelCommandHandler
	loadVehicle         commands.LoadVehicleCommandHandler
	unloadParcel        commands.UnloadParcelCommandHandler
	deleteShipmentEvent commands.DeleteShipmentEventCommandHandler
	openAccount         commands.OpenAccountCommandHandler
	changePassword      commands.ChangePasswordCommandHandler
	closeAccount        commands.CloseAccountCommandHandler

	// Query handlers
	availableVehicles queries.GetAvailableVehiclesQueryHandler
	loadCandidates    queries.GetLoadCandidatesQueryHandler
	shipmentEvents    queries.GetShipmentEventsQueryHandler
	overdueParcels    queries.GetOverdueParcelsQueryHandler
	orphanedAddresses queries.GetOrphanedAddressesQueryHandler
}

// Handlers bundles everything the server needs; it keeps NewServer's
// signature readable.
type Handlers struct {
	CreatePerson        commands.CreatePersonCommandHandler
	UpdatePerson        commands.UpdatePersonCommandHandler
	DeletePerson        commands.DeletePersonCommandHandler
	RegisterClient      commands.RegisterClientCommandHandler
	RemoveClient        commands.RemoveClientCommandHandler
	HireEmployee        commands.HireEmployeeCommandHandler
	ReassignEmployee    commands.ReassignEmployeeCommandHandler
	DismissEmployee     commands.DismissEmployeeCommandHandler
	RegisterVehicle     commands.RegisterVehicleCommandHandler
	RefitVehicle        commands.RefitVehicleCommandHandler
	RetireVehicle       commands.RetireVehicleCommandHandler
	OpenHeadquarters    commands.OpenHeadquartersCommandHandler
	RenameHeadquarters  commands.RenameHeadquartersCommandHandler
	CloseHeadquarters   commands.CloseHeadquartersCommandHandler
	RegisterParcel      commands.RegisterParcelCommandHandler
	CorrectParcel       commands.CorrectParcelCommandHandler
	DeleteParcel        commands.DeleteParcelCommandHandler
	LoadVehicle         commands.LoadVehicleCommandHandler
	UnloadParcel        commands.UnloadParcelCommandHandler
	DeleteShipmentEvent commands.DeleteShipmentEventCommandHandler
	OpenAccount         commands.OpenAccountCommandHandler
	ChangePassword      commands.ChangePasswordCommandHandler
	CloseAccount        commands.CloseAccountCommandHandler

	AvailableVehicles queries.GetAvailableVehiclesQueryHandler
	LoadCandidates    queries.GetLoadCandidatesQueryHandler
	ShipmentEvents    queries.GetShipmentEventsQueryHandler
	OverdueParcels    queries.GetOverdueParcelsQueryHandler
	OrphanedAddresses queries.GetOrphanedAddressesQueryHandler
}

// NewServer creates the HTTP server.
func NewServer(h Handlers) *Server {
	return &Server{
		createPerson:        h.CreatePerson,
		updatePerson:        h.UpdatePerson,
		deletePerson:        h.DeletePerson,
		registerClient:      h.RegisterClient,
		removeClient:        h.RemoveClient,
		hireEmployee:        h.HireEmployee,
		reassignEmployee:    h.ReassignEmployee,
		dismissEmployee:     h.DismissEmployee,
		registerVehicle:     h.RegisterVehicle,
		refitVehicle:        h.RefitVehicle,
		retireVehicle:       h.RetireVehicle,
		openHeadquarters:    h.OpenHeadquarters,
		renameHeadquarters:  h.RenameHeadquarters,
		closeHeadquarters:   h.CloseHeadquarters,
		registerParcel:      h.RegisterParcel,
		correctParcel:       h.CorrectParcel,
		deleteParcel:        h.DeleteParcel,
		loadVehicle:         h.LoadVehicle,
		unloadParcel:        h.UnloadParcel,
		deleteShipmentEvent: h.DeleteShipmentEvent,
		openAccount:         h.OpenAccount,
		changePassword:      h.ChangePassword,
		closeAccount:        h.CloseAccount,
		availableVehicles:   h.AvailableVehicles,
		loadCandidates:      h.LoadCandidates,
		shipmentEvents:      h.ShipmentEvents,
		overdueParcels:      h.OverdueParcels,
		orphanedAddresses:   h.OrphanedAddresses,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/people", s.CreatePerson)
	v1.PUT("/people/:id", s.UpdatePerson)
	v1.DELETE("/people/:id", s.DeletePerson)

	v1.POST("/clients", s.RegisterClient)
	v1.DELETE("/clients/:personId", s.RemoveClient)

	v1.POST("/employees", s.HireEmployee)
	v1.PUT("/employees/:personId", s.ReassignEmployee)
	v1.DELETE("/employees/:personId", s.DismissEmployee)

	v1.GET("/vehicles/available", s.GetAvailableVehicles)
	v1.POST("/vehicles", s.RegisterVehicle)
	v1.PUT("/vehicles/:plate", s.RefitVehicle)
	v1.DELETE("/vehicles/:plate", s.RetireVehicle)

	v1.POST("/headquarters", s.OpenHeadquarters)
	v1.PUT("/headquarters/:id", s.RenameHeadquarters)
	v1.DELETE("/headquarters/:id", s.CloseHeadquarters)

	v1.GET("/parcels/load-candidates", s.GetLoadCandidates)
	v1.GET("/parcels/overdue", s.GetOverdueParcels)
	v1.POST("/parcels", s.RegisterParcel)
	v1.PUT("/parcels/:id", s.CorrectParcel)
	v1.DELETE("/parcels/:id", s.DeleteParcel)

	v1.GET("/shipments", s.GetShipmentEvents)
	v1.POST("/shipments", s.LoadVehicle)
	v1.DELETE("/shipments/:plate/entries/:parcelId", s.UnloadParcel)
	v1.DELETE("/shipments/:plate", s.DeleteShipmentEvent)

	v1.GET("/addresses/orphaned", s.GetOrphanedAddresses)

	v1.POST("/accounts", s.OpenAccount)
	v1.PUT("/accounts/:personId/password", s.ChangePassword)
	v1.DELETE("/accounts/:personId", s.CloseAccount)
}

// errorBody is the uniform error payload.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain errors to HTTP statuses.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	// Invalid/Required are checked before the conflict kinds: an invalid
	// error may carry a duplicate or capacity rejection as its cause, and
	// the outer classification decides the status.
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectInUse), errors.Is(err, errs.ErrDuplicateValue):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrCapacityExceeded):
		status = http.StatusUnprocessableEntity
	}

	return ctx.JSON(status, errorBody{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorBody{Code: http.StatusBadRequest, Message: message})
}

func pathID(ctx echo.Context, name string) (kernel.ID, error) {
	raw, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return kernel.NewID(raw)
}

func pathPlate(ctx echo.Context) (fleet.Plate, error) {
	return fleet.NewPlate(ctx.Param("plate"))
}

type addressRequest struct {
	PostalCode string  `json:"postalCode"`
	State      string  `json:"state"`
	City       string  `json:"city"`
	District   string  `json:"district"`
	Street     string  `json:"street"`
	Number     string  `json:"number"`
	Complement *string `json:"complement,omitempty"`
}

func (a addressRequest) payload() commands.AddressPayload {
	return commands.AddressPayload{
		PostalCode: a.PostalCode,
		State:      a.State,
		City:       a.City,
		District:   a.District,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
	}
}

type personRequest struct {
	Name       string         `json:"name"`
	NationalID *string        `json:"nationalId,omitempty"`
	Phone      string         `json:"phone"`
	Email      string         `json:"email"`
	Address    addressRequest `json:"address"`
}

// CreatePerson handles POST /api/v1/people.
func (s *Server) CreatePerson(ctx echo.Context) error {
	var req personRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreatePersonCommand(req.Name, req.NationalID, req.Phone, req.Email, req.Address.payload())
	if err != nil {
		return respondError(ctx, err)
	}

	personID, err := s.createPerson.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]int64{"personId": personID.Int64()})
}

// UpdatePerson handles PUT /api/v1/people/:id.
func (s *Server) UpdatePerson(ctx echo.Context) error {
	personID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid person id")
	}

	var req personRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdatePersonCommand(personID, req.Name, req.NationalID, req.Phone, req.Email, req.Address.payload())
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updatePerson.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeletePerson handles DELETE /api/v1/people/:id.
func (s *Server) DeletePerson(ctx echo.Context) error {
	personID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid person id")
	}

	cmd, err := commands.NewDeletePersonCommand(personID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deletePerson.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type clientRequest struct {
	PersonID    int64   `json:"personId"`
	Kind        string  `json:"kind"`
	CPF         *string `json:"cpf,omitempty"`
	BirthDate   *string `json:"birthDate,omitempty"`
	CNPJ        *string `json:"cnpj,omitempty"`
	CompanyName *string `json:"companyName,omitempty"`
}

// RegisterClient handles POST /api/v1/clients.
func (s *Server) RegisterClient(ctx echo.Context) error {
	var req clientRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	personID, err := kernel.NewID(req.PersonID)
	if err != nil {
		return respondError(ctx, err)
	}

	var cmd commands.RegisterClientCommand
	switch req.Kind {
	case "PF":
		if req.CPF == nil || req.BirthDate == nil {
			return badRequest(ctx, "PF clients require cpf and birthDate")
		}
		birthDate, parseErr := time.Parse("2006-01-02", *req.BirthDate)
		if parseErr != nil {
			return badRequest(ctx, "birthDate must be YYYY-MM-DD")
		}
		cmd, err = commands.NewRegisterIndividualClientCommand(personID, *req.CPF, birthDate)
	case "PJ":
		if req.CNPJ == nil || req.CompanyName == nil {
			return badRequest(ctx, "PJ clients require cnpj and companyName")
		}
		cmd, err = commands.NewRegisterCompanyClientCommand(personID, *req.CNPJ, *req.CompanyName)
	default:
		return badRequest(ctx, "kind must be PF or PJ")
	}
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveClient handles DELETE /api/v1/clients/:personId.
func (s *Server) RemoveClient(ctx echo.Context) error {
	personID, err := pathID(ctx, "personId")
	if err != nil {
		return badRequest(ctx, "Invalid person id")
	}

	cmd, err := commands.NewRemoveClientCommand(personID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.removeClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type employeeRequest struct {
	PersonID       int64   `json:"personId"`
	CPF            string  `json:"cpf"`
	Department     string  `json:"department"`
	Role           string  `json:"role"`
	VehiclePlate   *string `json:"vehiclePlate,omitempty"`
	HeadquartersID *int64  `json:"headquartersId,omitempty"`
}

func (r employeeRequest) references() (*fleet.Plate, *kernel.ID, error) {
	var plate *fleet.Plate
	if r.VehiclePlate != nil {
		p, err := fleet.NewPlate(*r.VehiclePlate)
		if err != nil {
			return nil, nil, err
		}
		plate = &p
	}

	var hqID *kernel.ID
	if r.HeadquartersID != nil {
		id, err := kernel.NewID(*r.HeadquartersID)
		if err != nil {
			return nil, nil, err
		}
		hqID = &id
	}

	return plate, hqID, nil
}

// HireEmployee handles POST /api/v1/employees.
func (s *Server) HireEmployee(ctx echo.Context) error {
	var req employeeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	personID, err := kernel.NewID(req.PersonID)
	if err != nil {
		return respondError(ctx, err)
	}

	role, err := staff.ParseRole(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	plate, hqID, err := req.references()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewHireEmployeeCommand(personID, req.CPF, req.Department, role, plate, hqID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.hireEmployee.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ReassignEmployee handles PUT /api/v1/employees/:personId.
func (s *Server) ReassignEmployee(ctx echo.Context) error {
	personID, err := pathID(ctx, "personId")
	if err != nil {
		return badRequest(ctx, "Invalid person id")
	}

	var req employeeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := staff.ParseRole(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	plate, hqID, err := req.references()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReassignEmployeeCommand(personID, req.Department, role, plate, hqID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.reassignEmployee.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DismissEmployee handles DELETE /api/v1/employees/:personId.
func (s *Server) DismissEmployee(ctx echo.Context) error {
	personID, err := pathID(ctx, "personId")
	if err != nil {
		return badRequest(ctx, "Invalid person id")
	}

	cmd, err := commands.NewDismissEmployeeCommand(personID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.dismissEmployee.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type vehicleRequest struct {
	Plate        string  `json:"plate"`
	CapacityKG   float64 `json:"capacityKg"`
	VehicleType  string  `json:"vehicleType"`
	Availability string  `json:"availability"`
}

// GetAvailableVehicles handles GET /api/v1/vehicles/available.
func (s *Server) GetAvailableVehicles(ctx echo.Context) error {
	vehicles, err := s.availableVehicles.Handle(ctx.Request().Context(), queries.NewGetAvailableVehiclesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicles)
}

// RegisterVehicle handles POST /api/v1/vehicles.
func (s *Server) RegisterVehicle(ctx echo.Context) error {
	var req vehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := buildVehicleCommand(req, commands.NewRegisterVehicleCommand)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RefitVehicle handles PUT /api/v1/vehicles/:plate.
func (s *Server) RefitVehicle(ctx echo.Context) error {
	plate, err := pathPlate(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req vehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	req.Plate = plate.String()

	cmd, err := buildVehicleCommand(req, commands.NewRefitVehicleCommand)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.refitVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// buildVehicleCommand parses the shared vehicle fields and delegates to the
// given command constructor.
func buildVehicleCommand[T any](req vehicleRequest,
	construct func(fleet.Plate, kernel.Weight, string, fleet.Availability) (T, error)) (T, error) {
	var zero T

	plate, err := fleet.NewPlate(req.Plate)
	if err != nil {
		return zero, err
	}

	capacity, err := kernel.NewWeight(req.CapacityKG)
	if err != nil {
		return zero, err
	}

	availability, err := fleet.ParseAvailability(req.Availability)
	if err != nil {
		return zero, err
	}

	return construct(plate, capacity, req.VehicleType, availability)
}

// RetireVehicle handles DELETE /api/v1/vehicles/:plate.
func (s *Server) RetireVehicle(ctx echo.Context) error {
	plate, err := pathPlate(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRetireVehicleCommand(plate)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.retireVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type headquartersRequest struct {
	Name    string         `json:"name"`
	Kind    string         `json:"kind"`
	Phone   string         `json:"phone"`
	Address addressRequest `json:"address"`
}

// OpenHeadquarters handles POST /api/v1/headquarters.
func (s *Server) OpenHeadquarters(ctx echo.Context) error {
	var req headquartersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := depot.ParseKind(req.Kind)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewOpenHeadquartersCommand(req.Name, kind, req.Phone, req.Address.payload())
	if err != nil {
		return respondError(ctx, err)
	}

	headquartersID, err := s.openHeadquarters.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]int64{"headquartersId": headquartersID.Int64()})
}

// RenameHeadquarters handles PUT /api/v1/headquarters/:id.
func (s *Server) RenameHeadquarters(ctx echo.Context) error {
	headquartersID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid headquarters id")
	}

	var req headquartersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := depot.ParseKind(req.Kind)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRenameHeadquartersCommand(headquartersID, req.Name, kind, req.Phone, req.Address.payload())
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.renameHeadquarters.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseHeadquarters handles DELETE /api/v1/headquarters/:id.
func (s *Server) CloseHeadquarters(ctx echo.Context) error {
	headquartersID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid headquarters id")
	}

	cmd, err := commands.NewCloseHeadquartersCommand(headquartersID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.closeHeadquarters.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type parcelRequest struct {
	SenderID         int64   `json:"senderId"`
	RecipientID      int64   `json:"recipientId"`
	WeightKG         float64 `json:"weightKg"`
	Category         string  `json:"category"`
	Status           string  `json:"status,omitempty"`
	ExpectedDelivery *string `json:"expectedDelivery,omitempty"`
	DriverID         *int64  `json:"driverId,omitempty"`
}

// optionals parses the expected delivery date ("2006-01-02") and the driver
// reference, both absent by default.
func (r parcelRequest) optionals() (*time.Time, *kernel.ID, error) {
	var expected *time.Time
	if r.ExpectedDelivery != nil {
		t, err := time.Parse("2006-01-02", *r.ExpectedDelivery)
		if err != nil {
			return nil, nil, errs.NewValueIsInvalidErrorWithCause("expectedDelivery", err)
		}
		expected = &t
	}

	var driverID *kernel.ID
	if r.DriverID != nil {
		id, err := kernel.NewID(*r.DriverID)
		if err != nil {
			return nil, nil, errs.NewValueIsInvalidErrorWithCause("driverId", err)
		}
		driverID = &id
	}

	return expected, driverID, nil
}

// GetLoadCandidates handles GET /api/v1/parcels/load-candidates?plate=...&loadedAt=RFC3339.
// An omitted loadedAt screens against a fresh event starting now.
func (s *Server) GetLoadCandidates(ctx echo.Context) error {
	plate, err := fleet.NewPlate(ctx.QueryParam("plate"))
	if err != nil {
		return respondError(ctx, err)
	}

	loadedAt := time.Now()
	if raw := ctx.QueryParam("loadedAt"); raw != "" {
		loadedAt, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(ctx, "loadedAt must be an RFC3339 timestamp")
		}
	}

	query, err := queries.NewGetLoadCandidatesQuery(plate, loadedAt)
	if err != nil {
		return respondError(ctx, err)
	}

	candidates, err := s.loadCandidates.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, candidates)
}

// GetOverdueParcels handles GET /api/v1/parcels/overdue?cutoff=RFC3339. The
// cutoff applies to parcels without an expected delivery date; dated parcels
// are overdue once their date is in the past.
func (s *Server) GetOverdueParcels(ctx echo.Context) error {
	cutoff, err := time.Parse(time.RFC3339, ctx.QueryParam("cutoff"))
	if err != nil {
		return badRequest(ctx, "cutoff must be an RFC3339 timestamp")
	}

	query, err := queries.NewGetOverdueParcelsQuery(time.Now(), cutoff)
	if err != nil {
		return respondError(ctx, err)
	}

	overdue, err := s.overdueParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, overdue)
}

// RegisterParcel handles POST /api/v1/parcels.
func (s *Server) RegisterParcel(ctx echo.Context) error {
	var req parcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	senderID, err := kernel.NewID(req.SenderID)
	if err != nil {
		return respondError(ctx, err)
	}

	recipientID, err := kernel.NewID(req.RecipientID)
	if err != nil {
		return respondError(ctx, err)
	}

	weight, err := kernel.NewWeight(req.WeightKG)
	if err != nil {
		return respondError(ctx, err)
	}

	category, err := parcel.ParseCategory(req.Category)
	if err != nil {
		return respondError(ctx, err)
	}

	expected, driverID, err := req.optionals()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRegisterParcelCommand(senderID, recipientID, weight, category, expected, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	registered, err := s.registerParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"parcelId":     registered.ID().Int64(),
		"trackingCode": registered.TrackingCode().String(),
	})
}

// CorrectParcel handles PUT /api/v1/parcels/:id.
func (s *Server) CorrectParcel(ctx echo.Context) error {
	parcelID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	var req parcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	weight, err := kernel.NewWeight(req.WeightKG)
	if err != nil {
		return respondError(ctx, err)
	}

	category, err := parcel.ParseCategory(req.Category)
	if err != nil {
		return respondError(ctx, err)
	}

	status, err := parcel.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	expected, driverID, err := req.optionals()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCorrectParcelCommand(parcelID, weight, category, status, expected, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.correctParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteParcel handles DELETE /api/v1/parcels/:id.
func (s *Server) DeleteParcel(ctx echo.Context) error {
	parcelID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type loadRequest struct {
	Plate     string  `json:"plate"`
	ParcelIDs []int64 `json:"parcelIds"`
	// RFC3339; omitted means "now". A past instant appends to that event.
	LoadedAt *string `json:"loadedAt,omitempty"`
}

// GetShipmentEvents handles GET /api/v1/shipments.
func (s *Server) GetShipmentEvents(ctx echo.Context) error {
	events, err := s.shipmentEvents.Handle(ctx.Request().Context(), queries.NewGetShipmentEventsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, events)
}

// LoadVehicle handles POST /api/v1/shipments. The response carries the full
// load report: loaded, rejected and failed parcels.
func (s *Server) LoadVehicle(ctx echo.Context) error {
	var req loadRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	plate, err := fleet.NewPlate(req.Plate)
	if err != nil {
		return respondError(ctx, err)
	}

	parcelIDs := make([]kernel.ID, 0, len(req.ParcelIDs))
	for _, raw := range req.ParcelIDs {
		id, idErr := kernel.NewID(raw)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		parcelIDs = append(parcelIDs, id)
	}

	var loadedAt time.Time
	if req.LoadedAt != nil {
		loadedAt, err = time.Parse(time.RFC3339, *req.LoadedAt)
		if err != nil {
			return badRequest(ctx, "loadedAt must be an RFC3339 timestamp")
		}
	}

	cmd, err := commands.NewLoadVehicleCommand(plate, parcelIDs, loadedAt)
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.loadVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newLoadReportResponse(report))
}

type rejectedParcelResponse struct {
	ParcelID int64  `json:"parcelId"`
	Reason   string `json:"reason"`
}

type loadReportResponse struct {
	Plate    string                   `json:"plate"`
	LoadedAt time.Time                `json:"loadedAt"`
	Loaded   []int64                  `json:"loaded"`
	Rejected []rejectedParcelResponse `json:"rejected,omitempty"`
	Failed   []rejectedParcelResponse `json:"failed,omitempty"`
}

func newLoadReportResponse(report *commands.LoadReport) loadReportResponse {
	resp := loadReportResponse{
		Plate:    report.Plate.String(),
		LoadedAt: report.LoadedAt,
		Loaded:   make([]int64, 0, len(report.Loaded)),
	}

	for _, id := range report.Loaded {
		resp.Loaded = append(resp.Loaded, id.Int64())
	}
	for _, r := range report.Rejected {
		resp.Rejected = append(resp.Rejected, rejectedParcelResponse{ParcelID: r.ParcelID.Int64(), Reason: r.Reason.Error()})
	}
	for _, f := range report.Failed {
		resp.Failed = append(resp.Failed, rejectedParcelResponse{ParcelID: f.ParcelID.Int64(), Reason: f.Reason.Error()})
	}

	return resp
}

// UnloadParcel handles DELETE /api/v1/shipments/:plate/entries/:parcelId?loadedAt=RFC3339.
func (s *Server) UnloadParcel(ctx echo.Context) error {
	plate, err := pathPlate(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	parcelID, err := pathID(ctx, "parcelId")
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	loadedAt, err := time.Parse(time.RFC3339, ctx.QueryParam("loadedAt"))
	if err != nil {
		return badRequest(ctx, "loadedAt must be an RFC3339 timestamp")
	}

	cmd, err := commands.NewUnloadParcelCommand(plate, parcelID, loadedAt)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.unloadParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteShipmentEvent handles DELETE /api/v1/shipments/:plate?loadedAt=RFC3339.
func (s *Server) DeleteShipmentEvent(ctx echo.Context) error {
	plate, err := pathPlate(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	loadedAt, err := time.Parse(time.RFC3339, ctx.QueryParam("loadedAt"))
	if err != nil {
		return badRequest(ctx, "loadedAt must be an RFC3339 timestamp")
	}

	cmd, err := commands.NewDeleteShipmentEventCommand(plate, loadedAt)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteShipmentEvent.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrphanedAddresses handles GET /api/v1/addresses/orphaned.
func (s *Server) GetOrphanedAddresses(ctx echo.Context) error {
	orphans, err := s.orphanedAddresses.Handle(ctx.Request().Context(), queries.NewGetOrphanedAddressesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orphans)
}

type accountRequest struct {
	PersonID int64  `json:"personId"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// OpenAccount handles POST /api/v1/accounts.
func (s *Server) OpenAccount(ctx echo.Context) error {
	var req accountRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	personID, err := kernel.NewID(req.PersonID)
	if err != nil {
		return respondError(ctx, err)
	}

	role, err := account.ParseRole(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewOpenAccountCommand(personID, req.Username, req.Password, role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.openAccount.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

type passwordRequest struct {
	Password string `json:"password"`
}

// ChangePassword handles PUT /api/v1/accounts/:personId/password.
func (s *Server) ChangePassword(ctx echo.Context) error {
	personID, err := pathID(ctx, "personId")
	if err != nil {
		return badRequest(ctx, "Invalid person id")
	}

	var req passwordRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangePasswordCommand(personID, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.changePassword.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseAccount handles DELETE /api/v1/accounts/:personId.
func (s *Server) CloseAccount(ctx echo.Context) error {
	personID, err := pathID(ctx, "personId")
	if err != nil {
		return badRequest(ctx, "Invalid person id")
	}

	cmd, err := commands.NewCloseAccountCommand(personID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.closeAccount.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
