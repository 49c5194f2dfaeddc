package cmd

import (
	"log/slog"
	"time"

	"logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/crypt"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/accountrepo"
	"logistics/internal/adapters/out/postgres/clientrepo"
	"logistics/internal/adapters/out/postgres/depotrepo"
	"logistics/internal/adapters/out/postgres/fleetrepo"
	"logistics/internal/adapters/out/postgres/parcelrepo"
	"logistics/internal/adapters/out/postgres/partyrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/staffrepo"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot builds every adapter and handler from a single gorm.DB.
type CompositionRoot struct {
	config Config
	gormDB *gorm.DB

	addresses    *partyrepo.GormAddressRepository
	people       *partyrepo.GormPersonRepository
	clients      *clientrepo.GormClientRepository
	employees    *staffrepo.GormEmployeeRepository
	vehicles     *fleetrepo.GormVehicleRepository
	headquarters *depotrepo.GormHeadquartersRepository
	parcels      *parcelrepo.GormParcelRepository
	shipments    *shipmentrepo.GormShipmentRepository
	accounts     *accountrepo.GormAccountRepository

	integrity *postgres.GormIntegrityGuard
	hasher    *crypt.BcryptPasswordHasher
	clock     commands.Clock
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		addresses:    partyrepo.NewGormAddressRepository(gormDB),
		people:       partyrepo.NewGormPersonRepository(gormDB),
		clients:      clientrepo.NewGormClientRepository(gormDB),
		employees:    staffrepo.NewGormEmployeeRepository(gormDB),
		vehicles:     fleetrepo.NewGormVehicleRepository(gormDB),
		headquarters: depotrepo.NewGormHeadquartersRepository(gormDB),
		parcels:      parcelrepo.NewGormParcelRepository(gormDB),
		shipments:    shipmentrepo.NewGormShipmentRepository(gormDB),
		accounts:     accountrepo.NewGormAccountRepository(gormDB),
		integrity:    postgres.NewGormIntegrityGuard(gormDB),
		hasher:       crypt.NewBcryptPasswordHasher(config.BcryptCost),
		clock:        time.Now,
	}
}

// CreateHTTPServer assembles the full handler set behind the REST surface.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreatePerson:        commands.NewCreatePersonCommandHandler(c.addresses, c.people),
		UpdatePerson:        commands.NewUpdatePersonCommandHandler(c.addresses, c.people),
		DeletePerson:        commands.NewDeletePersonCommandHandler(c.addresses, c.people, c.integrity),
		RegisterClient:      commands.NewRegisterClientCommandHandler(c.people, c.clients),
		RemoveClient:        commands.NewRemoveClientCommandHandler(c.clients, c.accounts, c.integrity),
		HireEmployee:        commands.NewHireEmployeeCommandHandler(c.people, c.employees, c.vehicles, c.headquarters),
		ReassignEmployee:    commands.NewReassignEmployeeCommandHandler(c.employees, c.vehicles, c.headquarters),
		DismissEmployee:     commands.NewDismissEmployeeCommandHandler(c.employees, c.accounts, c.integrity),
		RegisterVehicle:     commands.NewRegisterVehicleCommandHandler(c.vehicles),
		RefitVehicle:        commands.NewRefitVehicleCommandHandler(c.vehicles),
		RetireVehicle:       commands.NewRetireVehicleCommandHandler(c.vehicles, c.integrity),
		OpenHeadquarters:    commands.NewOpenHeadquartersCommandHandler(c.addresses, c.headquarters),
		RenameHeadquarters:  commands.NewRenameHeadquartersCommandHandler(c.addresses, c.headquarters),
		CloseHeadquarters:   commands.NewCloseHeadquartersCommandHandler(c.addresses, c.headquarters, c.integrity),
		RegisterParcel:      commands.NewRegisterParcelCommandHandler(c.people, c.clients, c.employees, c.addresses, c.parcels, c.clock),
		CorrectParcel:       commands.NewCorrectParcelCommandHandler(c.parcels, c.employees, parcel.Permissive),
		DeleteParcel:        commands.NewDeleteParcelCommandHandler(c.parcels, c.integrity),
		LoadVehicle:         commands.NewLoadVehicleCommandHandler(c.vehicles, c.parcels, c.shipments, c.clock),
		UnloadParcel:        commands.NewUnloadParcelCommandHandler(c.shipments),
		DeleteShipmentEvent: commands.NewDeleteShipmentEventCommandHandler(c.shipments),
		OpenAccount:         commands.NewOpenAccountCommandHandler(c.people, c.clients, c.employees, c.accounts, c.hasher),
		ChangePassword:      commands.NewChangePasswordCommandHandler(c.accounts, c.hasher),
		CloseAccount:        commands.NewCloseAccountCommandHandler(c.accounts),

		AvailableVehicles: queries.NewGetAvailableVehiclesQueryHandler(c.gormDB),
		LoadCandidates:    queries.NewGetLoadCandidatesQueryHandler(c.gormDB),
		ShipmentEvents:    queries.NewGetShipmentEventsQueryHandler(c.gormDB),
		OverdueParcels:    queries.NewGetOverdueParcelsQueryHandler(c.gormDB),
		OrphanedAddresses: queries.NewGetOrphanedAddressesQueryHandler(c.gormDB),
	})
}

// CreateJobManager wires the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewGetOverdueParcelsQueryHandler(c.gormDB),
		queries.NewGetOrphanedAddressesQueryHandler(c.gormDB),
		c.config.OverdueAge,
		logger,
	)
}
