package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/parcelrepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOverdueParcelsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOverdueParcelsQueryHandler
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&parcelrepo.SnapshotDTO{},
		&parcelrepo.ParcelDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOverdueParcelsQueryHandler(db)
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels, tracking_snapshots").Error
	suite.Require().NoError(err)
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	now := time.Now().UTC().Truncate(time.Second)
	query, err := queries.NewGetOverdueParcelsQuery(now, now.Add(-72*time.Hour))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) TestHandle_DatedParcels_CompareAgainstAsOf() {
	now := time.Now().UTC().Truncate(time.Second)
	// Registration instants differ because the tracking code derives from them.
	pastDue := suite.addDatedParcel(parcel.InTransit, now.Add(-96*time.Hour), now.Add(-24*time.Hour))
	suite.addDatedParcel(parcel.InTransit, now.Add(-95*time.Hour), now.Add(24*time.Hour))

	query, err := queries.NewGetOverdueParcelsQuery(now, now.Add(-72*time.Hour))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(pastDue.ID().Int64(), result[0].ID)
	suite.Equal(pastDue.TrackingCode().String(), result[0].TrackingCode)
	suite.Require().NotNil(result[0].ExpectedDelivery)
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) TestHandle_UndatedParcels_FallBackToRegistrationCutoff() {
	now := time.Now().UTC().Truncate(time.Second)
	stale := suite.addParcel(parcel.Processing, now.Add(-96*time.Hour))
	suite.addParcel(parcel.Processing, now.Add(-time.Hour))

	query, err := queries.NewGetOverdueParcelsQuery(now, now.Add(-72*time.Hour))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(stale.ID().Int64(), result[0].ID)
	suite.Nil(result[0].ExpectedDelivery)
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) TestHandle_ExcludesFinalStatuses() {
	now := time.Now().UTC().Truncate(time.Second)
	due := now.Add(-24 * time.Hour)
	suite.addDatedParcel(parcel.Delivered, now.Add(-96*time.Hour), due)
	suite.addDatedParcel(parcel.Cancelled, now.Add(-95*time.Hour), due)
	open := suite.addDatedParcel(parcel.DeliveryFailed, now.Add(-94*time.Hour), due)

	query, err := queries.NewGetOverdueParcelsQuery(now, now.Add(-72*time.Hour))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(open.ID().Int64(), result[0].ID)
	suite.Equal("DeliveryFailed", result[0].Status)
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) TestHandle_OldestRegistrationFirst() {
	now := time.Now().UTC().Truncate(time.Second)
	newer := suite.addParcel(parcel.Processing, now.Add(-80*time.Hour))
	older := suite.addParcel(parcel.Processing, now.Add(-120*time.Hour))

	query, err := queries.NewGetOverdueParcelsQuery(now, now.Add(-72*time.Hour))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(older.ID().Int64(), result[0].ID)
	suite.Equal(newer.ID().Int64(), result[1].ID)
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetOverdueParcelsQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOverdueParcelsQuery constructor")
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) TestNewGetOverdueParcelsQuery_ZeroInstants_Rejected() {
	now := time.Now()

	_, err := queries.NewGetOverdueParcelsQuery(time.Time{}, now)
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)

	_, err = queries.NewGetOverdueParcelsQuery(now, time.Time{})
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

// addParcel persists a parcel without an expected delivery date.
func (suite *GetOverdueParcelsQueryHandlerTestSuite) addParcel(status parcel.Status, registeredAt time.Time) *parcel.Parcel {
	return suite.persistParcel(status, registeredAt, nil)
}

// addDatedParcel persists a parcel carrying an expected delivery date.
func (suite *GetOverdueParcelsQueryHandlerTestSuite) addDatedParcel(
	status parcel.Status,
	registeredAt time.Time,
	expectedDelivery time.Time,
) *parcel.Parcel {
	return suite.persistParcel(status, registeredAt, &expectedDelivery)
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) persistParcel(
	status parcel.Status,
	registeredAt time.Time,
	expectedDelivery *time.Time,
) *parcel.Parcel {
	weight, err := kernel.NewWeight(3.2)
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(10, 20, 30, weight, parcel.Common, registeredAt, expectedDelivery, nil)
	suite.Require().NoError(err)

	if status != parcel.Processing {
		suite.Require().NoError(p.ChangeStatus(status, parcel.Permissive))
	}

	repo := parcelrepo.NewGormParcelRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), p))
	return p
}

func TestGetOverdueParcelsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOverdueParcelsQueryHandlerTestSuite))
}
