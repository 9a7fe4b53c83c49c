package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "couriernet/internal/adapters/out/postgres"
	"couriernet/internal/adapters/out/postgres/driverrepo"
	"couriernet/internal/adapters/out/postgres/orderrepo"
	"couriernet/internal/adapters/out/postgres/routerepo"
	"couriernet/internal/adapters/out/postgres/walletrepo"
	"couriernet/internal/core/domain/model/driver"
	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/shipment"
	"couriernet/internal/core/domain/model/wallet"
	"couriernet/internal/core/ports"
	"couriernet/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work and
// all four repositories against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.StatusChangeDTO{},
		&orderrepo.ProblemDTO{},
		&routerepo.VehicleDTO{},
		&routerepo.RelationDTO{},
		&routerepo.StopDTO{},
		&routerepo.PriceListDTO{},
		&walletrepo.WalletDTO{},
		&driverrepo.DriverDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_status_changes, shipment_problems, vehicles, relations, stops, price_lists, wallets, drivers").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// routeFixture holds identifiers of a seeded one-relation network.
type routeFixture struct {
	vehicleID  kernel.UUID
	relationID kernel.UUID
	ownerID    kernel.UUID
}

// seedRoute inserts a vehicle, a relation, three ordered stops, and a
// price list directly through GORM. The engine never writes route data,
// so the fixtures bypass the repositories.
func (suite *UnitOfWorkIntegrationTestSuite) seedRoute() routeFixture {
	vehicleID := kernel.NewUUID()
	relationID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	err := suite.db.Create(&routerepo.VehicleDTO{
		ID:                 vehicleID.Bytes(),
		Model:              "Fiat Ducato",
		Capacity:           6,
		RegistrationNumber: "WX 12345",
		OwnerID:            ownerID.Bytes(),
	}).Error
	suite.Require().NoError(err)

	err = suite.db.Create(&routerepo.RelationDTO{
		ID:        relationID.Bytes(),
		Name:      "Warszawa - Radom",
		VehicleID: vehicleID.Bytes(),
	}).Error
	suite.Require().NoError(err)

	relID := relationID.Bytes()
	stops := []routerepo.StopDTO{
		{ID: kernel.NewUUID().Bytes(), VehicleID: vehicleID.Bytes(), RelationID: &relID, Name: "Warszawa", Arrival: "07:50", Departure: "08:00", OrderNumber: 1},
		{ID: kernel.NewUUID().Bytes(), VehicleID: vehicleID.Bytes(), RelationID: &relID, Name: "Grójec", Arrival: "08:40", Departure: "08:45", OrderNumber: 2},
		{ID: kernel.NewUUID().Bytes(), VehicleID: vehicleID.Bytes(), RelationID: &relID, Name: "Radom", Arrival: "09:30", Departure: "09:35", OrderNumber: 3},
	}
	for i := range stops {
		err = suite.db.Create(&stops[i]).Error
		suite.Require().NoError(err)
	}

	err = suite.db.Create(&routerepo.PriceListDTO{
		RelationID:   relationID.Bytes(),
		BasePrice:    10,
		PricePerStop: 5,
	}).Error
	suite.Require().NoError(err)

	return routeFixture{vehicleID: vehicleID, relationID: relationID, ownerID: ownerID}
}

func (suite *UnitOfWorkIntegrationTestSuite) newTestOrder(relationID kernel.UUID, departure time.Time) *shipment.Order {
	testOrder, err := shipment.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		relationID,
		shipment.SizeM,
		"Warszawa",
		"Radom",
		departure,
		departure.Add(90*time.Minute),
		20,
		shipment.RandomOrderCode(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.RouteRepository())
	suite.NotNil(uow2.WalletRepository())
	suite.NotNil(uow2.DriverRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "repeated begin should be a no-op")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "commit without begin should fail")

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "rollback without an active transaction is a no-op")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "rollback after commit is a no-op")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_RoundTrip() {
	ctx := context.Background()
	fixture := suite.seedRoute()
	uow := suite.factory.Create()

	departure := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	testOrder := suite.newTestOrder(fixture.relationID, departure)

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrieved.ID()))
	suite.Equal(shipment.StatusNadana, retrieved.Status())
	suite.Equal(shipment.SentinelVerificationCode, retrieved.PickupCode())
	suite.Nil(retrieved.DriverID())
	suite.Equal(testOrder.OrderCode(), retrieved.OrderCode())
	suite.Equal(float64(20), retrieved.Price())

	// Walk the state machine and persist each step.
	driverID := kernel.NewUUID()
	err = retrieved.AssignDriver(driverID, "1234", "5678")
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, retrieved)
	suite.Require().NoError(err)

	byCode, err := uow.OrderRepository().GetByOrderCode(ctx, testOrder.OrderCode())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusPrzypisanoKierowce, byCode.Status())
	suite.Require().NotNil(byCode.DriverID())
	suite.True(driverID.IsEqual(*byCode.DriverID()))
	suite.Equal("1234", byCode.PickupCode())
	suite.Equal("5678", byCode.DeliveryCode())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_ExistsByOrderCode() {
	ctx := context.Background()
	fixture := suite.seedRoute()
	uow := suite.factory.Create()

	testOrder := suite.newTestOrder(fixture.relationID, time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC))
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	exists, err := uow.OrderRepository().ExistsByOrderCode(ctx, testOrder.OrderCode())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = uow.OrderRepository().ExistsByOrderCode(ctx, "00000000000000")
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_GetActiveByRelationAndDate() {
	ctx := context.Background()
	fixture := suite.seedRoute()
	uow := suite.factory.Create()
	repo := uow.OrderRepository()

	day := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	active := suite.newTestOrder(fixture.relationID, day)
	err := repo.Add(ctx, active)
	suite.Require().NoError(err)

	// Delivered orders release capacity.
	delivered := suite.newTestOrder(fixture.relationID, day)
	err = delivered.AssignDriver(kernel.NewUUID(), "1234", "5678")
	suite.Require().NoError(err)
	err = delivered.AcceptPickup("1234")
	suite.Require().NoError(err)
	err = delivered.ConfirmDelivery("5678")
	suite.Require().NoError(err)
	err = repo.Add(ctx, delivered)
	suite.Require().NoError(err)

	// Orders on other days are out of scope.
	otherDay := suite.newTestOrder(fixture.relationID, day.AddDate(0, 0, 1))
	err = repo.Add(ctx, otherDay)
	suite.Require().NoError(err)

	// Orders on other relations are out of scope.
	otherFixture := suite.seedRoute()
	otherRelation := suite.newTestOrder(otherFixture.relationID, day)
	err = repo.Add(ctx, otherRelation)
	suite.Require().NoError(err)

	orders, err := repo.GetActiveByRelationAndDate(ctx, fixture.relationID, day)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(active.ID().IsEqual(orders[0].ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_HistoryAppendAndPurge() {
	ctx := context.Background()
	fixture := suite.seedRoute()
	uow := suite.factory.Create()
	repo := uow.OrderRepository()

	testOrder := suite.newTestOrder(fixture.relationID, time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC))
	err := repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	first, err := shipment.NewStatusChange(kernel.NewUUID(), testOrder.ID(), shipment.StatusNadana, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	second, err := shipment.NewStatusChange(kernel.NewUUID(), testOrder.ID(), shipment.StatusPrzypisanoKierowce, time.Now())
	suite.Require().NoError(err)

	// Append out of chronological order; reads sort by change time.
	err = repo.AppendHistory(ctx, second)
	suite.Require().NoError(err)
	err = repo.AppendHistory(ctx, first)
	suite.Require().NoError(err)

	history, err := repo.GetHistory(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(shipment.StatusNadana, history[0].Status())
	suite.Equal(shipment.StatusPrzypisanoKierowce, history[1].Status())

	problem, err := shipment.NewProblem(kernel.NewUUID(), testOrder.ID(), testOrder.CustomerID(), "paczka uszkodzona", time.Now())
	suite.Require().NoError(err)
	err = repo.AddProblem(ctx, problem)
	suite.Require().NoError(err)

	// A purge erases the order completely: tickets, history, and the
	// order row itself.
	err = repo.PurgeProblems(ctx, testOrder.ID())
	suite.Require().NoError(err)
	err = repo.PurgeHistory(ctx, testOrder.ID())
	suite.Require().NoError(err)
	err = repo.Remove(ctx, testOrder.ID())
	suite.Require().NoError(err)

	history, err = repo.GetHistory(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Empty(history)

	var problemCount int64
	err = suite.db.Model(&orderrepo.ProblemDTO{}).
		Where("order_id = ?", testOrder.ID().Bytes()).
		Count(&problemCount).Error
	suite.Require().NoError(err)
	suite.Zero(problemCount)

	_, err = repo.Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = repo.Remove(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "second removal should report the order as gone")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRouteRepository_Reads() {
	ctx := context.Background()
	fixture := suite.seedRoute()
	uow := suite.factory.Create()
	repo := uow.RouteRepository()

	relation, err := repo.GetRelation(ctx, fixture.relationID)
	suite.Require().NoError(err)
	suite.Equal("Warszawa - Radom", relation.Name())
	suite.True(fixture.vehicleID.IsEqual(relation.VehicleID()))

	vehicle, err := repo.GetVehicle(ctx, fixture.vehicleID)
	suite.Require().NoError(err)
	suite.Equal(6, vehicle.Capacity())
	suite.True(fixture.ownerID.IsEqual(vehicle.OwnerID()))

	stops, err := repo.GetRelationStops(ctx, fixture.relationID)
	suite.Require().NoError(err)
	suite.Require().Len(stops, 3)
	suite.Equal("Warszawa", stops[0].Name())
	suite.Equal("Radom", stops[2].Name())
	suite.Equal("08:00", stops[0].Departure().String())

	byName, err := repo.GetStopsByName(ctx, "Grójec")
	suite.Require().NoError(err)
	suite.Require().Len(byName, 1)
	suite.Equal(2, byName[0].OrderNumber())

	priceList, err := repo.GetPriceList(ctx, fixture.relationID)
	suite.Require().NoError(err)
	suite.Require().NotNil(priceList)
	suite.Equal(float64(20), priceList.PriceFor(2))

	noList, err := repo.GetPriceList(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Nil(noList, "missing price list means the relation is free")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWalletRepository_RoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()
	repo := uow.WalletRepository()

	userID := kernel.NewUUID()
	userWallet, err := wallet.NewWallet(kernel.NewUUID(), userID)
	suite.Require().NoError(err)
	err = userWallet.Credit(100)
	suite.Require().NoError(err)

	err = repo.Add(ctx, userWallet)
	suite.Require().NoError(err)

	retrieved, err := repo.GetByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(float64(100), retrieved.Balance())

	err = retrieved.Debit(35)
	suite.Require().NoError(err)
	err = repo.Update(ctx, retrieved)
	suite.Require().NoError(err)

	retrieved, err = repo.GetByUserForUpdate(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(float64(65), retrieved.Balance())

	_, err = repo.GetByUser(ctx, kernel.NewUUID())
	suite.Require().Error(err, "unknown user should have no wallet")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDriverRepository_RoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()
	repo := uow.DriverRepository()

	ownerID := kernel.NewUUID()
	testDriver, err := driver.NewDriver(kernel.NewUUID(), ownerID, "Jan", "Kowalski", "123456789", "4321")
	suite.Require().NoError(err)

	err = repo.Add(ctx, testDriver)
	suite.Require().NoError(err)

	byID, err := repo.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal("Kowalski", byID.LastName())

	byCode, err := repo.GetByIDCode(ctx, "123456789")
	suite.Require().NoError(err)
	suite.True(testDriver.ID().IsEqual(byCode.ID()))
	suite.Equal("4321", byCode.PinCode())

	exists, err := repo.ExistsByIDCode(ctx, "123456789")
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = repo.ExistsByIDCode(ctx, "999999999")
	suite.Require().NoError(err)
	suite.False(exists)

	employed, err := repo.GetByOwner(ctx, ownerID)
	suite.Require().NoError(err)
	suite.Require().Len(employed, 1)
}

// TestSettlementTransaction runs the delivery settlement as one unit of
// work: status update, history row, and wallet credit must commit
// together.
func (suite *UnitOfWorkIntegrationTestSuite) TestSettlementTransaction() {
	ctx := context.Background()
	fixture := suite.seedRoute()

	setupUow := suite.factory.Create()
	testOrder := suite.newTestOrder(fixture.relationID, time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC))
	err := testOrder.AssignDriver(kernel.NewUUID(), "1234", "5678")
	suite.Require().NoError(err)
	err = testOrder.AcceptPickup("1234")
	suite.Require().NoError(err)
	err = setupUow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	carrierWallet, err := wallet.NewWallet(kernel.NewUUID(), fixture.ownerID)
	suite.Require().NoError(err)
	err = setupUow.WalletRepository().Add(ctx, carrierWallet)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	settled, err := uow.OrderRepository().GetByOrderCode(ctx, testOrder.OrderCode())
	suite.Require().NoError(err)
	err = settled.ConfirmDelivery("5678")
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, settled)
	suite.Require().NoError(err)

	locked, err := uow.WalletRepository().GetByUserForUpdate(ctx, fixture.ownerID)
	suite.Require().NoError(err)
	err = locked.Credit(settled.Price())
	suite.Require().NoError(err)
	err = uow.WalletRepository().Update(ctx, locked)
	suite.Require().NoError(err)

	change, err := shipment.NewStatusChange(kernel.NewUUID(), settled.ID(), settled.Status(), time.Now())
	suite.Require().NoError(err)
	err = uow.OrderRepository().AppendHistory(ctx, change)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	verifyUow := suite.factory.Create()
	final, err := verifyUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusDostarczona, final.Status())

	finalWallet, err := verifyUow.WalletRepository().GetByUser(ctx, fixture.ownerID)
	suite.Require().NoError(err)
	suite.Equal(testOrder.Price(), finalWallet.Balance())

	history, err := verifyUow.OrderRepository().GetHistory(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.Equal(shipment.StatusDostarczona, history[0].Status())
}

// TestSettlementRollback discards the status change, the history row,
// and the wallet credit together.
func (suite *UnitOfWorkIntegrationTestSuite) TestSettlementRollback() {
	ctx := context.Background()
	fixture := suite.seedRoute()

	setupUow := suite.factory.Create()
	testOrder := suite.newTestOrder(fixture.relationID, time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC))
	err := setupUow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	carrierWallet, err := wallet.NewWallet(kernel.NewUUID(), fixture.ownerID)
	suite.Require().NoError(err)
	err = setupUow.WalletRepository().Add(ctx, carrierWallet)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	mutated, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	err = mutated.AssignDriver(kernel.NewUUID(), "1111", "2222")
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, mutated)
	suite.Require().NoError(err)

	locked, err := uow.WalletRepository().GetByUserForUpdate(ctx, fixture.ownerID)
	suite.Require().NoError(err)
	err = locked.Credit(20)
	suite.Require().NoError(err)
	err = uow.WalletRepository().Update(ctx, locked)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	verifyUow := suite.factory.Create()
	final, err := verifyUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusNadana, final.Status())
	suite.Nil(final.DriverID())

	finalWallet, err := verifyUow.WalletRepository().GetByUser(ctx, fixture.ownerID)
	suite.Require().NoError(err)
	suite.Equal(float64(0), finalWallet.Balance())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
