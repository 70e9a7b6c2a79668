package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/returnrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/truckrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

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
		&truckrepo.TruckDTO{},
		&shipmentrepo.ShipmentDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&returnrepo.ReturnDTO{},
		&returnrepo.ReturnLineDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, returns, shipments, trucks CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTruck() *truck.Truck {
	t, err := truck.NewTruck(kernel.NewUUID(), "ZX-9000", 20, truck.TierAny)
	suite.Require().NoError(err)
	return t
}

func (suite *UnitOfWorkIntegrationTestSuite) createOrder() *order.Order {
	line, err := order.NewLine(kernel.NewUUID(), 1, time.Now().UTC())
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		time.Now().UTC(),
		[]order.Line{line},
		decimal.NewFromInt(150),
		0.072,
		2,
	)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) createShipment() *shipment.Shipment {
	origin, err := shipment.NewEndpoint(shipment.KindDC, kernel.NewUUID())
	suite.Require().NoError(err)
	destination, err := shipment.NewDestination(shipment.KindBranch, kernel.NewUUID())
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(kernel.NewUUID(), origin, destination, shipment.Outbound)
	suite.Require().NoError(err)
	return s
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	t := suite.createTruck()
	err = uow.TruckRepository().Add(ctx, t)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	found, err := suite.factory.Create().TruckRepository().Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Equal(t.ID(), found.ID())
	suite.Equal("ZX-9000", found.Plate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	t := suite.createTruck()
	err = uow.TruckRepository().Add(ctx, t)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	_, err = suite.factory.Create().TruckRepository().Get(ctx, t.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Rollback(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_Twice_IsNoOp() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCrossRepositoryTransaction_CommitsAtomically() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	s := suite.createShipment()
	o := suite.createOrder()
	suite.Require().NoError(s.Attach(o))

	t := suite.createTruck()
	suite.Require().NoError(s.AssignTruck(t))

	suite.Require().NoError(uow.TruckRepository().Add(ctx, t))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	verify := suite.factory.Create()
	storedShipment, err := verify.ShipmentRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(storedShipment.TruckID())
	suite.Equal(t.ID(), *storedShipment.TruckID())
	suite.Require().Len(storedShipment.OrderIDs(), 1)
	suite.Equal(o.ID(), storedShipment.OrderIDs()[0])

	storedTruck, err := verify.TruckRepository().Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Equal(truck.Busy, storedTruck.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCrossRepositoryTransaction_RollbackDiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	s := suite.createShipment()
	o := suite.createOrder()
	suite.Require().NoError(s.Attach(o))

	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	verify := suite.factory.Create()
	_, err = verify.ShipmentRepository().Get(ctx, s.ID())
	suite.Require().Error(err)
	_, err = verify.OrderRepository().Get(ctx, o.ID())
	suite.Require().Error(err)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
