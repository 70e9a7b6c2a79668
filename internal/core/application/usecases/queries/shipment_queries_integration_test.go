package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/catalogrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/truckrepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {}

type ShipmentQueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	boardHandler       queries.GetAllShipmentsQueryHandler
	detailsHandler     queries.GetShipmentByIDQueryHandler
	uncompletedHandler queries.GetUncompletedOrdersQueryHandler
	previewHandler     queries.PreviewVolumeQueryHandler
}

func (suite *ShipmentQueriesTestSuite) SetupSuite() {
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
		&catalogrepo.ProductDTO{},
		&truckrepo.TruckDTO{},
		&shipmentrepo.ShipmentDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
	)
	suite.Require().NoError(err)

	calculator, err := services.NewCargoCalculator(services.DefaultBoxVolume)
	suite.Require().NoError(err)

	suite.boardHandler = queries.NewGetAllShipmentsQueryHandler(db, calculator)
	suite.detailsHandler = queries.NewGetShipmentByIDQueryHandler(db, calculator)
	suite.uncompletedHandler = queries.NewGetUncompletedOrdersQueryHandler(db)
	suite.previewHandler = queries.NewPreviewVolumeQueryHandler(db, calculator)
}

func (suite *ShipmentQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ShipmentQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, shipments, trucks, products CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ShipmentQueriesTestSuite) seedProduct(volume float64) kernel.UUID {
	id := kernel.NewUUID()
	dto := catalogrepo.ProductDTO{
		ID:        id.Bytes(),
		Name:      "seeded product",
		UnitPrice: decimal.NewFromFloat(9.99),
		Volume:    &volume,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return id
}

func (suite *ShipmentQueriesTestSuite) createOrder(orderDate time.Time, volume float64, boxes int) *order.Order {
	line, err := order.NewLine(kernel.NewUUID(), 2, orderDate)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		orderDate,
		[]order.Line{line},
		decimal.NewFromInt(250),
		volume,
		boxes,
	)
	suite.Require().NoError(err)
	return o
}

func (suite *ShipmentQueriesTestSuite) createShipment() *shipment.Shipment {
	origin, err := shipment.NewEndpoint(shipment.KindDC, kernel.NewUUID())
	suite.Require().NoError(err)
	destination, err := shipment.NewDestination(shipment.KindBranch, kernel.NewUUID())
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(kernel.NewUUID(), origin, destination, shipment.Outbound)
	suite.Require().NoError(err)
	return s
}

func (suite *ShipmentQueriesTestSuite) saveOrder(o *order.Order) {
	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	err := repo.Add(context.Background(), o)
	suite.Require().NoError(err)
}

func (suite *ShipmentQueriesTestSuite) saveShipment(s *shipment.Shipment) {
	repo := shipmentrepo.NewGormShipmentRepository(suite.db, &mockAggregateTracker{})
	err := repo.Add(context.Background(), s)
	suite.Require().NoError(err)
}

func (suite *ShipmentQueriesTestSuite) saveTruck(t *truck.Truck) {
	repo := truckrepo.NewGormTruckRepository(suite.db, &mockAggregateTracker{})
	err := repo.Add(context.Background(), t)
	suite.Require().NoError(err)
}

func (suite *ShipmentQueriesTestSuite) TestGetAllShipments_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllShipmentsQuery()

	result, err := suite.boardHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ShipmentQueriesTestSuite) TestGetAllShipments_WithTruckBound_ReturnsDerivedFigures() {
	s := suite.createShipment()
	first := suite.createOrder(time.Now().UTC(), 0.072, 2)
	second := suite.createOrder(time.Now().UTC(), 0.036, 1)
	suite.Require().NoError(s.Attach(first))
	suite.Require().NoError(s.Attach(second))

	t, err := truck.NewTruck(kernel.NewUUID(), "AB-1234", 12, truck.TierAny)
	suite.Require().NoError(err)
	suite.Require().NoError(s.AssignTruck(t))

	suite.saveTruck(t)
	suite.saveShipment(s)
	suite.saveOrder(first)
	suite.saveOrder(second)

	result, err := suite.boardHandler.Handle(context.Background(), queries.NewGetAllShipmentsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	row := result[0]
	suite.Equal(s.ID(), row.ID)
	suite.Equal("outbound", row.Type)
	suite.Equal("Draft", row.Status)
	suite.Equal("dc", row.OriginKind)
	suite.Equal("branch", row.DestinationKind)
	suite.Equal(2, row.OrderCount)
	suite.InDelta(0.108, row.TotalVolumeM3, 1e-9)
	suite.Equal(3, row.Cartons)

	suite.Require().NotNil(row.TruckID)
	suite.Equal(t.ID(), *row.TruckID)
	suite.Require().NotNil(row.TruckPlate)
	suite.Equal("AB-1234", *row.TruckPlate)
	suite.Require().NotNil(row.TruckCapacityM3)
	suite.InDelta(12, *row.TruckCapacityM3, 1e-9)
	suite.Require().NotNil(row.TruckUtilization)
	suite.InDelta(0.108/12*100, *row.TruckUtilization, 1e-9)
}

func (suite *ShipmentQueriesTestSuite) TestGetAllShipments_WithoutTruck_NilTruckFields() {
	s := suite.createShipment()
	suite.saveShipment(s)

	result, err := suite.boardHandler.Handle(context.Background(), queries.NewGetAllShipmentsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Nil(result[0].TruckID)
	suite.Nil(result[0].TruckPlate)
	suite.Nil(result[0].TruckCapacityM3)
	suite.Nil(result[0].TruckUtilization)
	suite.Zero(result[0].OrderCount)
}

func (suite *ShipmentQueriesTestSuite) TestGetShipmentByID_ReturnsMemberOrders() {
	s := suite.createShipment()
	first := suite.createOrder(time.Now().UTC(), 0.072, 2)
	second := suite.createOrder(time.Now().UTC(), 0.036, 1)
	suite.Require().NoError(s.Attach(first))
	suite.Require().NoError(s.Attach(second))

	suite.saveShipment(s)
	suite.saveOrder(first)
	suite.saveOrder(second)

	query, err := queries.NewGetShipmentByIDQuery(s.ID())
	suite.Require().NoError(err)

	details, err := suite.detailsHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(s.ID(), details.ID)
	suite.Require().Len(details.Orders, 2)

	got := map[kernel.UUID]queries.ShipmentOrderResponse{}
	for _, memberOrder := range details.Orders {
		got[memberOrder.ID] = memberOrder
	}
	suite.Require().Contains(got, first.ID())
	suite.Equal("Pending", got[first.ID()].Status)
	suite.InDelta(0.072, got[first.ID()].VolumeM3, 1e-9)
	suite.Equal(2, got[first.ID()].Cartons)
	suite.True(got[first.ID()].TotalAmount.Equal(decimal.NewFromInt(250)))
	suite.Require().Contains(got, second.ID())
	suite.Equal(1, got[second.ID()].Cartons)
}

func (suite *ShipmentQueriesTestSuite) TestGetShipmentByID_UnknownID_ReturnsNotFound() {
	query, err := queries.NewGetShipmentByIDQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.detailsHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *ShipmentQueriesTestSuite) TestGetUncompletedOrders_SkipsTerminalStatuses() {
	early := time.Now().UTC().Add(-2 * time.Hour).Truncate(time.Second)
	late := time.Now().UTC().Truncate(time.Second)

	open := suite.createOrder(late, 0.036, 1)
	older := suite.createOrder(early, 0.072, 2)
	suite.saveOrder(open)
	suite.saveOrder(older)

	line, err := order.NewLine(kernel.NewUUID(), 1, early)
	suite.Require().NoError(err)
	delivered, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		early,
		order.Delivered,
		decimal.NewFromInt(99),
		0.036,
		1,
		nil,
		[]order.Line{line},
	)
	suite.Require().NoError(err)
	suite.saveOrder(delivered)

	result, err := suite.uncompletedHandler.Handle(context.Background(), queries.NewGetUncompletedOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(older.ID(), result[0].ID)
	suite.Equal(open.ID(), result[1].ID)
	suite.Equal("Pending", result[0].Status)
	suite.Nil(result[0].ShipmentID)
	suite.Equal(2, result[0].Cartons)
}

func (suite *ShipmentQueriesTestSuite) TestPreviewVolume_RoundsUtilizationToOneDecimal() {
	productID := suite.seedProduct(0.05)

	t, err := truck.NewTruck(kernel.NewUUID(), "PV-1200", 12, truck.TierAny)
	suite.Require().NoError(err)
	suite.saveTruck(t)

	query, err := queries.NewPreviewVolumeQuery([]queries.PreviewBranchInput{
		{BranchID: kernel.NewUUID(), Lines: []queries.PreviewLineInput{
			{ProductID: productID, Quantity: 25},
		}},
	})
	suite.Require().NoError(err)

	preview, err := suite.previewHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.InDelta(1.25, preview.TotalVolumeM3, 1e-9)
	suite.Require().NotNil(preview.TruckUtilization)
	// 1.25 / 12 * 100 = 10.4166..., reported as 10.4.
	suite.InDelta(10.4, *preview.TruckUtilization, 1e-9)
}

func (suite *ShipmentQueriesTestSuite) TestPreviewVolume_CapsUtilizationAtHundred() {
	productID := suite.seedProduct(0.05)

	t, err := truck.NewTruck(kernel.NewUUID(), "PV-1000", 10, truck.TierAny)
	suite.Require().NoError(err)
	suite.saveTruck(t)

	query, err := queries.NewPreviewVolumeQuery([]queries.PreviewBranchInput{
		{BranchID: kernel.NewUUID(), Lines: []queries.PreviewLineInput{
			{ProductID: productID, Quantity: 300},
		}},
	})
	suite.Require().NoError(err)

	preview, err := suite.previewHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.InDelta(15.0, preview.TotalVolumeM3, 1e-9)
	suite.Require().NotNil(preview.TruckUtilization)
	suite.InDelta(100.0, *preview.TruckUtilization, 1e-9)
}

func (suite *ShipmentQueriesTestSuite) TestPreviewVolume_NoAvailableTruck_NilUtilization() {
	productID := suite.seedProduct(0.05)

	query, err := queries.NewPreviewVolumeQuery([]queries.PreviewBranchInput{
		{BranchID: kernel.NewUUID(), Lines: []queries.PreviewLineInput{
			{ProductID: productID, Quantity: 2},
		}},
	})
	suite.Require().NoError(err)

	preview, err := suite.previewHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Nil(preview.TruckCapacityM3)
	suite.Nil(preview.TruckUtilization)
}

func TestShipmentQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentQueriesTestSuite))
}
