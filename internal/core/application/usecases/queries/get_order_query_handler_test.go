package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"genzdeliver/internal/adapters/out/postgres/orderrepo"
	"genzdeliver/internal/core/application/usecases/queries"
	"genzdeliver/internal/core/domain/model/kernel"
	"genzdeliver/internal/core/domain/model/order"
	"genzdeliver/internal/core/domain/model/pricing"
)

// mockAggregateTracker is a no-op tracker for seeding data through the
// repositories in read-side tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ string, _ any) {}

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetOrderQueryHandler
	listHandler queries.GetOrdersQueryHandler
	orderRepo   *orderrepo.GormOrderRepository
	baseCreated time.Time
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.TrackingEventDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.listHandler = queries.NewGetOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.baseCreated = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, tracking_events").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) seedOrder(createdBy string, createdAt time.Time) *order.Order {
	details := order.Details{
		RecipientName:    "Hasan Mahmud",
		RecipientPhone:   "+8801712345678",
		RecipientAddress: "House 12, Road 5, Dhanmondi",
		DeliveryArea:     "dhaka",
		AmountToCollect:  1500,
		SpeedTier:        pricing.Standard,
		PackageType:      pricing.Parcel,
		WeightBand:       pricing.WeightHalfToOneKg,
		Quantity:         2,
		ItemDescription:  "Ceramic dinner set",
		CreatedBy:        createdBy,
	}

	aggregate, err := order.NewOrder(kernel.NewOrderID(), details, createdAt)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	return aggregate
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ReturnsOrderWithHistory() {
	seeded := suite.seedOrder("merchant-7", suite.baseCreated)

	query, err := queries.NewGetOrderQuery(seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(seeded.ID().String(), result.ID)
	suite.Equal("Hasan Mahmud", result.RecipientName)
	suite.Equal("dhaka", result.DeliveryArea)
	suite.Equal(order.DefaultPickupAddress, result.PickupAddress)
	suite.Equal("House 12, Road 5, Dhanmondi", result.DeliveryAddress)
	suite.Equal(1500, result.AmountToCollect)
	suite.Equal("normal", result.DeliveryType)
	suite.Equal("parcel", result.ProductType)
	suite.Equal("0.5-1", result.TotalWeight)
	suite.Equal("pending", result.Status)
	suite.Equal("merchant-7", result.CreatedBy)
	suite.Nil(result.DeliveredAt)

	suite.Require().Len(result.TrackingHistory, 1)
	suite.Equal(order.ConfirmationLabel, result.TrackingHistory[0].Status)
	suite.Equal(suite.baseCreated, result.TrackingHistory[0].Timestamp.UTC())
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_DeliveredOrder_IncludesDeliveredAt() {
	seeded := suite.seedOrder("merchant-7", suite.baseCreated)

	deliveredAt := suite.baseCreated.Add(48 * time.Hour)
	err := seeded.ChangeStatus(order.Delivered, deliveredAt)
	suite.Require().NoError(err)

	event, err := order.NewTrackingEvent("Delivered", deliveredAt, "Dhanmondi", "Handed to recipient")
	suite.Require().NoError(err)
	err = seeded.AppendTrackingEvent(event, deliveredAt)
	suite.Require().NoError(err)

	err = suite.orderRepo.Update(context.Background(), seeded)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("delivered", result.Status)
	suite.Require().NotNil(result.DeliveredAt)
	suite.Equal(deliveredAt, result.DeliveredAt.UTC())

	suite.Require().Len(result.TrackingHistory, 2)
	suite.Equal(order.ConfirmationLabel, result.TrackingHistory[0].Status)
	suite.Equal("Delivered", result.TrackingHistory[1].Status)
	suite.Equal("Dhanmondi", result.TrackingHistory[1].Location)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewOrderID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "object not found")
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandleList_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetOrdersQuery("")

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandleList_ReturnsNewestFirstWithHistory() {
	older := suite.seedOrder("merchant-7", suite.baseCreated)
	newer := suite.seedOrder("merchant-7", suite.baseCreated.Add(time.Hour))

	query := queries.NewGetOrdersQuery("")

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newer.ID().String(), result[0].ID)
	suite.Equal(older.ID().String(), result[1].ID)

	for _, resp := range result {
		suite.Require().Len(resp.TrackingHistory, 1)
		suite.Equal(order.ConfirmationLabel, resp.TrackingHistory[0].Status)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandleList_FiltersByCreatedBy() {
	mine := suite.seedOrder("merchant-7", suite.baseCreated)
	suite.seedOrder("merchant-9", suite.baseCreated.Add(time.Minute))

	query := queries.NewGetOrdersQuery("merchant-7")

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(mine.ID().String(), result[0].ID)
	suite.Equal("merchant-7", result[0].CreatedBy)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
