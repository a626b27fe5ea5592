package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adapter "genzdeliver/internal/adapters/in/http"
	"genzdeliver/internal/core/application/usecases/commands"
	"genzdeliver/internal/core/application/usecases/queries"
	"genzdeliver/internal/core/domain/model/kernel"
	"genzdeliver/internal/core/domain/model/order"
	"genzdeliver/internal/core/domain/model/pricing"
	"genzdeliver/internal/core/ports"
	"genzdeliver/internal/generated/servers"
	"genzdeliver/internal/pkg/errs"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type stubTariffProvider struct{}

func (stubTariffProvider) Current() pricing.Tariff {
	return pricing.DefaultTariff()
}

// MockOrderRepository is a mock implementation of ports.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, orderID kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, orderID kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

// MockOrderUoW is a mock implementation of commands.OrderUoW.
type MockOrderUoW struct {
	mock.Mock
	repository *MockOrderRepository
}

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.repository
}

type MockOrderUoWFactory struct {
	uow *MockOrderUoW
}

func (f *MockOrderUoWFactory) Create() commands.OrderUoW {
	return f.uow
}

type serverFixture struct {
	echo       *echo.Echo
	repository *MockOrderRepository
	uow        *MockOrderUoW
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	repository := new(MockOrderRepository)
	uow := &MockOrderUoW{repository: repository}
	factory := &MockOrderUoWFactory{uow: uow}
	clock := fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	server := adapter.NewServer(
		commands.NewCreateOrderCommandHandler(factory, clock),
		commands.NewUpdateOrderCommandHandler(factory, clock),
		commands.CreateCityCommandHandler{},
		commands.CreateZoneCommandHandler{},
		queries.NewCalculateDeliveryQueryHandler(stubTariffProvider{}),
		queries.GetOrderQueryHandler{},
		queries.GetOrdersQueryHandler{},
		queries.GetCitiesQueryHandler{},
		queries.GetZonesQueryHandler{},
	)

	e := echo.New()
	servers.RegisterHandlers(e, server)

	return &serverFixture{echo: e, repository: repository, uow: uow}
}

func (f *serverFixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateQuote_Success(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.do(http.MethodPost, "/api/v1/quotes", `{
		"origin": "dhaka",
		"destination": "dhaka",
		"deliveryType": "normal",
		"productType": "document",
		"totalWeight": "0-0.5"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(50), data["baseRate"])
	assert.Equal(t, float64(0), data["distanceCost"])
	assert.Equal(t, float64(5), data["handlingFee"])
	assert.Equal(t, float64(8), data["serviceTax"])
	assert.Equal(t, float64(65), data["total"])
	assert.Equal(t, "2-3 business days", data["estimatedDeliveryTime"])
}

func TestCreateQuote_UnknownDeliveryType_ReturnsBadRequest(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.do(http.MethodPost, "/api/v1/quotes", `{
		"origin": "dhaka",
		"destination": "sylhet",
		"deliveryType": "overnight",
		"productType": "document",
		"totalWeight": "0-0.5"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "overnight")
}

func TestCreateOrder_Success(t *testing.T) {
	fixture := newServerFixture(t)

	fixture.uow.On("Begin", mock.Anything).Return(nil)
	fixture.uow.On("Commit", mock.Anything).Return(nil)
	fixture.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	fixture.repository.On("Add", mock.Anything, mock.Anything).Return(nil)

	rec := fixture.do(http.MethodPost, "/api/v1/orders", `{
		"recipientName": "Hasan Mahmud",
		"recipientPhone": "+8801712345678",
		"recipientAddress": "House 12, Road 5, Dhanmondi",
		"deliveryArea": "dhaka",
		"deliveryType": "normal",
		"totalWeight": "0.5-1",
		"itemDescription": "Ceramic dinner set"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Order created successfully", body["message"])

	data := body["data"].(map[string]any)
	assert.Regexp(t, `^ORD-[0-9A-F]{12}$`, data["id"])
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, order.DefaultPickupAddress, data["pickupAddress"])
	assert.Equal(t, "House 12, Road 5, Dhanmondi", data["deliveryAddress"])

	history := data["trackingHistory"].([]any)
	require.Len(t, history, 1)
	first := history[0].(map[string]any)
	assert.Equal(t, order.ConfirmationLabel, first["status"])
}

func TestCreateOrder_MissingFields_ListsEveryAbsentField(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.do(http.MethodPost, "/api/v1/orders", `{
		"recipientAddress": "House 12, Road 5, Dhanmondi",
		"deliveryType": "normal",
		"totalWeight": "0.5-1",
		"itemDescription": "Ceramic dinner set"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])

	message := body["error"].(string)
	assert.Contains(t, message, "recipientName")
	assert.Contains(t, message, "recipientPhone")
	assert.Contains(t, message, "deliveryArea")

	fixture.repository.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestUpdateOrder_InvalidTransition_ReturnsConflict(t *testing.T) {
	fixture := newServerFixture(t)

	stored := storedOrder(t, order.Delivered)

	fixture.uow.On("Begin", mock.Anything).Return(nil)
	fixture.uow.On("Rollback", mock.Anything).Return(nil)
	fixture.repository.On("GetForUpdate", mock.Anything, stored.ID()).Return(stored, nil)

	rec := fixture.do(http.MethodPatch, "/api/v1/orders/"+stored.ID().String(), `{
		"status": "pending"
	}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "invalid status transition")

	fixture.repository.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	fixture.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrder_UnknownOrder_ReturnsNotFound(t *testing.T) {
	fixture := newServerFixture(t)

	orderID := kernel.NewOrderID()

	fixture.uow.On("Begin", mock.Anything).Return(nil)
	fixture.uow.On("Rollback", mock.Anything).Return(nil)
	fixture.repository.On("GetForUpdate", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String()))

	rec := fixture.do(http.MethodPatch, "/api/v1/orders/"+orderID.String(), `{
		"status": "accepted"
	}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestUpdateOrder_EmptyBody_ReturnsBadRequest(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.do(http.MethodPatch, "/api/v1/orders/"+kernel.NewOrderID().String(), `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestUpdateOrder_StatusAndEvent_Succeeds(t *testing.T) {
	fixture := newServerFixture(t)

	stored := storedOrder(t, order.Pending)

	fixture.uow.On("Begin", mock.Anything).Return(nil)
	fixture.uow.On("Commit", mock.Anything).Return(nil)
	fixture.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	fixture.repository.On("GetForUpdate", mock.Anything, stored.ID()).Return(stored, nil)
	fixture.repository.On("Update", mock.Anything, stored).Return(nil)

	rec := fixture.do(http.MethodPatch, "/api/v1/orders/"+stored.ID().String(), `{
		"status": "picked",
		"trackingEvent": {"status": "Picked up", "location": "Gulshan hub"}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "picked", data["status"])

	history := data["trackingHistory"].([]any)
	require.Len(t, history, 2)
	last := history[1].(map[string]any)
	assert.Equal(t, "Picked up", last["status"])
	assert.Equal(t, "Gulshan hub", last["location"])
}

// storedOrder builds an order already persisted in the given status.
func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	details := order.Details{
		RecipientName:    "Hasan Mahmud",
		RecipientPhone:   "+8801712345678",
		RecipientAddress: "House 12, Road 5, Dhanmondi",
		DeliveryArea:     "dhaka",
		SpeedTier:        pricing.Standard,
		PackageType:      pricing.Parcel,
		WeightBand:       pricing.WeightHalfToOneKg,
		Quantity:         1,
		ItemDescription:  "Ceramic dinner set",
	}

	createdAt := time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC)
	aggregate, err := order.NewOrder(kernel.NewOrderID(), details, createdAt)
	require.NoError(t, err)

	if status != order.Pending {
		require.NoError(t, aggregate.ChangeStatus(status, createdAt.Add(time.Hour)))
	}

	return aggregate
}
