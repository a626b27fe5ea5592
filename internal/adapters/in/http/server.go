package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"genzdeliver/internal/core/application/usecases/commands"
	"genzdeliver/internal/core/application/usecases/queries"
	"genzdeliver/internal/core/domain/model/kernel"
	"genzdeliver/internal/core/domain/model/order"
	"genzdeliver/internal/core/domain/model/pricing"
	"genzdeliver/internal/generated/servers"
	"genzdeliver/internal/pkg/errs"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	createCityHandler  commands.CreateCityCommandHandler
	createZoneHandler  commands.CreateZoneCommandHandler

	// Query handlers
	calculateDeliveryHandler queries.CalculateDeliveryQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getOrdersHandler         queries.GetOrdersQueryHandler
	getCitiesHandler         queries.GetCitiesQueryHandler
	getZonesHandler          queries.GetZonesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	createCityHandler commands.CreateCityCommandHandler,
	createZoneHandler commands.CreateZoneCommandHandler,
	calculateDeliveryHandler queries.CalculateDeliveryQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getCitiesHandler queries.GetCitiesQueryHandler,
	getZonesHandler queries.GetZonesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		createCityHandler:        createCityHandler,
		createZoneHandler:        createZoneHandler,
		calculateDeliveryHandler: calculateDeliveryHandler,
		getOrderHandler:          getOrderHandler,
		getOrdersHandler:         getOrdersHandler,
		getCitiesHandler:         getCitiesHandler,
		getZonesHandler:          getZonesHandler,
	}
}

// CreateQuote handles POST /api/v1/quotes - calculates a delivery price quote.
func (s *Server) CreateQuote(ctx echo.Context) error {
	var request servers.QuoteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	origin, err := kernel.NewCitySlug(request.Origin)
	if err != nil {
		return errorResponse(ctx, err)
	}
	destination, err := kernel.NewCitySlug(request.Destination)
	if err != nil {
		return errorResponse(ctx, err)
	}
	deliveryType, err := pricing.SpeedTierFromString(request.DeliveryType)
	if err != nil {
		return errorResponse(ctx, err)
	}
	productType, err := pricing.PackageTypeFromString(request.ProductType)
	if err != nil {
		return errorResponse(ctx, err)
	}
	totalWeight, err := pricing.WeightBandFromString(request.TotalWeight)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewCalculateDeliveryQuery(origin, destination, deliveryType, productType, totalWeight)
	if err != nil {
		return errorResponse(ctx, err)
	}

	quote, err := s.calculateDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.QuoteResult{
		Success: true,
		Data: servers.Quote{
			BaseRate:              quote.BaseRate,
			DistanceCost:          quote.DistanceCost,
			SpeedSurcharge:        quote.SpeedSurcharge,
			WeightCharge:          quote.WeightCharge,
			HandlingFee:           quote.HandlingFee,
			ServiceTax:            quote.ServiceTax,
			Total:                 quote.Total,
			EstimatedDeliveryTime: quote.EstimatedDeliveryTime,
		},
	})
}

// CreateOrder handles POST /api/v1/orders - books a new delivery order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request servers.NewOrder
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryType, err := pricing.SpeedTierFromString(request.DeliveryType)
	if err != nil {
		return errorResponse(ctx, err)
	}
	totalWeight, err := pricing.WeightBandFromString(request.TotalWeight)
	if err != nil {
		return errorResponse(ctx, err)
	}

	// Product type defaults to parcel; quantity to a single item.
	productType := pricing.Parcel
	if request.ProductType != nil {
		productType, err = pricing.PackageTypeFromString(*request.ProductType)
		if err != nil {
			return errorResponse(ctx, err)
		}
	}
	quantity := 1
	if request.Quantity != nil {
		quantity = *request.Quantity
	}

	cmd, err := commands.NewCreateOrderCommand(commands.CreateOrderCommandParams{
		RecipientName:           request.RecipientName,
		RecipientPhone:          request.RecipientPhone,
		RecipientSecondaryPhone: fromOptional(request.RecipientSecondaryPhone),
		RecipientAddress:        request.RecipientAddress,
		DeliveryArea:            request.DeliveryArea,
		PickupAddress:           fromOptional(request.PickupAddress),
		DeliveryAddress:         fromOptional(request.DeliveryAddress),
		AmountToCollect:         fromOptionalInt(request.AmountToCollect),
		DeliveryType:            deliveryType,
		ProductType:             productType,
		TotalWeight:             totalWeight,
		Quantity:                quantity,
		ItemDescription:         request.ItemDescription,
		SpecialInstructions:     fromOptional(request.SpecialInstructions),
		CreatedBy:               fromOptional(request.CreatedBy),
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	message := "Order created successfully"
	return ctx.JSON(http.StatusCreated, servers.OrderResult{
		Success: true,
		Data:    orderFromDomain(created),
		Message: &message,
	})
}

// GetOrders handles GET /api/v1/orders - lists orders, newest first.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	query := queries.NewGetOrdersQuery(fromOptional(params.UserId))

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, resp := range orders {
		response[i] = orderFromQuery(resp)
	}

	return ctx.JSON(http.StatusOK, servers.OrderListResult{
		Success: true,
		Data:    response,
	})
}

// GetOrder handles GET /api/v1/orders/{orderId} - fetches one order.
func (s *Server) GetOrder(ctx echo.Context, orderId string) error {
	orderID, err := kernel.OrderIDFromString(orderId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderResult{
		Success: true,
		Data:    orderFromQuery(resp),
	})
}

// UpdateOrder handles PATCH /api/v1/orders/{orderId} - applies a status
// transition, appends a tracking event, or both.
func (s *Server) UpdateOrder(ctx echo.Context, orderId string) error {
	orderID, err := kernel.OrderIDFromString(orderId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.OrderUpdate
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var targetStatus *order.Status
	if request.Status != nil {
		parsed, parseErr := order.StatusFromString(*request.Status)
		if parseErr != nil {
			return errorResponse(ctx, parseErr)
		}
		targetStatus = &parsed
	}

	var trackingEvent *commands.TrackingEventParams
	if request.TrackingEvent != nil {
		trackingEvent = &commands.TrackingEventParams{
			StatusLabel: request.TrackingEvent.Status,
			Location:    fromOptional(request.TrackingEvent.Location),
			Description: fromOptional(request.TrackingEvent.Description),
		}
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, targetStatus, trackingEvent)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	message := "Order updated successfully"
	return ctx.JSON(http.StatusOK, servers.OrderResult{
		Success: true,
		Data:    orderFromDomain(updated),
		Message: &message,
	})
}

// TrackOrder handles GET /api/v1/orders/{orderId}/track - the public
// tracking view.
func (s *Server) TrackOrder(ctx echo.Context, orderId string) error {
	orderID, err := kernel.OrderIDFromString(orderId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	history := make([]servers.TrackingEvent, len(resp.TrackingHistory))
	for i, event := range resp.TrackingHistory {
		history[i] = trackingEventFromQuery(event)
	}

	return ctx.JSON(http.StatusOK, servers.TrackingResult{
		Success: true,
		Data: servers.Tracking{
			OrderId:       resp.ID,
			CurrentStatus: resp.Status,
			History:       history,
		},
	})
}

// GetCities handles GET /api/v1/cities - lists coverage cities.
func (s *Server) GetCities(ctx echo.Context) error {
	query := queries.NewGetCitiesQuery()

	cities, err := s.getCitiesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.City, len(cities))
	for i, city := range cities {
		response[i] = servers.City{
			Id:        city.ID,
			Name:      city.Name,
			Slug:      toOptional(city.Slug),
			IsActive:  city.IsActive,
			CreatedAt: city.CreatedAt,
			UpdatedAt: city.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, servers.CityListResult{
		Success: true,
		Data:    response,
	})
}

// CreateCity handles POST /api/v1/cities - adds a coverage city.
func (s *Server) CreateCity(ctx echo.Context) error {
	var request servers.NewCity
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var slug *kernel.CitySlug
	if request.Slug != nil {
		parsed, err := kernel.NewCitySlug(*request.Slug)
		if err != nil {
			return errorResponse(ctx, err)
		}
		slug = &parsed
	}

	cmd, err := commands.NewCreateCityCommand(request.Name, slug)
	if err != nil {
		return errorResponse(ctx, err)
	}

	city, err := s.createCityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var slugValue *string
	if citySlug := city.Slug(); citySlug != nil {
		value := citySlug.String()
		slugValue = &value
	}

	return ctx.JSON(http.StatusCreated, servers.CityResult{
		Success: true,
		Data: servers.City{
			Id:        city.ID(),
			Name:      city.Name(),
			Slug:      slugValue,
			IsActive:  city.IsActive(),
			CreatedAt: city.CreatedAt(),
			UpdatedAt: city.UpdatedAt(),
		},
	})
}

// GetZones handles GET /api/v1/zones - lists delivery zones.
func (s *Server) GetZones(ctx echo.Context) error {
	query := queries.NewGetZonesQuery()

	zones, err := s.getZonesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Zone, len(zones))
	for i, zone := range zones {
		response[i] = servers.Zone{
			Id:        zone.ID,
			Name:      zone.Name,
			CityId:    zone.CityID,
			Latitude:  toOptional(zone.Latitude),
			Longitude: toOptional(zone.Longitude),
			IsActive:  zone.IsActive,
			CreatedAt: zone.CreatedAt,
			UpdatedAt: zone.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, servers.ZoneListResult{
		Success: true,
		Data:    response,
	})
}

// CreateZone handles POST /api/v1/zones - adds a delivery zone.
func (s *Server) CreateZone(ctx echo.Context) error {
	var request servers.NewZone
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateZoneCommand(
		request.Name,
		request.CityId,
		fromOptional(request.Latitude),
		fromOptional(request.Longitude),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	zone, err := s.createZoneHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.ZoneResult{
		Success: true,
		Data: servers.Zone{
			Id:        zone.ID(),
			Name:      zone.Name(),
			CityId:    zone.CityID(),
			Latitude:  toOptional(zone.Latitude()),
			Longitude: toOptional(zone.Longitude()),
			IsActive:  zone.IsActive(),
			CreatedAt: zone.CreatedAt(),
			UpdatedAt: zone.UpdatedAt(),
		},
	})
}

// errorResponse maps application errors onto the envelope and status code.
func errorResponse(ctx echo.Context, err error) error {
	return ctx.JSON(statusCodeFor(err), servers.Error{
		Success: false,
		Error:   err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Success: false,
		Error:   message,
	})
}

// statusCodeFor translates the error taxonomy into HTTP status codes:
// invalid transitions conflict, absent objects 404, malformed or missing
// input 400, everything else 500.
func statusCodeFor(err error) int {
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case isValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func isValidationError(err error) bool {
	var (
		missingFields *errs.MissingFieldsError
		invalid       *errs.ValueIsInvalidError
		required      *errs.ValueIsRequiredError
		outOfRange    *errs.ValueIsOutOfRangeError
	)

	return errors.As(err, &missingFields) ||
		errors.As(err, &invalid) ||
		errors.As(err, &required) ||
		errors.As(err, &outOfRange) ||
		errors.Is(err, commands.ErrNothingToUpdate)
}

// orderFromDomain maps an order aggregate onto the wire representation.
func orderFromDomain(aggregate *order.Order) servers.Order {
	details := aggregate.Details()

	history := aggregate.TrackingHistory()
	events := make([]servers.TrackingEvent, len(history))
	for i, event := range history {
		events[i] = servers.TrackingEvent{
			Status:      event.StatusLabel(),
			Timestamp:   event.Timestamp(),
			Location:    toOptional(event.Location()),
			Description: toOptional(event.Description()),
		}
	}

	return servers.Order{
		Id:                      aggregate.ID().String(),
		RecipientName:           details.RecipientName,
		RecipientPhone:          details.RecipientPhone,
		RecipientSecondaryPhone: toOptional(details.RecipientSecondaryPhone),
		RecipientAddress:        details.RecipientAddress,
		DeliveryArea:            details.DeliveryArea,
		PickupAddress:           details.PickupAddress,
		DeliveryAddress:         details.DeliveryAddress,
		AmountToCollect:         details.AmountToCollect,
		DeliveryType:            details.SpeedTier.String(),
		ProductType:             details.PackageType.String(),
		TotalWeight:             details.WeightBand.String(),
		Quantity:                details.Quantity,
		ItemDescription:         details.ItemDescription,
		SpecialInstructions:     toOptional(details.SpecialInstructions),
		CreatedBy:               toOptional(details.CreatedBy),
		Status:                  aggregate.Status().String(),
		CreatedAt:               aggregate.CreatedAt(),
		UpdatedAt:               aggregate.UpdatedAt(),
		DeliveredAt:             aggregate.DeliveredAt(),
		TrackingHistory:         events,
	}
}

// orderFromQuery maps a read model onto the wire representation.
func orderFromQuery(resp queries.OrderResponse) servers.Order {
	events := make([]servers.TrackingEvent, len(resp.TrackingHistory))
	for i, event := range resp.TrackingHistory {
		events[i] = trackingEventFromQuery(event)
	}

	return servers.Order{
		Id:                      resp.ID,
		RecipientName:           resp.RecipientName,
		RecipientPhone:          resp.RecipientPhone,
		RecipientSecondaryPhone: toOptional(resp.RecipientSecondaryPhone),
		RecipientAddress:        resp.RecipientAddress,
		DeliveryArea:            resp.DeliveryArea,
		PickupAddress:           resp.PickupAddress,
		DeliveryAddress:         resp.DeliveryAddress,
		AmountToCollect:         resp.AmountToCollect,
		DeliveryType:            resp.DeliveryType,
		ProductType:             resp.ProductType,
		TotalWeight:             resp.TotalWeight,
		Quantity:                resp.Quantity,
		ItemDescription:         resp.ItemDescription,
		SpecialInstructions:     toOptional(resp.SpecialInstructions),
		CreatedBy:               toOptional(resp.CreatedBy),
		Status:                  resp.Status,
		CreatedAt:               resp.CreatedAt,
		UpdatedAt:               resp.UpdatedAt,
		DeliveredAt:             resp.DeliveredAt,
		TrackingHistory:         events,
	}
}

func trackingEventFromQuery(event queries.TrackingEventResponse) servers.TrackingEvent {
	return servers.TrackingEvent{
		Status:      event.Status,
		Timestamp:   event.Timestamp,
		Location:    toOptional(event.Location),
		Description: toOptional(event.Description),
	}
}

func fromOptional(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func fromOptionalInt(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}

func toOptional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
