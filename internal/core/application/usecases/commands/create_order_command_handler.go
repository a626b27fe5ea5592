package commands

import (
	"context"
	"errors"

	"genzdeliver/internal/core/domain/model/kernel"
	"genzdeliver/internal/core/domain/model/order"
	"genzdeliver/internal/core/ports"
	"genzdeliver/internal/pkg/errs"
)

// maxOrderIDAttempts bounds the retry loop on public order ID collisions.
// The ID space is 16^12, so a second collision in a row is already
// astronomically unlikely.
const maxOrderIDAttempts = 5

// CreateOrderCommandHandler handles the business logic for order booking.
// Creates orders in Pending status with a confirmation tracking event
// stamped by the injected clock.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order booking operations.
// Requires an OrderUoWFactory for transactional persistence and a Clock
// for timestamp assignment.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the booking command and returns the created order.
//
// The public order ID is generated here, not by the caller. When the insert
// collides with an existing ID the handler regenerates and retries, up to
// maxOrderIDAttempts times, inside fresh transactions.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	params := cmd.Params()
	details := order.Details{
		RecipientName:           params.RecipientName,
		RecipientPhone:          params.RecipientPhone,
		RecipientSecondaryPhone: params.RecipientSecondaryPhone,
		RecipientAddress:        params.RecipientAddress,
		DeliveryArea:            params.DeliveryArea,
		PickupAddress:           params.PickupAddress,
		DeliveryAddress:         params.DeliveryAddress,
		AmountToCollect:         params.AmountToCollect,
		SpeedTier:               params.DeliveryType,
		PackageType:             params.ProductType,
		WeightBand:              params.TotalWeight,
		Quantity:                params.Quantity,
		ItemDescription:         params.ItemDescription,
		SpecialInstructions:     params.SpecialInstructions,
		CreatedBy:               params.CreatedBy,
	}

	var lastErr error
	for attempt := 0; attempt < maxOrderIDAttempts; attempt++ {
		aggregate, err := order.NewOrder(kernel.NewOrderID(), details, h.clock.Now())
		if err != nil {
			return nil, err
		}

		err = h.persist(ctx, aggregate)
		if err == nil {
			return aggregate, nil
		}
		if !errors.Is(err, errs.ErrObjectAlreadyExists) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (h *CreateOrderCommandHandler) persist(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
