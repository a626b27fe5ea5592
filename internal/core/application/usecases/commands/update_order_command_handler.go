package commands

import (
	"context"

	"genzdeliver/internal/core/domain/model/order"
	"genzdeliver/internal/core/ports"
)

// UpdateOrderCommandHandler handles order mutations: status transitions and
// tracking event appends.
//
// The order row is loaded with a row lock inside the transaction, so
// concurrent updates of the same order serialize and each transition is
// checked against the latest stored status. Either every requested change
// applies or none does.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewUpdateOrderCommandHandler creates a handler for order mutation operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the update command and returns the mutated order.
//
// Returns *errs.ObjectNotFoundError when the order does not exist and
// *errs.InvalidTransitionError when the requested status change violates
// the state machine. On any error the stored order is left untouched.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()

	if target := cmd.TargetStatus(); target != nil {
		if err = aggregate.ChangeStatus(*target, now); err != nil {
			return nil, err
		}
	}

	if params := cmd.TrackingEvent(); params != nil {
		event, eventErr := order.NewTrackingEvent(params.StatusLabel, now, params.Location, params.Description)
		if eventErr != nil {
			return nil, eventErr
		}
		if err = aggregate.AppendTrackingEvent(event, now); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
