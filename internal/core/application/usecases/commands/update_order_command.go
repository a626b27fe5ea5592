package commands

import (
	"errors"

	"genzdeliver/internal/core/domain/model/kernel"
	"genzdeliver/internal/core/domain/model/order"
	"genzdeliver/internal/pkg/errs"
	"genzdeliver/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrNothingToUpdate = errors.New("update must carry a target status or a tracking event")
)

// TrackingEventParams describes one tracking history entry to append.
// Timestamps are never accepted from callers; the store assigns them.
type TrackingEventParams struct {
	StatusLabel string
	Location    string
	Description string
}

// UpdateOrderCommand represents a request to mutate an existing order:
// a status transition, a tracking event to append, or both. At least one
// of the two must be present.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.OrderID
	targetStatus  *order.Status
	trackingEvent *TrackingEventParams

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to mutate an order.
// targetStatus and trackingEvent are each optional but not both absent.
func NewUpdateOrderCommand(
	orderID kernel.OrderID,
	targetStatus *order.Status,
	trackingEvent *TrackingEventParams,
) (UpdateOrderCommand, error) {
	updateCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setTargetStatus(targetStatus),
		updateCommand.setTrackingEvent(trackingEvent),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	if updateCommand.targetStatus == nil && updateCommand.trackingEvent == nil {
		return UpdateOrderCommand{}, ErrNothingToUpdate
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the public identifier of the order to mutate.
func (c UpdateOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// TargetStatus returns the requested status, or nil when the update does
// not change status.
func (c UpdateOrderCommand) TargetStatus() *order.Status {
	if c.targetStatus == nil {
		return nil
	}
	status := *c.targetStatus
	return &status
}

// TrackingEvent returns the event to append, or nil when the update does
// not add one.
func (c UpdateOrderCommand) TrackingEvent() *TrackingEventParams {
	if c.trackingEvent == nil {
		return nil
	}
	event := *c.trackingEvent
	return &event
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setTargetStatus(targetStatus *order.Status) error {
	if targetStatus == nil {
		return nil
	}
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	status := *targetStatus
	c.targetStatus = &status
	return nil
}

func (c *UpdateOrderCommand) setTrackingEvent(trackingEvent *TrackingEventParams) error {
	if trackingEvent == nil {
		return nil
	}
	if trackingEvent.StatusLabel == "" {
		return errs.NewValueIsRequiredError("trackingEvent.status")
	}

	event := *trackingEvent
	c.trackingEvent = &event
	return nil
}
