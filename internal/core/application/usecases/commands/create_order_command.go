package commands

import (
	"errors"

	"genzdeliver/internal/core/domain/model/pricing"
	"genzdeliver/internal/pkg/errs"
	"genzdeliver/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommandParams carries the booking request attributes into the
// command constructor. Enum fields arrive already parsed from their wire
// forms; string fields arrive as supplied by the caller.
type CreateOrderCommandParams struct {
	RecipientName           string
	RecipientPhone          string
	RecipientSecondaryPhone string
	RecipientAddress        string
	DeliveryArea            string
	PickupAddress           string
	DeliveryAddress         string
	AmountToCollect         int
	DeliveryType            pricing.SpeedTier
	ProductType             pricing.PackageType
	TotalWeight             pricing.WeightBand
	Quantity                int
	ItemDescription         string
	SpecialInstructions     string
	CreatedBy               string
}

// CreateOrderCommand represents a request to book a new delivery order.
//
// Required fields are checked together: when several are absent the
// constructor returns a single *errs.MissingFieldsError listing all of them,
// so the caller can surface one complete validation message.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(params)
//	if err != nil {
//	    return fmt.Errorf("invalid booking: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	params CreateOrderCommandParams

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to book a new delivery order.
// Reports every missing required field in one error, then validates the
// enum fields and quantity.
func NewCreateOrderCommand(params CreateOrderCommandParams) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderCommand.setParams(params); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Params returns the validated booking attributes.
func (c CreateOrderCommand) Params() CreateOrderCommandParams {
	return c.params
}

func (c *CreateOrderCommand) setParams(params CreateOrderCommandParams) error {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"recipientName", params.RecipientName},
		{"recipientPhone", params.RecipientPhone},
		{"recipientAddress", params.RecipientAddress},
		{"deliveryArea", params.DeliveryArea},
		{"itemDescription", params.ItemDescription},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return errs.NewMissingFieldsError(missing)
	}

	if err := errors.Join(
		params.DeliveryType.Validate(),
		params.ProductType.Validate(),
		params.TotalWeight.Validate(),
	); err != nil {
		return err
	}
	if params.Quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", params.Quantity, 1, 1000)
	}
	if params.AmountToCollect < 0 {
		return errs.NewValueIsInvalidError("amountToCollect")
	}

	c.params = params
	return nil
}
