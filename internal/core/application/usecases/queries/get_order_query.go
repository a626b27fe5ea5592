// Package queries contains read operations that never modify system state.
// Implements the Query side of the CQRS architecture: query objects are
// constructor-validated and handlers read straight through the database,
// bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"genzdeliver/internal/core/domain/model/kernel"
	"genzdeliver/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its full tracking history.
// Serves both the order detail and the public tracking views.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by its public identifier.
func NewGetOrderQuery(orderID kernel.OrderID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the public identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// TrackingEventResponse is one tracking history entry in wire form.
type TrackingEventResponse struct {
	Status      string
	Timestamp   time.Time
	Location    string
	Description string
}

// OrderResponse is the read model of an order. Enum fields carry their wire
// forms; TrackingHistory is in append order.
type OrderResponse struct {
	ID                      string
	RecipientName           string
	RecipientPhone          string
	RecipientSecondaryPhone string
	RecipientAddress        string
	DeliveryArea            string
	PickupAddress           string
	DeliveryAddress         string
	AmountToCollect         int
	DeliveryType            string
	ProductType             string
	TotalWeight             string
	Quantity                int
	ItemDescription         string
	SpecialInstructions     string
	CreatedBy               string
	Status                  string
	CreatedAt               time.Time
	UpdatedAt               time.Time
	DeliveredAt             *time.Time
	TrackingHistory         []TrackingEventResponse
}
