package queries

import (
	"errors"

	"genzdeliver/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders, most recent first, optionally filtered by
// the owner identifier recorded at booking time.
type GetOrdersQuery struct {
	createdBy string

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order list query. An empty createdBy means
// no owner filter.
func NewGetOrdersQuery(createdBy string) GetOrdersQuery {
	return GetOrdersQuery{
		createdBy: createdBy,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// CreatedBy returns the owner filter, or the empty string for no filter.
func (q GetOrdersQuery) CreatedBy() string {
	return q.createdBy
}
