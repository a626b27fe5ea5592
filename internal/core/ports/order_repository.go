// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, the tariff snapshot
// provider, and the clock. These interfaces enable dependency inversion
// and testability.
package ports

import (
	"context"

	"genzdeliver/internal/core/domain/model/kernel"
	"genzdeliver/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their tracking history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns *errs.ObjectAlreadyExistsError when the order's public
	// identifier is already taken, so callers can regenerate and retry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate,
	// appending any new tracking events.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its public identifier.
	// Returns *errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate by its public identifier,
	// taking a row lock for the duration of the enclosing transaction.
	// Concurrent mutations of the same order serialize behind the lock.
	GetForUpdate(ctx context.Context, id kernel.OrderID) (*order.Order, error)
}
