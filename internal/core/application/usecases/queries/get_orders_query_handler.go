package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads the order list from the database,
// most recent first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list reads.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest first, each with its
// tracking history in append order.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	if createdBy := query.CreatedBy(); createdBy != "" {
		tx = tx.Raw(selectOrdersSQL+` WHERE created_by = ? ORDER BY created_at DESC, id`, createdBy)
	} else {
		tx = tx.Raw(selectOrdersSQL + ` ORDER BY created_at DESC, id`)
	}

	orders, err := scanOrders(tx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, 0, len(orders))
	for _, resp := range orders {
		ids = append(ids, resp.ID)
	}

	events, err := scanTrackingEvents(h.db.WithContext(ctx).Raw(`
		SELECT order_id, status_label, timestamp, location, description
		FROM tracking_events
		WHERE order_id IN ?
		ORDER BY order_id, seq
	`, ids))
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].TrackingHistory = events[orders[i].ID]
	}

	return orders, nil
}
