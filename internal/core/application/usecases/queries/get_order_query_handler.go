package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"genzdeliver/internal/pkg/errs"
)

// GetOrderQueryHandler reads one order with its tracking history from the
// database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns *errs.ObjectNotFoundError when no order
// carries the requested identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	id := query.OrderID().String()

	orders, err := scanOrders(h.db.WithContext(ctx).Raw(
		selectOrdersSQL+` WHERE id = ?`, id,
	))
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", id)
	}

	events, err := scanTrackingEvents(h.db.WithContext(ctx).Raw(`
		SELECT order_id, status_label, timestamp, location, description
		FROM tracking_events
		WHERE order_id = ?
		ORDER BY seq
	`, id))
	if err != nil {
		return OrderResponse{}, err
	}

	resp := orders[0]
	resp.TrackingHistory = events[id]
	return resp, nil
}

const selectOrdersSQL = `
	SELECT
		id,
		recipient_name,
		recipient_phone,
		recipient_secondary_phone,
		recipient_address,
		delivery_area,
		pickup_address,
		delivery_address,
		amount_to_collect,
		delivery_type,
		product_type,
		total_weight,
		quantity,
		item_description,
		special_instructions,
		created_by,
		status,
		created_at,
		updated_at,
		delivered_at
	FROM orders`

// scanOrders runs an orders SELECT and maps its rows, without tracking
// history. Shared by the single-order and list handlers.
func scanOrders(tx *gorm.DB) ([]OrderResponse, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var resp OrderResponse
		var deliveredAt sql.NullTime

		err = rows.Scan(
			&resp.ID,
			&resp.RecipientName,
			&resp.RecipientPhone,
			&resp.RecipientSecondaryPhone,
			&resp.RecipientAddress,
			&resp.DeliveryArea,
			&resp.PickupAddress,
			&resp.DeliveryAddress,
			&resp.AmountToCollect,
			&resp.DeliveryType,
			&resp.ProductType,
			&resp.TotalWeight,
			&resp.Quantity,
			&resp.ItemDescription,
			&resp.SpecialInstructions,
			&resp.CreatedBy,
			&resp.Status,
			&resp.CreatedAt,
			&resp.UpdatedAt,
			&deliveredAt,
		)
		if err != nil {
			return nil, err
		}

		if deliveredAt.Valid {
			at := deliveredAt.Time
			resp.DeliveredAt = &at
		}
		orders = append(orders, resp)
	}

	return orders, rows.Err()
}

// scanTrackingEvents runs a tracking_events SELECT and groups the rows by
// order identifier, preserving row order within each group.
func scanTrackingEvents(tx *gorm.DB) (map[string][]TrackingEventResponse, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make(map[string][]TrackingEventResponse)
	for rows.Next() {
		var orderID string
		var event TrackingEventResponse

		err = rows.Scan(
			&orderID,
			&event.Status,
			&event.Timestamp,
			&event.Location,
			&event.Description,
		)
		if err != nil {
			return nil, err
		}

		events[orderID] = append(events[orderID], event)
	}

	return events, rows.Err()
}
