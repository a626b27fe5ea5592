package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetZonesQueryHandler reads the delivery zone list from the database.
type GetZonesQueryHandler struct {
	db *gorm.DB
}

// NewGetZonesQueryHandler creates a handler for zone list reads.
// Requires a GORM database connection for query execution.
func NewGetZonesQueryHandler(db *gorm.DB) GetZonesQueryHandler {
	return GetZonesQueryHandler{db: db}
}

// Handle executes the query. Zones come back in creation order.
func (h GetZonesQueryHandler) Handle(ctx context.Context, query GetZonesQuery) ([]ZoneResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, city_id, latitude, longitude, is_active, created_at, updated_at
		FROM zones
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := make([]ZoneResponse, 0)
	for rows.Next() {
		var resp ZoneResponse

		err = rows.Scan(
			&resp.ID,
			&resp.Name,
			&resp.CityID,
			&resp.Latitude,
			&resp.Longitude,
			&resp.IsActive,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		zones = append(zones, resp)
	}

	return zones, rows.Err()
}
