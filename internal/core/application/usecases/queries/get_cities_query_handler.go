package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetCitiesQueryHandler reads the coverage city list from the database.
type GetCitiesQueryHandler struct {
	db *gorm.DB
}

// NewGetCitiesQueryHandler creates a handler for city list reads.
// Requires a GORM database connection for query execution.
func NewGetCitiesQueryHandler(db *gorm.DB) GetCitiesQueryHandler {
	return GetCitiesQueryHandler{db: db}
}

// Handle executes the query. Cities come back in creation order.
func (h GetCitiesQueryHandler) Handle(ctx context.Context, query GetCitiesQuery) ([]CityResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, slug, is_active, created_at, updated_at
		FROM cities
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]CityResponse, 0)
	for rows.Next() {
		var resp CityResponse
		var slug sql.NullString

		err = rows.Scan(
			&resp.ID,
			&resp.Name,
			&slug,
			&resp.IsActive,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Slug = slug.String
		cities = append(cities, resp)
	}

	return cities, rows.Err()
}
