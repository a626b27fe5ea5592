package ports

import (
	"context"

	"genzdeliver/internal/core/domain/model/geo"
)

// CityRepository defines the persistence contract for coverage cities.
type CityRepository interface {
	// Add persists a new city.
	Add(ctx context.Context, city *geo.City) error

	// GetAll retrieves every city, active and inactive, in creation order.
	GetAll(ctx context.Context) ([]*geo.City, error)
}

// ZoneRepository defines the persistence contract for delivery zones.
type ZoneRepository interface {
	// Add persists a new zone.
	Add(ctx context.Context, zone *geo.Zone) error

	// GetAll retrieves every zone, active and inactive, in creation order.
	GetAll(ctx context.Context) ([]*geo.Zone, error)
}
