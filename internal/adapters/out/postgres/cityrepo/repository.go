package cityrepo

import (
	"context"

	"gorm.io/gorm"

	"genzdeliver/internal/core/domain/model/geo"
)

// GormCityRepository implements CityRepository using GORM.
type GormCityRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormCityRepository creates a new GORM city repository.
func NewGormCityRepository(db *gorm.DB, tracker aggregateTracker) *GormCityRepository {
	return &GormCityRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new city to the database.
func (r *GormCityRepository) Add(ctx context.Context, city *geo.City) error {
	if err := city.Validate(); err != nil {
		return err
	}

	dto := fromDomain(city)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.ID.String(), city)
	return nil
}

// GetAll retrieves every city in creation order.
func (r *GormCityRepository) GetAll(ctx context.Context) ([]*geo.City, error) {
	var dtos []CityDTO
	err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	cities := make([]*geo.City, 0, len(dtos))
	for _, dto := range dtos {
		city, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		cities = append(cities, city)
	}

	return cities, nil
}
