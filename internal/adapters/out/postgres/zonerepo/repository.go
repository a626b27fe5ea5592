package zonerepo

import (
	"context"

	"gorm.io/gorm"

	"genzdeliver/internal/core/domain/model/geo"
)

// GormZoneRepository implements ZoneRepository using GORM.
type GormZoneRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormZoneRepository creates a new GORM zone repository.
func NewGormZoneRepository(db *gorm.DB, tracker aggregateTracker) *GormZoneRepository {
	return &GormZoneRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new zone to the database.
func (r *GormZoneRepository) Add(ctx context.Context, zone *geo.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}

	dto := fromDomain(zone)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.ID.String(), zone)
	return nil
}

// GetAll retrieves every zone in creation order.
func (r *GormZoneRepository) GetAll(ctx context.Context) ([]*geo.Zone, error) {
	var dtos []ZoneDTO
	err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	zones := make([]*geo.Zone, 0, len(dtos))
	for _, dto := range dtos {
		zone, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		zones = append(zones, zone)
	}

	return zones, nil
}
