// Package zonerepo persists delivery zone reference data.
package zonerepo

import (
	"time"

	"github.com/google/uuid"

	"genzdeliver/internal/core/domain/model/geo"
)

// ZoneDTO represents the database structure for delivery zones.
type ZoneDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	CityID    uuid.UUID `gorm:"type:uuid;index"`
	Latitude  string
	Longitude string
	IsActive  bool
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for zone rows.
func (ZoneDTO) TableName() string {
	return "zones"
}

func fromDomain(zone *geo.Zone) ZoneDTO {
	return ZoneDTO{
		ID:        zone.ID(),
		Name:      zone.Name(),
		CityID:    zone.CityID(),
		Latitude:  zone.Latitude(),
		Longitude: zone.Longitude(),
		IsActive:  zone.IsActive(),
		CreatedAt: zone.CreatedAt(),
		UpdatedAt: zone.UpdatedAt(),
	}
}

func toDomain(dto ZoneDTO) (*geo.Zone, error) {
	return geo.RestoreZone(
		dto.ID, dto.Name, dto.CityID,
		dto.Latitude, dto.Longitude, dto.IsActive,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
