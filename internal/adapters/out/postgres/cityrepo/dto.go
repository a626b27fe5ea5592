// Package cityrepo persists coverage city reference data.
package cityrepo

import (
	"time"

	"github.com/google/uuid"

	"genzdeliver/internal/core/domain/model/geo"
	"genzdeliver/internal/core/domain/model/kernel"
)

// CityDTO represents the database structure for coverage cities.
type CityDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Slug      *string `gorm:"uniqueIndex"`
	IsActive  bool
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for city rows.
func (CityDTO) TableName() string {
	return "cities"
}

func fromDomain(city *geo.City) CityDTO {
	var slug *string
	if s := city.Slug(); s != nil {
		value := s.String()
		slug = &value
	}

	return CityDTO{
		ID:        city.ID(),
		Name:      city.Name(),
		Slug:      slug,
		IsActive:  city.IsActive(),
		CreatedAt: city.CreatedAt(),
		UpdatedAt: city.UpdatedAt(),
	}
}

func toDomain(dto CityDTO) (*geo.City, error) {
	var slug *kernel.CitySlug
	if dto.Slug != nil {
		value, err := kernel.NewCitySlug(*dto.Slug)
		if err != nil {
			return nil, err
		}
		slug = &value
	}

	return geo.RestoreCity(dto.ID, dto.Name, slug, dto.IsActive, dto.CreatedAt, dto.UpdatedAt)
}
