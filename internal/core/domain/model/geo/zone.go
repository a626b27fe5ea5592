package geo

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"genzdeliver/internal/pkg/errs"
)

// ErrZoneIsNotConstructed is returned when a Zone instance was not created
// through NewZone or RestoreZone.
var ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone or RestoreZone")

// Zone is a delivery area inside a city. Coordinates are optional display
// strings taken as reported by operations staff.
type Zone struct {
	id        uuid.UUID
	name      string
	cityID    uuid.UUID
	latitude  string
	longitude string
	active    bool
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewZone creates an active zone belonging to the given city.
func NewZone(name string, cityID uuid.UUID, latitude, longitude string, createdAt time.Time) (*Zone, error) {
	zone := &Zone{
		active:        true,
		isConstructed: true,
	}

	if err := zone.setName(name); err != nil {
		return nil, err
	}
	if cityID == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("cityId")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	zone.id = uuid.New()
	zone.cityID = cityID
	zone.latitude = latitude
	zone.longitude = longitude
	zone.createdAt = createdAt
	zone.updatedAt = createdAt

	return zone, nil
}

// RestoreZone reconstructs a Zone from persistence.
func RestoreZone(
	id uuid.UUID,
	name string,
	cityID uuid.UUID,
	latitude, longitude string,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Zone, error) {
	zone := &Zone{
		isConstructed: true,
	}

	if err := zone.setName(name); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if cityID == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("cityId")
	}

	zone.id = id
	zone.cityID = cityID
	zone.latitude = latitude
	zone.longitude = longitude
	zone.active = active
	zone.createdAt = createdAt
	zone.updatedAt = updatedAt

	return zone, nil
}

// Validate ensures the Zone instance was created through a factory method.
func (z *Zone) Validate() error {
	if z == nil || !z.isConstructed {
		return ErrZoneIsNotConstructed
	}
	return nil
}

func (z *Zone) ID() uuid.UUID {
	return z.id
}

func (z *Zone) Name() string {
	return z.name
}

func (z *Zone) CityID() uuid.UUID {
	return z.cityID
}

func (z *Zone) Latitude() string {
	return z.latitude
}

func (z *Zone) Longitude() string {
	return z.longitude
}

func (z *Zone) IsActive() bool {
	return z.active
}

func (z *Zone) CreatedAt() time.Time {
	return z.createdAt
}

func (z *Zone) UpdatedAt() time.Time {
	return z.updatedAt
}

func (z *Zone) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxGeoNameLength {
		return errs.NewValueIsOutOfRangeError("name", len(name), 1, maxGeoNameLength)
	}
	z.name = name
	return nil
}
