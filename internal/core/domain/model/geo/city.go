package geo

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"genzdeliver/internal/core/domain/model/kernel"
	"genzdeliver/internal/pkg/errs"
)

// ErrCityIsNotConstructed is returned when a City instance was not created
// through NewCity or RestoreCity.
var ErrCityIsNotConstructed = errors.New("City must be created via NewCity or RestoreCity")

const maxGeoNameLength = 100

// City is a coverage area the service delivers between. Its slug, when set,
// keys into the pricing route table.
type City struct {
	id        uuid.UUID
	name      string
	slug      *kernel.CitySlug
	active    bool
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCity creates an active city. The slug is optional: cities without one
// are served through the fallback route when quoting.
func NewCity(name string, slug *kernel.CitySlug, createdAt time.Time) (*City, error) {
	city := &City{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		city.setName(name),
		city.setSlug(slug),
	); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	city.id = uuid.New()
	city.createdAt = createdAt
	city.updatedAt = createdAt

	return city, nil
}

// RestoreCity reconstructs a City from persistence.
func RestoreCity(
	id uuid.UUID,
	name string,
	slug *kernel.CitySlug,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*City, error) {
	city := &City{
		isConstructed: true,
	}

	if err := errors.Join(
		city.setName(name),
		city.setSlug(slug),
	); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("id")
	}

	city.id = id
	city.active = active
	city.createdAt = createdAt
	city.updatedAt = updatedAt

	return city, nil
}

// Validate ensures the City instance was created through a factory method.
func (c *City) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCityIsNotConstructed
	}
	return nil
}

func (c *City) ID() uuid.UUID {
	return c.id
}

func (c *City) Name() string {
	return c.name
}

// Slug returns the pricing route key of the city, or nil when it has none.
func (c *City) Slug() *kernel.CitySlug {
	if c.slug == nil {
		return nil
	}
	slug := *c.slug
	return &slug
}

func (c *City) IsActive() bool {
	return c.active
}

func (c *City) CreatedAt() time.Time {
	return c.createdAt
}

func (c *City) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *City) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxGeoNameLength {
		return errs.NewValueIsOutOfRangeError("name", len(name), 1, maxGeoNameLength)
	}
	c.name = name
	return nil
}

func (c *City) setSlug(slug *kernel.CitySlug) error {
	if slug == nil {
		return nil
	}
	if err := slug.Validate(); err != nil {
		return err
	}
	value := *slug
	c.slug = &value
	return nil
}
