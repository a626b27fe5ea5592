package commands

import (
	"errors"

	"github.com/google/uuid"

	"genzdeliver/internal/pkg/errs"
	"genzdeliver/internal/pkg/guard"
)

var ErrCreateZoneCommandIsNotConstructed = errors.New(
	"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
)

// CreateZoneCommand represents a request to add a delivery zone to a city.
// Coordinates are optional display strings.
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	name      string
	cityID    uuid.UUID
	latitude  string
	longitude string

	guard guard.ConstructorGuard
}

// NewCreateZoneCommand creates a command to add a delivery zone.
func NewCreateZoneCommand(name string, cityID uuid.UUID, latitude, longitude string) (CreateZoneCommand, error) {
	zoneCommand := CreateZoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if name == "" {
		return CreateZoneCommand{}, errs.NewValueIsRequiredError("name")
	}
	if cityID == uuid.Nil {
		return CreateZoneCommand{}, errs.NewValueIsRequiredError("cityId")
	}

	zoneCommand.name = name
	zoneCommand.cityID = cityID
	zoneCommand.latitude = latitude
	zoneCommand.longitude = longitude
	return zoneCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

// Name returns the display name of the zone.
func (c CreateZoneCommand) Name() string {
	return c.name
}

// CityID returns the identifier of the owning city.
func (c CreateZoneCommand) CityID() uuid.UUID {
	return c.cityID
}

// Latitude returns the optional latitude display string.
func (c CreateZoneCommand) Latitude() string {
	return c.latitude
}

// Longitude returns the optional longitude display string.
func (c CreateZoneCommand) Longitude() string {
	return c.longitude
}
