package commands

import (
	"errors"

	"genzdeliver/internal/core/domain/model/kernel"
	"genzdeliver/internal/pkg/errs"
	"genzdeliver/internal/pkg/guard"
)

var ErrCreateCityCommandIsNotConstructed = errors.New(
	"CreateCityCommand must be created via NewCreateCityCommand constructor",
)

// CreateCityCommand represents a request to add a coverage city.
// The slug is optional; when present it must be a valid city slug.
type CreateCityCommand struct { //nolint:recvcheck //using for validation
	name string
	slug *kernel.CitySlug

	guard guard.ConstructorGuard
}

// NewCreateCityCommand creates a command to add a coverage city.
func NewCreateCityCommand(name string, slug *kernel.CitySlug) (CreateCityCommand, error) {
	cityCommand := CreateCityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if name == "" {
		return CreateCityCommand{}, errs.NewValueIsRequiredError("name")
	}
	if slug != nil {
		if err := slug.Validate(); err != nil {
			return CreateCityCommand{}, err
		}
		value := *slug
		cityCommand.slug = &value
	}

	cityCommand.name = name
	return cityCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCityCommand) Validate() error {
	return c.guard.Validate(ErrCreateCityCommandIsNotConstructed)
}

// Name returns the display name of the city.
func (c CreateCityCommand) Name() string {
	return c.name
}

// Slug returns the pricing route key of the city, or nil when absent.
func (c CreateCityCommand) Slug() *kernel.CitySlug {
	if c.slug == nil {
		return nil
	}
	slug := *c.slug
	return &slug
}
