package commands

import (
	"context"

	"genzdeliver/internal/core/domain/model/geo"
	"genzdeliver/internal/core/ports"
)

// CreateCityCommandHandler handles coverage city creation.
type CreateCityCommandHandler struct {
	uowFactory CityUoWFactory
	clock      ports.Clock
}

// NewCreateCityCommandHandler creates a handler for city creation operations.
func NewCreateCityCommandHandler(uowFactory CityUoWFactory, clock ports.Clock) CreateCityCommandHandler {
	return CreateCityCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the city creation command and returns the created city.
func (h *CreateCityCommandHandler) Handle(ctx context.Context, cmd CreateCityCommand) (*geo.City, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	city, err := geo.NewCity(cmd.Name(), cmd.Slug(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CityRepository().Add(ctx, city); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return city, nil
}
