package commands

import (
	"context"

	"genzdeliver/internal/core/domain/model/geo"
	"genzdeliver/internal/core/ports"
)

// CreateZoneCommandHandler handles delivery zone creation.
type CreateZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
	clock      ports.Clock
}

// NewCreateZoneCommandHandler creates a handler for zone creation operations.
func NewCreateZoneCommandHandler(uowFactory ZoneUoWFactory, clock ports.Clock) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the zone creation command and returns the created zone.
func (h *CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) (*geo.Zone, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	zone, err := geo.NewZone(cmd.Name(), cmd.CityID(), cmd.Latitude(), cmd.Longitude(), h.clock.Now())
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

	if err = uow.ZoneRepository().Add(ctx, zone); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return zone, nil
}
