package queries

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"genzdeliver/internal/pkg/guard"
)

var ErrGetZonesQueryIsNotConstructed = errors.New(
	"GetZonesQuery must be created via NewGetZonesQuery constructor",
)

// GetZonesQuery retrieves the delivery zone list.
type GetZonesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetZonesQuery creates a parameterless zone list query.
func NewGetZonesQuery() GetZonesQuery {
	return GetZonesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetZonesQueryIsNotConstructed if validation fails.
func (q GetZonesQuery) Validate() error {
	return q.guard.Validate(ErrGetZonesQueryIsNotConstructed)
}

// ZoneResponse is the read model of one delivery zone.
type ZoneResponse struct {
	ID        uuid.UUID
	Name      string
	CityID    uuid.UUID
	Latitude  string
	Longitude string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
