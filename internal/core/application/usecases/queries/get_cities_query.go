package queries

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"genzdeliver/internal/pkg/guard"
)

var ErrGetCitiesQueryIsNotConstructed = errors.New(
	"GetCitiesQuery must be created via NewGetCitiesQuery constructor",
)

// GetCitiesQuery retrieves the coverage city list.
type GetCitiesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCitiesQuery creates a parameterless city list query.
func NewGetCitiesQuery() GetCitiesQuery {
	return GetCitiesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCitiesQueryIsNotConstructed if validation fails.
func (q GetCitiesQuery) Validate() error {
	return q.guard.Validate(ErrGetCitiesQueryIsNotConstructed)
}

// CityResponse is the read model of one coverage city. Slug is empty when
// the city has no pricing route key.
type CityResponse struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
