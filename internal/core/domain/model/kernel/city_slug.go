package kernel

import (
	"fmt"
	"strings"

	"genzdeliver/internal/pkg/errs"
)

// ErrCitySlugIsNotConstructed indicates that a CitySlug was not properly initialized
// through the NewCitySlug constructor. This error is returned when validating a
// zero-value CitySlug.
var ErrCitySlugIsNotConstructed = errs.NewValueIsRequiredError(
	"CitySlug must be created via NewCitySlug",
)

// CitySlug is a value object that identifies a city in normalized form.
// It is the shared vocabulary between the pricing route table, which is keyed
// by origin/destination slug pairs, and the city and zone reference data.
//
// Slugs are lowercase and trimmed; "Dhaka " and "dhaka" normalize to the same
// value. The city set itself is open: an unknown slug is still a valid slug,
// the pricing estimator resolves it through the route table's fallback entry.
//
// The zero value of CitySlug is invalid and must be constructed using NewCitySlug.
type CitySlug struct {
	value string
}

// NewCitySlug normalizes and validates a city identifier.
// The input is trimmed and lowercased; an empty result is rejected.
func NewCitySlug(s string) (CitySlug, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return CitySlug{}, errs.NewValueIsRequiredError("city")
	}
	if strings.ContainsAny(normalized, " \t") {
		return CitySlug{}, errs.NewValueIsInvalidErrorWithCause(
			"city", fmt.Errorf("%q contains whitespace", s),
		)
	}
	return CitySlug{value: normalized}, nil
}

// String returns the normalized slug, for example "chittagong".
// For a zero value CitySlug this returns the empty string.
func (c CitySlug) String() string {
	return c.value
}

// IsEqual compares two city slugs by normalized value.
func (c CitySlug) IsEqual(other CitySlug) bool {
	return c.value == other.value
}

// Validate checks that the CitySlug was created through the constructor.
// Returns ErrCitySlugIsNotConstructed for a zero value.
func (c CitySlug) Validate() error {
	if c.value == "" {
		return ErrCitySlugIsNotConstructed
	}
	return nil
}
