package geo

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genzdeliver/internal/core/domain/model/kernel"
)

func TestNewCity(t *testing.T) {
	now := time.Now()
	slug, err := kernel.NewCitySlug("dhaka")
	require.NoError(t, err)

	city, err := NewCity("Dhaka", &slug, now)
	require.NoError(t, err)
	require.NoError(t, city.Validate())

	assert.NotEqual(t, uuid.Nil, city.ID())
	assert.Equal(t, "Dhaka", city.Name())
	require.NotNil(t, city.Slug())
	assert.Equal(t, "dhaka", city.Slug().String())
	assert.True(t, city.IsActive())
	assert.Equal(t, now, city.CreatedAt())
	assert.Equal(t, now, city.UpdatedAt())
}

func TestNewCity_SlugIsOptional(t *testing.T) {
	city, err := NewCity("Bagerhat", nil, time.Now())
	require.NoError(t, err)
	assert.Nil(t, city.Slug())
}

func TestNewCity_Invalid(t *testing.T) {
	_, err := NewCity("", nil, time.Now())
	assert.Error(t, err)

	_, err = NewCity(strings.Repeat("x", 101), nil, time.Now())
	assert.Error(t, err)

	_, err = NewCity("Dhaka", nil, time.Time{})
	assert.Error(t, err)
}

func TestRestoreCity(t *testing.T) {
	id := uuid.New()
	createdAt := time.Now().Add(-time.Hour)
	updatedAt := time.Now()

	city, err := RestoreCity(id, "Sylhet", nil, false, createdAt, updatedAt)
	require.NoError(t, err)

	assert.Equal(t, id, city.ID())
	assert.False(t, city.IsActive())
	assert.Equal(t, createdAt, city.CreatedAt())
	assert.Equal(t, updatedAt, city.UpdatedAt())

	_, err = RestoreCity(uuid.Nil, "Sylhet", nil, true, createdAt, updatedAt)
	assert.Error(t, err)
}

func TestCity_Validate_NotConstructed(t *testing.T) {
	var city City
	assert.ErrorIs(t, city.Validate(), ErrCityIsNotConstructed)
}

func TestNewZone(t *testing.T) {
	now := time.Now()
	cityID := uuid.New()

	zone, err := NewZone("Dhanmondi", cityID, "23.7465", "90.3760", now)
	require.NoError(t, err)
	require.NoError(t, zone.Validate())

	assert.NotEqual(t, uuid.Nil, zone.ID())
	assert.Equal(t, "Dhanmondi", zone.Name())
	assert.Equal(t, cityID, zone.CityID())
	assert.Equal(t, "23.7465", zone.Latitude())
	assert.Equal(t, "90.3760", zone.Longitude())
	assert.True(t, zone.IsActive())
	assert.Equal(t, now, zone.CreatedAt())
}

func TestNewZone_Invalid(t *testing.T) {
	_, err := NewZone("", uuid.New(), "", "", time.Now())
	assert.Error(t, err)

	_, err = NewZone("Dhanmondi", uuid.Nil, "", "", time.Now())
	assert.Error(t, err)

	_, err = NewZone("Dhanmondi", uuid.New(), "", "", time.Time{})
	assert.Error(t, err)
}

func TestRestoreZone(t *testing.T) {
	id := uuid.New()
	cityID := uuid.New()
	createdAt := time.Now().Add(-time.Hour)

	zone, err := RestoreZone(id, "Agrabad", cityID, "", "", false, createdAt, createdAt)
	require.NoError(t, err)

	assert.Equal(t, id, zone.ID())
	assert.Equal(t, cityID, zone.CityID())
	assert.False(t, zone.IsActive())

	_, err = RestoreZone(uuid.Nil, "Agrabad", cityID, "", "", true, createdAt, createdAt)
	assert.Error(t, err)
}

func TestZone_Validate_NotConstructed(t *testing.T) {
	var zone Zone
	assert.ErrorIs(t, zone.Validate(), ErrZoneIsNotConstructed)
}
