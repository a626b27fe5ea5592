package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genzdeliver/internal/core/application/usecases/queries"
	"genzdeliver/internal/core/domain/model/kernel"
	"genzdeliver/internal/core/domain/model/pricing"
)

func slug(t *testing.T, s string) kernel.CitySlug {
	t.Helper()
	citySlug, err := kernel.NewCitySlug(s)
	require.NoError(t, err)
	return citySlug
}

func TestNewCalculateDeliveryQuery(t *testing.T) {
	query, err := queries.NewCalculateDeliveryQuery(
		slug(t, "dhaka"), slug(t, "chittagong"),
		pricing.Standard, pricing.Document, pricing.WeightUpToHalfKg,
	)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.Equal(t, "dhaka", query.Spec().Origin().String())
	assert.Equal(t, "chittagong", query.Spec().Destination().String())
}

func TestNewCalculateDeliveryQuery_Invalid(t *testing.T) {
	_, err := queries.NewCalculateDeliveryQuery(
		kernel.CitySlug{}, slug(t, "chittagong"),
		pricing.Standard, pricing.Document, pricing.WeightUpToHalfKg,
	)
	assert.Error(t, err, "unconstructed origin")

	_, err = queries.NewCalculateDeliveryQuery(
		slug(t, "dhaka"), slug(t, "chittagong"),
		pricing.SpeedTierUnknown, pricing.Document, pricing.WeightUpToHalfKg,
	)
	assert.Error(t, err, "unknown speed tier")
}

func TestCalculateDeliveryQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.CalculateDeliveryQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrCalculateDeliveryQueryIsNotConstructed)
}
