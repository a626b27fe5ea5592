package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genzdeliver/internal/core/application/usecases/queries"
	"genzdeliver/internal/core/domain/model/kernel"
)

func TestNewGetOrderQuery(t *testing.T) {
	id := kernel.NewOrderID()

	query, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(id))
}

func TestNewGetOrderQuery_Invalid(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.OrderID{})
	assert.Error(t, err)
}

func TestGetOrderQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetOrderQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetOrdersQuery(t *testing.T) {
	query := queries.NewGetOrdersQuery("merchant-7")
	require.NoError(t, query.Validate())
	assert.Equal(t, "merchant-7", query.CreatedBy())

	unfiltered := queries.NewGetOrdersQuery("")
	assert.Empty(t, unfiltered.CreatedBy())
}

func TestGetOrdersQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetOrdersQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
}

func TestNewGetCitiesQuery(t *testing.T) {
	require.NoError(t, queries.NewGetCitiesQuery().Validate())
	assert.Error(t, queries.GetCitiesQuery{}.Validate())
}

func TestNewGetZonesQuery(t *testing.T) {
	require.NoError(t, queries.NewGetZonesQuery().Validate())
	assert.Error(t, queries.GetZonesQuery{}.Validate())
}
