package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"genzdeliver/internal/core/application/usecases/commands"
)

func TestCreateCityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cmd, err := commands.NewCreateCityCommand("Dhaka", nil)
	require.NoError(t, err)

	repo := new(MockCityRepository)
	uow := new(MockCityUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CityRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*geo.City")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCityCommandHandler(factory, fixedClock{now: now})
	city, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "Dhaka", city.Name())
	assert.True(t, city.IsActive())
	assert.Equal(t, now, city.CreatedAt())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateCityCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockCityUoWFactory)
	h := commands.NewCreateCityCommandHandler(factory, fixedClock{now: time.Now()})

	_, err := h.Handle(t.Context(), commands.CreateCityCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
