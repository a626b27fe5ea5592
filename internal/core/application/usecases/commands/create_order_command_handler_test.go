package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"genzdeliver/internal/core/application/usecases/commands"
	"genzdeliver/internal/core/domain/model/order"
	"genzdeliver/internal/pkg/errs"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cmd, err := commands.NewCreateOrderCommand(validCreateOrderParams())
	require.NoError(t, err)

	var persisted *order.Order
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*order.Order)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: now})
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Same(t, persisted, created)
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, now, created.CreatedAt())
	require.Len(t, created.TrackingHistory(), 1)
	assert.Equal(t, order.ConfirmationLabel, created.TrackingHistory()[0].StatusLabel())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RetriesOnIDCollision(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(validCreateOrderParams())
	require.NoError(t, err)

	var firstID, secondID string
	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			firstID = args.Get(1).(*order.Order).ID().String()
		}).
		Return(errs.NewObjectAlreadyExistsError("orderId", "ORD-A")).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			secondID = args.Get(1).(*order.Order).ID().String()
		}).
		Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(repo).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Twice()

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: time.Now()})
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, firstID, secondID)
	assert.Equal(t, secondID, created.ID().String())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_GivesUpAfterRepeatedCollisions(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(validCreateOrderParams())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errs.NewObjectAlreadyExistsError("orderId", "ORD-A")).Times(5)

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Times(5)
	uow.On("OrderRepository").Return(repo).Times(5)
	uow.On("Rollback", ctx).Return(nil).Times(5)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Times(5)

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: time.Now()})
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)

	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: time.Now()})

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(validCreateOrderParams())
	require.NoError(t, err)

	storageErr := errors.New("connection refused")
	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.Anything).Return(storageErr).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: time.Now()})
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, storageErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
