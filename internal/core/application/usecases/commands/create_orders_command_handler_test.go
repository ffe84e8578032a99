package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrdersCommand(t *testing.T) commands.CreateOrdersCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrdersCommand([]commands.OrderEntry{
		{ID: 10, Weight: 6, Region: 1, DeliveryHours: []string{"10:00-12:00"}},
		{ID: 11, Weight: 5, Region: 1, DeliveryHours: []string{"10:00-12:00"}},
	})
	require.NoError(t, err)
	return cmd
}

func TestCreateOrdersCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newCreateOrdersCommand(t)

	var captured []*order.Order
	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				captured = append(captured, args.Get(1).(*order.Order))
			}).
			Return(nil).Twice(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrdersCommandHandler(mockFactory)

	// Act
	ids, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11}, ids)
	require.Len(t, captured, 2)
	for _, o := range captured {
		assert.Equal(t, order.Created, o.Status())
		assert.Nil(t, o.Courier())
	}
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateOrdersCommandHandler_Handle_CommitError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newCreateOrdersCommand(t)

	commitError := errors.New("commit failed")
	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Twice(),
		mockUoW.On("Commit", ctx).Return(commitError).Once(),
		mockUoW.On("Rollback", ctx).Return(errors.New("rollback failed")).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrdersCommandHandler(mockFactory)

	// Act
	ids, err := handler.Handle(ctx, cmd)

	// Assert
	// the commit error wins over the rollback error
	assert.Equal(t, commitError, err)
	assert.Nil(t, ids)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
