package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/round"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClaimOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	testOrder := makeTestOrder(t, order.Ready)

	cmd, err := commands.NewClaimOrderCommand(testOrder.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	roundRepo := new(MockRoundRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RoundRepository").Return(roundRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		roundRepo.On("GetReadyByDriver", ctx, driverID).
			Return(nil, errs.NewObjectNotFoundError("round", driverID.String())).
			Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		roundRepo.On("Add", ctx, mock.AnythingOfType("*round.Round")).Return(nil).Once(),
		orderRepo.On("LinkToRound", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderRoundUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory, testMaxStops)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// The round created for the claim holds one stop owned by the driver.
	addCall := roundRepo.Calls[1]
	createdRound := addCall.Arguments[1].(*round.Round)
	assert.Equal(t, 1, createdRound.TotalStops())
	assert.True(t, createdRound.DriverID().IsEqual(driverID))
	require.NotNil(t, testOrder.DeliveryRoundID())
	assert.True(t, testOrder.DeliveryRoundID().IsEqual(createdRound.ID()))

	orderRepo.AssertExpectations(t)
	roundRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ClaimOrderCommand{} // not constructed properly

	factory := new(MockOrderRoundUoWFactory)
	handler := commands.NewClaimOrderCommandHandler(factory, testMaxStops)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrClaimOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestClaimOrderCommandHandler_Handle_DriverAlreadyHasReadyRound(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	testOrder := makeTestOrder(t, order.Ready)

	cmd, err := commands.NewClaimOrderCommand(testOrder.ID(), driverID)
	require.NoError(t, err)

	roundRepo := new(MockRoundRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RoundRepository").Return(roundRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		roundRepo.On("GetReadyByDriver", ctx, driverID).Return(makeTestRound(t, driverID, 1), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderRoundUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory, testMaxStops)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDriverHasReadyRound)
	orderRepo.AssertNotCalled(t, "Get")
}

func TestClaimOrderCommandHandler_Handle_OrderAlreadyClaimed(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	testOrder := makeTestOrder(t, order.Ready)
	require.NoError(t, testOrder.AssignToRound(kernel.NewUUID()))

	cmd, err := commands.NewClaimOrderCommand(testOrder.ID(), driverID)
	require.NoError(t, err)

	roundRepo := new(MockRoundRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RoundRepository").Return(roundRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		roundRepo.On("GetReadyByDriver", ctx, driverID).
			Return(nil, errs.NewObjectNotFoundError("round", driverID.String())).
			Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderRoundUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory, testMaxStops)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrResourceConflict)
	roundRepo.AssertNotCalled(t, "Add")
}

func TestClaimOrderCommandHandler_Handle_LinkConflict(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	testOrder := makeTestOrder(t, order.Ready)

	cmd, err := commands.NewClaimOrderCommand(testOrder.ID(), driverID)
	require.NoError(t, err)

	roundRepo := new(MockRoundRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	conflict := errs.NewResourceConflictError("order", testOrder.ID().String())

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RoundRepository").Return(roundRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		roundRepo.On("GetReadyByDriver", ctx, driverID).
			Return(nil, errs.NewObjectNotFoundError("round", driverID.String())).
			Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		roundRepo.On("Add", ctx, mock.AnythingOfType("*round.Round")).Return(nil).Once(),
		orderRepo.On("LinkToRound", ctx, testOrder).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderRoundUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory, testMaxStops)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrResourceConflict)
	uow.AssertNotCalled(t, "Commit")
}

func TestClaimOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewClaimOrderCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockOrderRoundUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewClaimOrderCommandHandler(factory, testMaxStops)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}
