package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/round"
	"dispatch/internal/core/domain/model/suggestion"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClaimSuggestedRoundCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	orders := []*order.Order{
		makeTestOrder(t, order.Ready),
		makeTestOrder(t, order.Ready),
		makeTestOrder(t, order.Ready),
	}
	sug := makeTestSuggestion(t, orders)

	cmd, err := commands.NewClaimSuggestedRoundCommand(sug.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	roundRepo := new(MockRoundRepository)
	suggestionRepo := new(MockSuggestionRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SuggestionRepository").Return(suggestionRepo).Once(),
		uow.On("RoundRepository").Return(roundRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		roundRepo.On("GetReadyByDriver", ctx, driverID).
			Return(nil, errs.NewObjectNotFoundError("round", driverID.String())).
			Once(),
		suggestionRepo.On("Get", ctx, sug.ID()).Return(sug, nil).Once(),
		orderRepo.On("GetAllByIDs", ctx, sug.OrderIDs()).Return(orders, nil).Once(),
		suggestionRepo.On("Claim", ctx, sug).Return(nil).Once(),
		roundRepo.On("Add", ctx, mock.AnythingOfType("*round.Round")).Return(nil).Once(),
		orderRepo.On("LinkToRound", ctx, orders[0]).Return(nil).Once(),
		orderRepo.On("LinkToRound", ctx, orders[1]).Return(nil).Once(),
		orderRepo.On("LinkToRound", ctx, orders[2]).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimSuggestedRoundCommandHandler(factory, testMaxStops, fixedClock)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addCall := roundRepo.Calls[1]
	createdRound := addCall.Arguments[1].(*round.Round)
	assert.Equal(t, 3, createdRound.TotalStops())
	assert.Equal(t, round.Ready, createdRound.Status())
	require.NotNil(t, createdRound.SuggestionID())
	assert.True(t, createdRound.SuggestionID().IsEqual(sug.ID()))
	assert.Equal(t, sug.DepartureAt(), *createdRound.PlannedDeparture())

	for i, stop := range createdRound.Stops() {
		member := sug.Members()[i]
		assert.True(t, stop.OrderID().IsEqual(member.OrderID()))
		assert.Equal(t, member.EstimatedArrival(), *stop.EstimatedArrival())
	}

	assert.True(t, sug.IsClaimed())
	assert.Equal(t, testTime, *sug.ClaimedAt())

	orderRepo.AssertExpectations(t)
	roundRepo.AssertExpectations(t)
	suggestionRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClaimSuggestedRoundCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ClaimSuggestedRoundCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewClaimSuggestedRoundCommandHandler(factory, testMaxStops, fixedClock)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrClaimSuggestedRoundCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestClaimSuggestedRoundCommandHandler_Handle_AlreadyClaimed(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	orders := []*order.Order{makeTestOrder(t, order.Ready)}
	sug := makeTestSuggestion(t, orders)
	require.NoError(t, sug.Claim(kernel.NewUUID(), testTime))

	cmd, err := commands.NewClaimSuggestedRoundCommand(sug.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	roundRepo := new(MockRoundRepository)
	suggestionRepo := new(MockSuggestionRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SuggestionRepository").Return(suggestionRepo).Once(),
		uow.On("RoundRepository").Return(roundRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		roundRepo.On("GetReadyByDriver", ctx, driverID).
			Return(nil, errs.NewObjectNotFoundError("round", driverID.String())).
			Once(),
		suggestionRepo.On("Get", ctx, sug.ID()).Return(sug, nil).Once(),
		orderRepo.On("GetAllByIDs", ctx, sug.OrderIDs()).Return(orders, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimSuggestedRoundCommandHandler(factory, testMaxStops, fixedClock)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrResourceConflict)
	suggestionRepo.AssertNotCalled(t, "Claim")
	roundRepo.AssertNotCalled(t, "Add")
}

func TestClaimSuggestedRoundCommandHandler_Handle_PendingSuggestionRejected(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	orders := []*order.Order{makeTestOrder(t, order.Ready)}

	members := []suggestion.Member{}
	for i, o := range orders {
		m, mErr := suggestion.NewMember(o.ID(), i+1, testTime.Add(15*time.Minute))
		require.NoError(t, mErr)
		members = append(members, m)
	}
	sug, err := suggestion.RestoreSuggestion(
		kernel.NewUUID(), suggestion.Pending,
		testTime.Add(-20*time.Minute), testTime.Add(10*time.Minute), testTime.Add(time.Hour),
		nil, nil, members,
	)
	require.NoError(t, err)

	cmd, err := commands.NewClaimSuggestedRoundCommand(sug.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	roundRepo := new(MockRoundRepository)
	suggestionRepo := new(MockSuggestionRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SuggestionRepository").Return(suggestionRepo).Once(),
		uow.On("RoundRepository").Return(roundRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		roundRepo.On("GetReadyByDriver", ctx, driverID).
			Return(nil, errs.NewObjectNotFoundError("round", driverID.String())).
			Once(),
		suggestionRepo.On("Get", ctx, sug.ID()).Return(sug, nil).Once(),
		orderRepo.On("GetAllByIDs", ctx, sug.OrderIDs()).Return(orders, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimSuggestedRoundCommandHandler(factory, testMaxStops, fixedClock)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
}

func TestClaimSuggestedRoundCommandHandler_Handle_ClaimRaceLost(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	orders := []*order.Order{makeTestOrder(t, order.Ready), makeTestOrder(t, order.Ready)}
	sug := makeTestSuggestion(t, orders)

	cmd, err := commands.NewClaimSuggestedRoundCommand(sug.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	roundRepo := new(MockRoundRepository)
	suggestionRepo := new(MockSuggestionRepository)
	uow := new(MockUoW)

	conflict := errs.NewResourceConflictError("suggested round", sug.ID().String())

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SuggestionRepository").Return(suggestionRepo).Once(),
		uow.On("RoundRepository").Return(roundRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		roundRepo.On("GetReadyByDriver", ctx, driverID).
			Return(nil, errs.NewObjectNotFoundError("round", driverID.String())).
			Once(),
		suggestionRepo.On("Get", ctx, sug.ID()).Return(sug, nil).Once(),
		orderRepo.On("GetAllByIDs", ctx, sug.OrderIDs()).Return(orders, nil).Once(),
		suggestionRepo.On("Claim", ctx, sug).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimSuggestedRoundCommandHandler(factory, testMaxStops, fixedClock)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrResourceConflict)
	roundRepo.AssertNotCalled(t, "Add")
	uow.AssertNotCalled(t, "Commit")
}

func TestClaimSuggestedRoundCommandHandler_Handle_DriverAlreadyHasReadyRound(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewClaimSuggestedRoundCommand(kernel.NewUUID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	roundRepo := new(MockRoundRepository)
	suggestionRepo := new(MockSuggestionRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SuggestionRepository").Return(suggestionRepo).Once(),
		uow.On("RoundRepository").Return(roundRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		roundRepo.On("GetReadyByDriver", ctx, driverID).Return(makeTestRound(t, driverID, 1), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimSuggestedRoundCommandHandler(factory, testMaxStops, fixedClock)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDriverHasReadyRound)
	suggestionRepo.AssertNotCalled(t, "Get")
}
