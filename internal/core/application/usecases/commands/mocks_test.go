package commands_test

import (
	"context"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/round"
	"dispatch/internal/core/domain/model/suggestion"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) LinkToRound(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Unlink(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UnlinkAllFromRound(
	ctx context.Context,
	roundID kernel.UUID,
	suggestedRoundID *kernel.UUID,
) error {
	args := m.Called(ctx, roundID, suggestedRoundID)
	return args.Error(0)
}

type MockRoundRepository struct{ mock.Mock }

func (m *MockRoundRepository) Add(ctx context.Context, r *round.Round) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRoundRepository) Update(ctx context.Context, r *round.Round) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRoundRepository) Get(ctx context.Context, id kernel.UUID) (*round.Round, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*round.Round), args.Error(1)
}

func (m *MockRoundRepository) GetReadyByDriver(ctx context.Context, driverID kernel.UUID) (*round.Round, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*round.Round), args.Error(1)
}

func (m *MockRoundRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSuggestionRepository struct{ mock.Mock }

func (m *MockSuggestionRepository) Add(ctx context.Context, s *suggestion.Suggestion) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSuggestionRepository) Update(ctx context.Context, s *suggestion.Suggestion) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSuggestionRepository) Get(ctx context.Context, id kernel.UUID) (*suggestion.Suggestion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*suggestion.Suggestion), args.Error(1)
}

func (m *MockSuggestionRepository) Claim(ctx context.Context, s *suggestion.Suggestion) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSuggestionRepository) RevertToPending(ctx context.Context, s *suggestion.Suggestion) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSuggestionRepository) ExpireAllDue(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit of work flavor the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RoundRepository() ports.RoundRepository {
	args := m.Called()
	return args.Get(0).(ports.RoundRepository)
}

func (m *MockUoW) SuggestionRepository() ports.SuggestionRepository {
	args := m.Called()
	return args.Get(0).(ports.SuggestionRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderRoundUoWFactory struct{ mock.Mock }

func (m *MockOrderRoundUoWFactory) Create() commands.OrderRoundUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderRoundUoW)
}

type MockRoundUoWFactory struct{ mock.Mock }

func (m *MockRoundUoWFactory) Create() commands.RoundUoW {
	args := m.Called()
	return args.Get(0).(commands.RoundUoW)
}

type MockSuggestionUoWFactory struct{ mock.Mock }

func (m *MockSuggestionUoWFactory) Create() commands.SuggestionUoW {
	args := m.Called()
	return args.Get(0).(commands.SuggestionUoW)
}
