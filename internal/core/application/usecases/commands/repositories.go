// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"dispatch/internal/core/ports"
)

// Clock supplies the current time to handlers that record timestamps or
// evaluate expiry windows. Injected so tests control time.
type Clock func() time.Time

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RoundRepoFactory provides access to the round repository within a transaction.
	RoundRepoFactory interface {
		RoundRepository() ports.RoundRepository
	}

	// SuggestionRepoFactory provides access to the suggestion repository within a transaction.
	SuggestionRepoFactory interface {
		SuggestionRepository() ports.SuggestionRepository
	}

	// RoundUoW manages transactions for round-only operations.
	// Used by commands that mutate a round in place (start, deliver).
	RoundUoW interface {
		TxManager
		RoundRepoFactory
	}

	// RoundUoWFactory creates new round unit of work instances.
	RoundUoWFactory interface {
		Create() RoundUoW
	}

	// SuggestionUoW manages transactions for suggestion-only operations.
	// Used by the expiry sweep.
	SuggestionUoW interface {
		TxManager
		SuggestionRepoFactory
	}

	// SuggestionUoWFactory creates new suggestion unit of work instances.
	SuggestionUoWFactory interface {
		Create() SuggestionUoW
	}

	// OrderRoundUoW manages transactions spanning orders and rounds.
	// Used by the single-order claim, add and stop release paths.
	OrderRoundUoW interface {
		TxManager
		OrderRepoFactory
		RoundRepoFactory
	}

	// OrderRoundUoWFactory creates new order/round unit of work instances.
	OrderRoundUoWFactory interface {
		Create() OrderRoundUoW
	}

	// UoW manages transactions across orders, rounds and suggestions.
	// Used by commands that cross the planner boundary: claiming a suggested
	// round and releasing a round that originated from one.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   roundRepo := uow.RoundRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		RoundRepoFactory
		SuggestionRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
