package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/round"
)

// RoundRepository defines the persistence contract for delivery round
// aggregates and their stops. Rounds are stored with their child stops;
// reads always return the full aggregate.
type RoundRepository interface {
	// Add persists a new round aggregate together with its stops.
	Add(ctx context.Context, aggregate *round.Round) error

	// Update persists changes to an existing round and its stops.
	Update(ctx context.Context, aggregate *round.Round) error

	// Get retrieves a round by its unique identifier, stops included,
	// ordered by sequence.
	Get(ctx context.Context, id kernel.UUID) (*round.Round, error)

	// GetReadyByDriver retrieves the driver's round still in Ready status.
	// A driver holds at most one; returns a not-found error when there is none.
	GetReadyByDriver(ctx context.Context, driverID kernel.UUID) (*round.Round, error)

	// Delete removes a round and all of its stops. Used by the release
	// operations; completed rounds are never deleted.
	Delete(ctx context.Context, id kernel.UUID) error
}
