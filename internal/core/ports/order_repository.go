package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The dispatch core owns only the linkage fields of an order; the linkage
// writes are conditional updates so that a non-null delivery round reference
// doubles as the mutual-exclusion flag between concurrent claims.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByIDs retrieves the orders for the given identifiers.
	// Orders that disappeared are omitted, not reported as an error;
	// the caller decides whether a shorter result is acceptable.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// LinkToRound persists the aggregate's round linkage with a conditional
	// update guarded by "not yet claimed". Returns a conflict error when a
	// concurrent claim won the race; the caller must refresh and not retry.
	LinkToRound(ctx context.Context, aggregate *order.Order) error

	// Unlink persists the aggregate's cleared linkage, restoring the
	// suggestion reference the aggregate carries (if any).
	Unlink(ctx context.Context, aggregate *order.Order) error

	// UnlinkAllFromRound clears the round linkage of every order claimed into
	// the round in one statement. suggestedRoundID, when non-nil, is written
	// back so the reopened suggestion can be offered again.
	UnlinkAllFromRound(ctx context.Context, roundID kernel.UUID, suggestedRoundID *kernel.UUID) error
}
