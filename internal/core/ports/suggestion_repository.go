package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/suggestion"
)

// SuggestionRepository defines the persistence contract for planner-proposed
// round suggestions. The planner writes suggestions; this core claims,
// reverts, and expires them. Claim is the single point of mutual exclusion
// between drivers racing on the same suggestion, so it is a conditional
// update rather than a plain save.
type SuggestionRepository interface {
	// Add persists a new suggestion. Normally done by the planner ingestion
	// path, also used to seed test fixtures.
	Add(ctx context.Context, aggregate *suggestion.Suggestion) error

	// Update persists changes to an existing suggestion.
	Update(ctx context.Context, aggregate *suggestion.Suggestion) error

	// Get retrieves a suggestion by its identifier, members included,
	// ordered by sequence.
	Get(ctx context.Context, id kernel.UUID) (*suggestion.Suggestion, error)

	// Claim persists the aggregate's claim fields with a conditional update
	// guarded by "accepted, unexpired and unclaimed". Returns a conflict
	// error when another driver won the race.
	Claim(ctx context.Context, aggregate *suggestion.Suggestion) error

	// RevertToPending persists the aggregate's reopened state, guarded by
	// "not expired" so an expired suggestion is never revived.
	RevertToPending(ctx context.Context, aggregate *suggestion.Suggestion) error

	// ExpireAllDue transitions every pending or accepted suggestion whose
	// expiry timestamp has passed. Returns the number of rows transitioned.
	ExpireAllDue(ctx context.Context, now time.Time) (int64, error)
}
