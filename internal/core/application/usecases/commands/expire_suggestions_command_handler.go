package commands

import (
	"context"
)

// ExpireSuggestionsCommandHandler runs the suggestion expiry sweep.
// Bulk-transitions due suggestions in one statement; member orders keep their
// suggestion reference, the eligibility query treats orders of expired
// suggestions as individually claimable again.
type ExpireSuggestionsCommandHandler struct {
	uowFactory SuggestionUoWFactory
	clock      Clock
}

// NewExpireSuggestionsCommandHandler creates a handler for the expiry sweep.
func NewExpireSuggestionsCommandHandler(uowFactory SuggestionUoWFactory, clock Clock) ExpireSuggestionsCommandHandler {
	return ExpireSuggestionsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the expiry sweep and returns how many suggestions were
// transitioned.
func (h ExpireSuggestionsCommandHandler) Handle(ctx context.Context, command ExpireSuggestionsCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	expired, err := uow.SuggestionRepository().ExpireAllDue(ctx, h.clock())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
