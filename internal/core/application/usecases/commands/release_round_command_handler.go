package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// ReleaseRoundCommandHandler undoes a whole-round claim. This is the core's
// main compensating transaction: stops deleted, orders unlinked, the round
// removed, and the originating suggestion reverted to pending when it has not
// expired, all in one transaction, so a partial release cannot happen.
//
// Example:
//
//	handler := NewReleaseRoundCommandHandler(uowFactory, time.Now)
//	cmd, _ := NewReleaseRoundCommand(roundID, driverID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrPreconditionFailed) {
//	    // round already departed; it can only be driven to completion
//	}
type ReleaseRoundCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
}

// NewReleaseRoundCommandHandler creates a handler for whole-round releases.
func NewReleaseRoundCommandHandler(uowFactory UoWFactory, clock Clock) ReleaseRoundCommandHandler {
	return ReleaseRoundCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the round release.
// An expired originating suggestion is left expired; its orders fall back to
// individual eligibility instead of restoring the suggestion reference.
func (h ReleaseRoundCommandHandler) Handle(ctx context.Context, command ReleaseRoundCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	roundRepo := uow.RoundRepository()
	orderRepo := uow.OrderRepository()

	currentRound, err := roundRepo.Get(ctx, command.RoundID())
	if err != nil {
		return err
	}

	if err = ownedBy(currentRound, command.DriverID()); err != nil {
		return err
	}

	if err = currentRound.CanRelease(); err != nil {
		return err
	}

	restoredSuggestionID, err := h.reopenSuggestion(ctx, uow, currentRound.SuggestionID())
	if err != nil {
		return err
	}

	if err = orderRepo.UnlinkAllFromRound(ctx, currentRound.ID(), restoredSuggestionID); err != nil {
		return err
	}

	if err = roundRepo.Delete(ctx, currentRound.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// reopenSuggestion reverts the originating suggestion to pending when there
// is one and it has not expired. Returns the suggestion ID to restore on the
// released orders, or nil when they should fall back to individual
// eligibility.
func (h ReleaseRoundCommandHandler) reopenSuggestion(
	ctx context.Context,
	uow UoW,
	suggestionID *kernel.UUID,
) (*kernel.UUID, error) {
	if suggestionID == nil {
		return nil, nil
	}

	suggestionRepo := uow.SuggestionRepository()

	sug, err := suggestionRepo.Get(ctx, *suggestionID)
	if err != nil {
		return nil, err
	}

	if sug.IsExpired(h.clock()) {
		return nil, nil
	}

	if err = sug.RevertToPending(); err != nil {
		return nil, err
	}

	if err = suggestionRepo.RevertToPending(ctx, sug); err != nil {
		return nil, err
	}

	return suggestionID, nil
}
