package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// ClaimSuggestedRoundCommandHandler converts an accepted suggestion into a
// delivery round. The suggestion-side claim is the single point of mutual
// exclusion: it is persisted as a conditional update, and every later step
// runs in the same transaction, so a failed materialization rolls the claim
// back instead of stranding the suggestion.
//
// Example:
//
//	handler := NewClaimSuggestedRoundCommandHandler(uowFactory, 3, time.Now)
//	cmd, _ := NewClaimSuggestedRoundCommand(suggestionID, driverID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrResourceConflict):
//	    // another driver claimed it first; refresh the list
//	case errors.Is(err, errs.ErrPreconditionFailed):
//	    // not accepted yet, expired, or a member order is not ready
//	}
type ClaimSuggestedRoundCommandHandler struct {
	uowFactory UoWFactory
	maxStops   int
	clock      Clock
}

// NewClaimSuggestedRoundCommandHandler creates a handler for suggested round
// claims. maxStops is the configured cap on deliveries per round.
func NewClaimSuggestedRoundCommandHandler(
	uowFactory UoWFactory,
	maxStops int,
	clock Clock,
) ClaimSuggestedRoundCommandHandler {
	return ClaimSuggestedRoundCommandHandler{
		uowFactory: uowFactory,
		maxStops:   maxStops,
		clock:      clock,
	}
}

// Handle processes the suggested round claim.
// Loads the suggestion and its member orders, materializes the round with one
// stop per member in the suggestion's sequence order, and links every order.
// All writes share one transaction; any failure aborts with no partial effect.
func (h ClaimSuggestedRoundCommandHandler) Handle(ctx context.Context, command ClaimSuggestedRoundCommand) error {
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

	suggestionRepo := uow.SuggestionRepository()
	roundRepo := uow.RoundRepository()
	orderRepo := uow.OrderRepository()

	_, err := roundRepo.GetReadyByDriver(ctx, command.DriverID())
	if err == nil {
		return ErrDriverHasReadyRound
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	sug, err := suggestionRepo.Get(ctx, command.SuggestionID())
	if err != nil {
		return err
	}

	memberOrders, err := orderRepo.GetAllByIDs(ctx, sug.OrderIDs())
	if err != nil {
		return err
	}

	newRound, err := services.NewRoundAssembler().AssembleFromSuggestion(
		kernel.NewUUID(), command.DriverID(), sug, memberOrders, h.clock(), h.maxStops)
	if err != nil {
		return err
	}

	if err = suggestionRepo.Claim(ctx, sug); err != nil {
		return err
	}

	if err = roundRepo.Add(ctx, newRound); err != nil {
		return err
	}

	for _, memberOrder := range memberOrders {
		if err = orderRepo.LinkToRound(ctx, memberOrder); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
