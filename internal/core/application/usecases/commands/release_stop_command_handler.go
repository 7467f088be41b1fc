package commands

import (
	"context"
)

// ReleaseStopCommandHandler undoes a single-stop claim before departure.
// Deletes the stop's round, since releasing is only allowed while the round
// holds exactly one stop, and unlinks the order completely so it falls back
// to individual eligibility.
type ReleaseStopCommandHandler struct {
	uowFactory OrderRoundUoWFactory
}

// NewReleaseStopCommandHandler creates a handler for single-stop releases.
func NewReleaseStopCommandHandler(uowFactory OrderRoundUoWFactory) ReleaseStopCommandHandler {
	return ReleaseStopCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stop release.
// Releasing from an in-progress round or from a grouped round is rejected;
// grouped rounds go through the whole-round release.
func (h ReleaseStopCommandHandler) Handle(ctx context.Context, command ReleaseStopCommand) error {
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

	if err = currentRound.CanReleaseStop(); err != nil {
		return err
	}

	stop, err := currentRound.StopByID(command.StopID())
	if err != nil {
		return err
	}

	releasedOrder, err := orderRepo.Get(ctx, stop.OrderID())
	if err != nil {
		return err
	}

	// Both linkage fields go back to null. The originating suggestion, if
	// any, is not restored on a single-stop release.
	if err = releasedOrder.Release(nil); err != nil {
		return err
	}

	if err = orderRepo.Unlink(ctx, releasedOrder); err != nil {
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
