package commands

import (
	"context"
)

// MarkStopDeliveredCommandHandler delivers one stop of an in-progress round.
// Stops must be completed in sequence order; delivering the last stop
// completes the round.
type MarkStopDeliveredCommandHandler struct {
	uowFactory RoundUoWFactory
	clock      Clock
}

// NewMarkStopDeliveredCommandHandler creates a handler for stop deliveries.
func NewMarkStopDeliveredCommandHandler(uowFactory RoundUoWFactory, clock Clock) MarkStopDeliveredCommandHandler {
	return MarkStopDeliveredCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the delivery command.
// Out-of-order completion is rejected with a precondition failure, never
// reordered.
func (h MarkStopDeliveredCommandHandler) Handle(ctx context.Context, command MarkStopDeliveredCommand) error {
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

	currentRound, err := roundRepo.Get(ctx, command.RoundID())
	if err != nil {
		return err
	}

	if err = ownedBy(currentRound, command.DriverID()); err != nil {
		return err
	}

	if err = currentRound.MarkStopDelivered(command.StopID(), h.clock()); err != nil {
		return err
	}

	if err = roundRepo.Update(ctx, currentRound); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
