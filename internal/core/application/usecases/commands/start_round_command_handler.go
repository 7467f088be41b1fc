package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/round"
)

// ErrRoundOwnedByAnotherDriver is returned when a driver acts on a round
// that belongs to someone else.
var ErrRoundOwnedByAnotherDriver = errors.New("round belongs to another driver")

// StartRoundCommandHandler transitions a ready round to in progress and
// records the actual departure timestamp.
type StartRoundCommandHandler struct {
	uowFactory RoundUoWFactory
	clock      Clock
}

// NewStartRoundCommandHandler creates a handler for starting rounds.
func NewStartRoundCommandHandler(uowFactory RoundUoWFactory, clock Clock) StartRoundCommandHandler {
	return StartRoundCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the start command.
// Starting an already started or completed round is a precondition failure.
func (h StartRoundCommandHandler) Handle(ctx context.Context, command StartRoundCommand) error {
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

	if err = currentRound.Start(h.clock()); err != nil {
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

// ownedBy checks that the acting driver owns the round.
func ownedBy(r *round.Round, driverID kernel.UUID) error {
	if !r.DriverID().IsEqual(driverID) {
		return ErrRoundOwnedByAnotherDriver
	}
	return nil
}
