package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// ErrDriverHasReadyRound is returned when a driver with an unstarted round
// attempts a fresh claim. The driver must add to the existing round, start it,
// or release it first.
var ErrDriverHasReadyRound = errors.New("driver already holds a round in ready status")

// ClaimOrderCommandHandler handles the fresh single-order claim.
// Creates a one-stop delivery round for the driver and links the order to it
// with a conditional update, so exactly one of two racing drivers wins.
//
// Example:
//
//	handler := NewClaimOrderCommandHandler(uowFactory, 3)
//	cmd, _ := NewClaimOrderCommand(orderID, driverID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrResourceConflict):
//	    // another driver won; refresh the eligibility list
//	case errors.Is(err, ErrDriverHasReadyRound):
//	    // driver must finish or release the current round first
//	}
type ClaimOrderCommandHandler struct {
	uowFactory OrderRoundUoWFactory
	maxStops   int
}

// NewClaimOrderCommandHandler creates a handler for single-order claims.
// maxStops is the configured cap on deliveries per round.
func NewClaimOrderCommandHandler(uowFactory OrderRoundUoWFactory, maxStops int) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		maxStops:   maxStops,
	}
}

// Handle processes the claim command.
// A fresh claim is only allowed while the driver has no other unstarted round;
// the order linkage write is conditional, losers of a race get a conflict.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, command ClaimOrderCommand) error {
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

	_, err := roundRepo.GetReadyByDriver(ctx, command.DriverID())
	if err == nil {
		return ErrDriverHasReadyRound
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	claimedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	newRound, err := services.NewRoundAssembler().AssembleFromOrder(
		kernel.NewUUID(), command.DriverID(), claimedOrder, h.maxStops)
	if err != nil {
		return err
	}

	if err = roundRepo.Add(ctx, newRound); err != nil {
		return err
	}

	if err = orderRepo.LinkToRound(ctx, claimedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
