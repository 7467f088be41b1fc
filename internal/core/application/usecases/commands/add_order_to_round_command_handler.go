package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// ErrNoReadyRound is returned when a driver without an unstarted round tries
// to append an order. The driver should claim the order fresh instead.
var ErrNoReadyRound = errors.New("driver has no round in ready status")

// AddOrderToRoundCommandHandler appends a stop to the driver's current ready
// round. Breaching the per-round cap is a capacity error; the caller decides
// whether to start a second round.
//
// Example:
//
//	handler := NewAddOrderToRoundCommandHandler(uowFactory, 3)
//	cmd, _ := NewAddOrderToRoundCommand(orderID, driverID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrCapacityExceeded) {
//	    // round is full; release or start it before claiming more
//	}
type AddOrderToRoundCommandHandler struct {
	uowFactory OrderRoundUoWFactory
	maxStops   int
}

// NewAddOrderToRoundCommandHandler creates a handler for appending orders to
// an existing round. maxStops is the configured cap on deliveries per round.
func NewAddOrderToRoundCommandHandler(uowFactory OrderRoundUoWFactory, maxStops int) AddOrderToRoundCommandHandler {
	return AddOrderToRoundCommandHandler{
		uowFactory: uowFactory,
		maxStops:   maxStops,
	}
}

// Handle processes the append command.
// Loads the driver's ready round, snapshots the order into the next stop
// position, and links the order with a conditional update.
func (h AddOrderToRoundCommandHandler) Handle(ctx context.Context, command AddOrderToRoundCommand) error {
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

	currentRound, err := roundRepo.GetReadyByDriver(ctx, command.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoReadyRound
	}
	if err != nil {
		return err
	}

	claimedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = services.NewRoundAssembler().AppendOrder(currentRound, claimedOrder, h.maxStops); err != nil {
		return err
	}

	if err = roundRepo.Update(ctx, currentRound); err != nil {
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
