package services

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/round"
	"dispatch/internal/core/domain/model/suggestion"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderNotReady is returned when materializing a suggestion whose member
	// order has not reached kitchen readiness yet.
	ErrOrderNotReady = errors.New("order is not ready for delivery")

	// ErrMemberOrderMissing is returned when a suggestion references an order
	// that could not be loaded, typically because it was cancelled in between.
	ErrMemberOrderMissing = errors.New("suggestion references an order that no longer exists")
)

// RoundAssembler is a domain service that materializes delivery rounds.
// It converts a claimed order or a claimed suggestion into a Round with
// snapshot Stops and links every involved order to the new round.
//
// The assembler mutates the aggregates it is given; persisting them
// atomically is the caller's job.
type RoundAssembler struct{}

// NewRoundAssembler creates a new RoundAssembler instance.
func NewRoundAssembler() RoundAssembler {
	return RoundAssembler{}
}

// AssembleFromOrder builds a single-stop round for one claimed order.
// The order must be unassigned; a taken order is a conflict, the caller is
// expected to refresh its eligibility view rather than retry.
func (a RoundAssembler) AssembleFromOrder(
	roundID kernel.UUID,
	driverID kernel.UUID,
	claimed *order.Order,
	maxStops int,
) (*round.Round, error) {
	if err := claimed.Validate(); err != nil {
		return nil, err
	}
	if !claimed.IsUnassigned() {
		return nil, errs.NewResourceConflictErrorWithCause(
			"order", claimed.ID().String(), order.ErrOrderAlreadyAssigned)
	}

	newRound, err := round.NewRound(roundID, driverID, nil, nil)
	if err != nil {
		return nil, err
	}

	if err = a.appendOrderStop(newRound, claimed, nil, maxStops); err != nil {
		return nil, err
	}

	return newRound, nil
}

// AppendOrder adds one more stop for the order to an existing ready round.
// Capacity and status rules are enforced by the round itself.
func (a RoundAssembler) AppendOrder(existing *round.Round, claimed *order.Order, maxStops int) error {
	if err := existing.Validate(); err != nil {
		return err
	}
	if err := claimed.Validate(); err != nil {
		return err
	}
	if !claimed.IsUnassigned() {
		return errs.NewResourceConflictErrorWithCause(
			"order", claimed.ID().String(), order.ErrOrderAlreadyAssigned)
	}

	return a.appendOrderStop(existing, claimed, nil, maxStops)
}

// AssembleFromSuggestion claims the suggestion for the driver and builds the
// round it describes: one stop per member, in the suggestion's sequence order,
// with the planner's estimated arrivals. Every member order must be loaded
// and kitchen-ready.
func (a RoundAssembler) AssembleFromSuggestion(
	roundID kernel.UUID,
	driverID kernel.UUID,
	sug *suggestion.Suggestion,
	orders []*order.Order,
	now time.Time,
	maxStops int,
) (*round.Round, error) {
	if err := sug.Validate(); err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*order.Order, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		byID[o.ID()] = o
	}

	if err := sug.Claim(driverID, now); err != nil {
		return nil, err
	}

	suggestionID := sug.ID()
	departureAt := sug.DepartureAt()
	newRound, err := round.NewRound(roundID, driverID, &suggestionID, &departureAt)
	if err != nil {
		return nil, err
	}

	for _, member := range sug.Members() {
		claimed, ok := byID[member.OrderID()]
		if !ok {
			return nil, errs.NewObjectNotFoundErrorWithCause(
				"order", member.OrderID().String(), ErrMemberOrderMissing)
		}
		if !claimed.Status().IsReady() {
			return nil, errs.NewPreconditionFailedErrorWithCause(
				"suggested round cannot be claimed",
				fmt.Errorf("%w: order %s is %s", ErrOrderNotReady, claimed.Number(), claimed.Status()),
			)
		}
		if !claimed.IsUnassigned() {
			return nil, errs.NewResourceConflictErrorWithCause(
				"order", claimed.ID().String(), order.ErrOrderAlreadyAssigned)
		}

		eta := member.EstimatedArrival()
		if err = a.appendOrderStop(newRound, claimed, &eta, maxStops); err != nil {
			return nil, err
		}
	}

	return newRound, nil
}

// appendOrderStop snapshots the order into a stop at the next sequence
// position and links the order to the round.
func (a RoundAssembler) appendOrderStop(
	target *round.Round,
	claimed *order.Order,
	estimatedArrival *time.Time,
	maxStops int,
) error {
	timeWindowStart := claimed.ScheduledAt()
	stop, err := round.NewStop(
		kernel.NewUUID(),
		claimed.ID(),
		target.TotalStops()+1,
		claimed.Address(),
		claimed.Coordinates(),
		&timeWindowStart,
		estimatedArrival,
	)
	if err != nil {
		return err
	}

	if err = target.AddStop(stop, maxStops); err != nil {
		return err
	}

	return claimed.AssignToRound(target.ID())
}
