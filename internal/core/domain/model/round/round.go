package round

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrRoundIsNotConstructed is returned when a Round instance was not created
	// through the NewRound or RestoreRound factory functions.
	ErrRoundIsNotConstructed = errors.New("Round must be created via NewRound or RestoreRound constructor")

	// ErrStopNotFound is returned when a referenced stop is not part of the round.
	ErrStopNotFound = errors.New("stop not found in round")

	// ErrRoundIsGrouped is returned when releasing a single stop from a round
	// holding more than one. Grouped rounds are released as a whole so a
	// planner-approved grouping is never re-optimized one stop at a time.
	ErrRoundIsGrouped = errors.New("round holds multiple stops and must be released as a whole")
)

// Round represents a driver-owned delivery round: a committed, ordered
// sequence of stops created by claiming a single order or a planner
// suggestion. It is the aggregate root for its Stops.
//
// Round follows these invariants:
//   - Stop sequences form a dense 1..N range, one stop per order
//   - The stop count never exceeds the configured cap passed to AddStop
//   - Status moves Ready -> InProgress -> Completed, never backwards
//   - Stops are delivered strictly in sequence order
//   - A started round records its actual departure; a delivered stop its arrival
type Round struct {
	// id is the unique identifier for the round
	id kernel.UUID

	// driverID owns the round; set at claim time, never reassigned
	driverID kernel.UUID

	// suggestionID references the originating planner suggestion, nil for
	// rounds built by hand from individual orders
	suggestionID *kernel.UUID

	// status is the current lifecycle state
	status Status

	// plannedDeparture is copied from the suggestion, nil for manual rounds
	plannedDeparture *time.Time

	// actualDeparture is recorded by Start
	actualDeparture *time.Time

	// stops is the ordered stop list; len(stops) is the live stop count
	stops []*Stop

	// isConstructed ensures the round was created via a constructor
	isConstructed bool
}

// NewRound creates an empty Ready round owned by the driver. Stops are added
// through AddStop so the cap and sequencing rules apply from the start.
// suggestionID and plannedDeparture are nil for rounds claimed order by order.
func NewRound(
	id kernel.UUID,
	driverID kernel.UUID,
	suggestionID *kernel.UUID,
	plannedDeparture *time.Time,
) (*Round, error) {
	r := &Round{
		status:        Ready,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setDriverID(driverID),
		r.setSuggestionID(suggestionID),
	); err != nil {
		return nil, err
	}

	r.plannedDeparture = plannedDeparture
	return r, nil
}

// RestoreRound reconstructs a Round and its stops from persistence.
// Stops may arrive in any order; they are sorted and checked for density here.
func RestoreRound(
	id kernel.UUID,
	driverID kernel.UUID,
	suggestionID *kernel.UUID,
	status Status,
	plannedDeparture *time.Time,
	actualDeparture *time.Time,
	stops []*Stop,
) (*Round, error) {
	r := &Round{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setDriverID(driverID),
		r.setSuggestionID(suggestionID),
		r.setStatus(status),
		r.setStops(stops),
	); err != nil {
		return nil, err
	}

	r.plannedDeparture = plannedDeparture
	r.actualDeparture = actualDeparture
	return r, nil
}

// Validate ensures the Round instance was properly constructed.
func (r *Round) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRoundIsNotConstructed
	}
	return nil
}

// IsEqual compares two rounds by their unique identifiers.
func (r *Round) IsEqual(other *Round) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the round's unique identifier.
func (r *Round) ID() kernel.UUID {
	return r.id
}

// DriverID returns the owning driver's identifier.
func (r *Round) DriverID() kernel.UUID {
	return r.driverID
}

// SuggestionID returns the originating suggestion, nil for manual rounds.
func (r *Round) SuggestionID() *kernel.UUID {
	return r.suggestionID
}

// Status returns the current lifecycle state.
func (r *Round) Status() Status {
	return r.status
}

// PlannedDeparture returns the planned departure time, nil for manual rounds.
func (r *Round) PlannedDeparture() *time.Time {
	return r.plannedDeparture
}

// ActualDeparture returns when the round was started, nil while Ready.
func (r *Round) ActualDeparture() *time.Time {
	return r.actualDeparture
}

// Stops returns the stop list in sequence order.
func (r *Round) Stops() []*Stop {
	return r.stops
}

// TotalStops returns the live stop count. The persisted total_stops column
// is derived from this value, keeping the two in lockstep.
func (r *Round) TotalStops() int {
	return len(r.stops)
}

// IsGrouped reports whether the round holds more than one stop.
func (r *Round) IsGrouped() bool {
	return len(r.stops) > 1
}

// NextStop returns the first pending stop in sequence order, nil when every
// stop is delivered.
func (r *Round) NextStop() *Stop {
	for _, stop := range r.stops {
		if !stop.IsDelivered() {
			return stop
		}
	}
	return nil
}

// StopByID returns the stop with the given identifier.
func (r *Round) StopByID(stopID kernel.UUID) (*Stop, error) {
	for _, stop := range r.stops {
		if stop.ID().IsEqual(stopID) {
			return stop, nil
		}
	}
	return nil, errs.NewObjectNotFoundErrorWithCause("stop", stopID.String(), ErrStopNotFound)
}

// AddStop appends a stop to a Ready round. The stop's sequence must be the
// next position (TotalStops+1) and the result must stay within maxStops;
// breaching the cap is a capacity error and leaves the round untouched.
func (r *Round) AddStop(stop *Stop, maxStops int) error {
	if err := stop.Validate(); err != nil {
		return err
	}
	if r.status != Ready {
		return errs.NewPreconditionFailedErrorWithCause(
			"stops can only be added to a ready round",
			fmt.Errorf("round status is %s", r.status),
		)
	}
	if len(r.stops)+1 > maxStops {
		return errs.NewCapacityExceededError("stops per round", maxStops)
	}
	if stop.Sequence() != len(r.stops)+1 {
		return errs.NewValueIsOutOfRangeError("stop sequence", stop.Sequence(), len(r.stops)+1, len(r.stops)+1)
	}
	for _, existing := range r.stops {
		if existing.OrderID().IsEqual(stop.OrderID()) {
			return errs.NewResourceConflictError("order", stop.OrderID().String())
		}
	}

	r.stops = append(r.stops, stop)
	return nil
}

// Start moves the round to InProgress and records the actual departure.
// Starting a round twice is a precondition failure.
func (r *Round) Start(now time.Time) error {
	newStatus, err := r.status.Start()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.actualDeparture = &now
	return nil
}

// MarkStopDelivered delivers the identified stop. The round must be
// InProgress and the stop must be the first pending one in sequence order;
// out-of-order completion is rejected, never reordered. Delivering the last
// stop completes the round.
func (r *Round) MarkStopDelivered(stopID kernel.UUID, now time.Time) error {
	if r.status != InProgress {
		return errs.NewPreconditionFailedErrorWithCause(
			"stop cannot be delivered",
			fmt.Errorf("round status is %s, not %s", r.status, InProgress),
		)
	}

	stop, err := r.StopByID(stopID)
	if err != nil {
		return err
	}

	next := r.NextStop()
	if next == nil || !next.IsEqual(stop) {
		return errs.NewPreconditionFailedErrorWithCause(
			"stops must be delivered in sequence order",
			fmt.Errorf("stop %d is not the next pending stop", stop.Sequence()),
		)
	}

	if err = stop.markDelivered(now); err != nil {
		return err
	}

	if r.NextStop() == nil {
		completed, completeErr := r.status.Complete()
		if completeErr != nil {
			return completeErr
		}
		r.status = completed
	}

	return nil
}

// CanReleaseStop checks whether a single-stop release is allowed: the round
// must still be Ready and must hold exactly one stop. Grouped rounds are
// released as a whole through the round-level release.
func (r *Round) CanReleaseStop() error {
	if r.status != Ready {
		return errs.NewPreconditionFailedErrorWithCause(
			"stop cannot be released",
			fmt.Errorf("round status is %s", r.status),
		)
	}
	if r.IsGrouped() {
		return errs.NewPreconditionFailedErrorWithCause("stop cannot be released", ErrRoundIsGrouped)
	}
	return nil
}

// CanRelease checks whether the whole round may be released: only Ready
// rounds can be; an in-progress round has left the building.
func (r *Round) CanRelease() error {
	if r.status != Ready {
		return errs.NewPreconditionFailedErrorWithCause(
			"round cannot be released",
			fmt.Errorf("round status is %s", r.status),
		)
	}
	return nil
}

func (r *Round) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Round) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	r.driverID = driverID
	return nil
}

func (r *Round) setSuggestionID(suggestionID *kernel.UUID) error {
	if suggestionID != nil {
		if err := suggestionID.Validate(); err != nil {
			return err
		}
	}
	r.suggestionID = suggestionID
	return nil
}

func (r *Round) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Round) setStops(stops []*Stop) error {
	ordered := make([]*Stop, len(stops))
	seenOrders := make(map[kernel.UUID]struct{}, len(stops))

	for _, stop := range stops {
		if err := stop.Validate(); err != nil {
			return err
		}
		if stop.Sequence() < 1 || stop.Sequence() > len(stops) {
			return errs.NewValueIsOutOfRangeError("stop sequence", stop.Sequence(), 1, len(stops))
		}
		idx := stop.Sequence() - 1
		if ordered[idx] != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"stop sequence",
				fmt.Errorf("position %d appears twice", stop.Sequence()),
			)
		}
		if _, dup := seenOrders[stop.OrderID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"stops",
				fmt.Errorf("order %s appears twice", stop.OrderID()),
			)
		}
		seenOrders[stop.OrderID()] = struct{}{}
		ordered[idx] = stop
	}

	r.stops = ordered
	return nil
}
