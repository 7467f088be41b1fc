package round

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrStopIsNotConstructed indicates that the Stop was not properly
	// initialized through the NewStop or RestoreStop constructor functions.
	ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop or RestoreStop constructor")

	// ErrStopAlreadyDelivered is returned when delivering a stop twice.
	ErrStopAlreadyDelivered = errors.New("stop is already delivered")
)

// StopStatus represents the delivery state of a single stop.
type StopStatus int

const (
	// StopUnknown represents an invalid or undefined stop status.
	StopUnknown StopStatus = iota

	// StopPending means the order is still on board.
	StopPending

	// StopDelivered means the order was handed over to the customer.
	StopDelivered
)

// Validate checks if the StopStatus value is valid.
func (s StopStatus) Validate() error {
	if s != StopPending && s != StopDelivered {
		return errs.NewValueIsInvalidErrorWithCause("stop status is invalid",
			fmt.Errorf("%d is not a valid stop status", s))
	}
	return nil
}

// String returns the human-readable name of the stop status.
func (s StopStatus) String() string {
	switch s {
	case StopPending:
		return "Pending"
	case StopDelivered:
		return "Delivered"
	default:
		return "Unknown"
	}
}

// Stop is one order's delivery step within a round. It snapshots the order's
// address and coordinates at claim time so the driver's view does not shift
// if the order record is edited mid-round.
//
// A stop carries its 1-based sequence position; the owning Round keeps the
// positions dense and unique.
type Stop struct {
	// id is the unique identifier for the stop
	id kernel.UUID

	// orderID references the delivered order; exactly one stop per order
	orderID kernel.UUID

	// sequence is the 1-based position within the round
	sequence int

	// address is the delivery address snapshot
	address string

	// coordinates is the geocoded position snapshot, nil when unavailable
	coordinates *kernel.GeoPoint

	// status tracks pending vs delivered
	status StopStatus

	// timeWindowStart is the opening of the customer's delivery window
	timeWindowStart *time.Time

	// estimatedArrival is the planner's arrival estimate, nil for manual claims
	estimatedArrival *time.Time

	// actualArrival is recorded when the stop is delivered
	actualArrival *time.Time

	// guard ensures the stop was properly initialized
	guard kernel.ConstructorGuard
}

// NewStop creates a pending Stop snapshotting the order's delivery details.
// Estimated arrival and the time window are optional: single-order claims
// have no planner estimate.
func NewStop(
	id kernel.UUID,
	orderID kernel.UUID,
	sequence int,
	address string,
	coordinates *kernel.GeoPoint,
	timeWindowStart *time.Time,
	estimatedArrival *time.Time,
) (*Stop, error) {
	stop := &Stop{
		status: StopPending,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		stop.setID(id),
		stop.setOrderID(orderID),
		stop.setSequence(sequence),
		stop.setAddress(address),
		stop.setCoordinates(coordinates),
	); err != nil {
		return nil, err
	}

	stop.timeWindowStart = timeWindowStart
	stop.estimatedArrival = estimatedArrival
	return stop, nil
}

// RestoreStop reconstructs a Stop from persistence including its delivery state.
func RestoreStop(
	id kernel.UUID,
	orderID kernel.UUID,
	sequence int,
	address string,
	coordinates *kernel.GeoPoint,
	status StopStatus,
	timeWindowStart *time.Time,
	estimatedArrival *time.Time,
	actualArrival *time.Time,
) (*Stop, error) {
	stop, err := NewStop(id, orderID, sequence, address, coordinates, timeWindowStart, estimatedArrival)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if status == StopDelivered && actualArrival == nil {
		return nil, errs.NewValueIsRequiredError("actualArrival for a delivered stop")
	}

	stop.status = status
	stop.actualArrival = actualArrival
	return stop, nil
}

// Validate ensures the Stop instance was properly constructed.
func (s *Stop) Validate() error {
	if s == nil {
		return ErrStopIsNotConstructed
	}
	return s.guard.Validate(ErrStopIsNotConstructed)
}

// IsEqual compares two stops by their unique identifiers.
func (s *Stop) IsEqual(other *Stop) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the stop's unique identifier.
func (s *Stop) ID() kernel.UUID {
	return s.id
}

// OrderID returns the referenced order's identifier.
func (s *Stop) OrderID() kernel.UUID {
	return s.orderID
}

// Sequence returns the 1-based position within the round.
func (s *Stop) Sequence() int {
	return s.sequence
}

// Address returns the delivery address snapshot.
func (s *Stop) Address() string {
	return s.address
}

// Coordinates returns the geocoded position snapshot, nil when unavailable.
func (s *Stop) Coordinates() *kernel.GeoPoint {
	return s.coordinates
}

// Status returns the delivery state of the stop.
func (s *Stop) Status() StopStatus {
	return s.status
}

// IsDelivered reports whether the stop was handed over.
func (s *Stop) IsDelivered() bool {
	return s.status == StopDelivered
}

// TimeWindowStart returns the opening of the customer's window, nil if unset.
func (s *Stop) TimeWindowStart() *time.Time {
	return s.timeWindowStart
}

// EstimatedArrival returns the planner's estimate, nil for manual claims.
func (s *Stop) EstimatedArrival() *time.Time {
	return s.estimatedArrival
}

// ActualArrival returns when the stop was delivered, nil while pending.
func (s *Stop) ActualArrival() *time.Time {
	return s.actualArrival
}

// markDelivered flips the stop to delivered and records the arrival time.
// Only the owning Round calls this, after checking sequence order.
func (s *Stop) markDelivered(now time.Time) error {
	if s.status == StopDelivered {
		return errs.NewPreconditionFailedErrorWithCause("stop cannot be delivered", ErrStopAlreadyDelivered)
	}

	s.status = StopDelivered
	s.actualArrival = &now
	return nil
}

func (s *Stop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stop) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

func (s *Stop) setSequence(sequence int) error {
	if sequence < 1 {
		return errs.NewValueIsOutOfRangeError("sequence", sequence, 1, "stop count")
	}
	s.sequence = sequence
	return nil
}

func (s *Stop) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	s.address = address
	return nil
}

func (s *Stop) setCoordinates(coordinates *kernel.GeoPoint) error {
	if coordinates != nil {
		if err := coordinates.Validate(); err != nil {
			return err
		}
	}
	s.coordinates = coordinates
	return nil
}
