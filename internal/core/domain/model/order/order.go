package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderAlreadyAssigned is returned when linking an order that already
	// belongs to a delivery round.
	ErrOrderAlreadyAssigned = errors.New("order is already assigned to a delivery round")

	// ErrNumberIsRequired is returned when attempting to create an order without
	// a display number.
	ErrNumberIsRequired = errs.NewValueIsRequiredError("number")

	// ErrAddressIsRequired is returned when attempting to create an order without
	// a delivery address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")

	// ErrScheduledAtIsRequired is returned when attempting to create an order
	// without a scheduled delivery time.
	ErrScheduledAtIsRequired = errs.NewValueIsRequiredError("scheduledAt")
)

// Order represents a delivery order as seen by the dispatch core.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, display number and address
//   - At most one non-nil delivery round reference at any time
//   - May reference a suggested round only while not claimed into a round
//   - Readiness status follows the kitchen lifecycle and is read-only here
//
// The struct uses private fields to ensure encapsulation; linkage mutations
// go through AssignToRound and Release.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the short display number shown to the customer and driver
	number string

	// address is the delivery street address
	address string

	// coordinates is the geocoded position, nil when geocoding never succeeded
	coordinates *kernel.GeoPoint

	// scheduledAt is the promised delivery time
	scheduledAt time.Time

	// status is the kitchen readiness state (read-only in this core)
	status Status

	// deliveryRoundID links the order to its claimed round (nil if unclaimed)
	deliveryRoundID *kernel.UUID

	// suggestedRoundID links the order to a planner suggestion (nil if none)
	suggestedRoundID *kernel.UUID

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new unassigned Order in Pending readiness.
// Coordinates may be nil when the address was never geocoded.
func NewOrder(
	id kernel.UUID,
	number string,
	address string,
	coordinates *kernel.GeoPoint,
	scheduledAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setAddress(address),
		o.setCoordinates(coordinates),
		o.setScheduledAt(scheduledAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its readiness
// status and linkage fields. It enforces the linkage invariant: an order
// claimed into a round must not still reference a suggestion.
func RestoreOrder(
	id kernel.UUID,
	number string,
	address string,
	coordinates *kernel.GeoPoint,
	scheduledAt time.Time,
	status Status,
	deliveryRoundID *kernel.UUID,
	suggestedRoundID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setAddress(address),
		o.setCoordinates(coordinates),
		o.setScheduledAt(scheduledAt),
		o.setStatus(status),
		o.setLinkage(deliveryRoundID, suggestedRoundID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the short display number.
func (o *Order) Number() string {
	return o.number
}

// Address returns the delivery street address.
func (o *Order) Address() string {
	return o.address
}

// Coordinates returns the geocoded position, nil when unavailable.
func (o *Order) Coordinates() *kernel.GeoPoint {
	return o.coordinates
}

// ScheduledAt returns the promised delivery time.
func (o *Order) ScheduledAt() time.Time {
	return o.scheduledAt
}

// Status returns the kitchen readiness status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryRoundID returns the claimed round reference, nil if unclaimed.
func (o *Order) DeliveryRoundID() *kernel.UUID {
	return o.deliveryRoundID
}

// SuggestedRoundID returns the planner suggestion reference, nil if none.
func (o *Order) SuggestedRoundID() *kernel.UUID {
	return o.suggestedRoundID
}

// IsUnassigned reports whether the order belongs to no delivery round.
func (o *Order) IsUnassigned() bool {
	return o.deliveryRoundID == nil
}

// AssignToRound links the order to a delivery round and drops its suggestion
// reference, keeping the one-link-at-a-time invariant.
//
// Returns ErrOrderAlreadyAssigned when the order is already claimed. Note that
// the persistence layer performs the same check as a conditional update; this
// in-memory guard only shortcuts the obvious cases before a transaction runs.
func (o *Order) AssignToRound(roundID kernel.UUID) error {
	if err := roundID.Validate(); err != nil {
		return err
	}
	if o.deliveryRoundID != nil {
		return ErrOrderAlreadyAssigned
	}

	o.deliveryRoundID = &roundID
	o.suggestedRoundID = nil
	return nil
}

// Release clears the round linkage, returning the order to the unassigned
// pool. When the originating suggestion was reopened, suggestedRoundID
// restores the membership so the planner can offer the grouping again; pass
// nil when the suggestion expired or the order was claimed individually.
func (o *Order) Release(suggestedRoundID *kernel.UUID) error {
	if suggestedRoundID != nil {
		if err := suggestedRoundID.Validate(); err != nil {
			return err
		}
	}

	o.deliveryRoundID = nil
	o.suggestedRoundID = suggestedRoundID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return ErrNumberIsRequired
	}
	o.number = number
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setCoordinates(coordinates *kernel.GeoPoint) error {
	if coordinates != nil {
		if err := coordinates.Validate(); err != nil {
			return err
		}
	}
	o.coordinates = coordinates
	return nil
}

func (o *Order) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return ErrScheduledAtIsRequired
	}
	o.scheduledAt = scheduledAt
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLinkage(deliveryRoundID *kernel.UUID, suggestedRoundID *kernel.UUID) error {
	if deliveryRoundID != nil {
		if err := deliveryRoundID.Validate(); err != nil {
			return err
		}
	}
	if suggestedRoundID != nil {
		if err := suggestedRoundID.Validate(); err != nil {
			return err
		}
	}
	if deliveryRoundID != nil && suggestedRoundID != nil {
		return errs.NewValueIsInvalidError("claimed order cannot keep a suggestion reference")
	}

	o.deliveryRoundID = deliveryRoundID
	o.suggestedRoundID = suggestedRoundID
	return nil
}
