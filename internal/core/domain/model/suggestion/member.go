package suggestion

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrMemberIsNotConstructed is returned when using an improperly initialized Member.
var ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember constructor")

// Member is one order's slot within a suggested round: which order, at which
// position in the proposed driving sequence, and when the planner estimates
// it will be delivered. Member is an immutable value object.
type Member struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	sequence         int
	estimatedArrival time.Time

	guard kernel.ConstructorGuard
}

// NewMember creates a member slot. Sequence positions are 1-based; the
// aggregate validates density across the whole member list.
func NewMember(orderID kernel.UUID, sequence int, estimatedArrival time.Time) (Member, error) {
	m := Member{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setOrderID(orderID),
		m.setSequence(sequence),
		m.setEstimatedArrival(estimatedArrival),
	); err != nil {
		return Member{}, err
	}

	return m, nil
}

// Validate ensures the Member was created via NewMember.
func (m Member) Validate() error {
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

// OrderID returns the referenced order's identifier.
func (m Member) OrderID() kernel.UUID {
	return m.orderID
}

// Sequence returns the 1-based position in the proposed driving order.
func (m Member) Sequence() int {
	return m.sequence
}

// EstimatedArrival returns the planner's delivery estimate for this order.
func (m Member) EstimatedArrival() time.Time {
	return m.estimatedArrival
}

func (m *Member) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	m.orderID = orderID
	return nil
}

func (m *Member) setSequence(sequence int) error {
	if sequence < 1 {
		return errs.NewValueIsOutOfRangeError("sequence", sequence, 1, "member count")
	}
	m.sequence = sequence
	return nil
}

func (m *Member) setEstimatedArrival(estimatedArrival time.Time) error {
	if estimatedArrival.IsZero() {
		return errs.NewValueIsRequiredError("estimatedArrival")
	}
	m.estimatedArrival = estimatedArrival
	return nil
}
