package suggestion

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrSuggestionIsNotConstructed is returned when a Suggestion was not created
	// through the RestoreSuggestion factory function.
	ErrSuggestionIsNotConstructed = errors.New("Suggestion must be created via RestoreSuggestion constructor")

	// ErrSuggestionExpired is returned when operating on a suggestion whose
	// expiry timestamp has passed or whose status is already Expired.
	ErrSuggestionExpired = errors.New("suggestion is expired")

	// ErrSuggestionAlreadyClaimed is returned when a driver tries to claim a
	// suggestion that another driver holds.
	ErrSuggestionAlreadyClaimed = errors.New("suggestion is already claimed by a driver")
)

// Suggestion is the typed view of a planner-proposed round grouping.
// It is an aggregate read from the planner's storage; this core transitions
// it (claim, revert, expire) but never creates one.
//
// Invariants enforced on ingestion:
//   - At least one member; member sequences form a dense 1..N range
//   - No order appears twice in the member list
//   - Departure, preparation, and expiry timestamps are present
//   - A claimed suggestion carries both the driver and the claim timestamp
type Suggestion struct {
	// id is the planner-assigned identifier
	id kernel.UUID

	// status is the planner-side lifecycle state
	status Status

	// preparationAt is when the kitchen should have the member orders packed
	preparationAt time.Time

	// departureAt is the planned departure time for the grouping
	departureAt time.Time

	// expiresAt is when the grouping stops being offerable
	expiresAt time.Time

	// driverID is the claiming driver, nil while unclaimed
	driverID *kernel.UUID

	// claimedAt records when the claim happened, nil while unclaimed
	claimedAt *time.Time

	// members is the proposed stop list in sequence order
	members []Member

	// isConstructed ensures the suggestion was created via the constructor
	isConstructed bool
}

// RestoreSuggestion reconstructs a Suggestion from the planner's storage,
// validating the whole payload once so downstream code can trust it.
// Members may arrive in any order; they are sorted by sequence here.
func RestoreSuggestion(
	id kernel.UUID,
	status Status,
	preparationAt time.Time,
	departureAt time.Time,
	expiresAt time.Time,
	driverID *kernel.UUID,
	claimedAt *time.Time,
	members []Member,
) (*Suggestion, error) {
	s := &Suggestion{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setStatus(status),
		s.setTimes(preparationAt, departureAt, expiresAt),
		s.setClaim(driverID, claimedAt),
		s.setMembers(members),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Suggestion instance was properly constructed.
func (s *Suggestion) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSuggestionIsNotConstructed
	}
	return nil
}

// ID returns the planner-assigned identifier.
func (s *Suggestion) ID() kernel.UUID {
	return s.id
}

// Status returns the planner-side lifecycle state.
func (s *Suggestion) Status() Status {
	return s.status
}

// PreparationAt returns the planned kitchen preparation time.
func (s *Suggestion) PreparationAt() time.Time {
	return s.preparationAt
}

// DepartureAt returns the planned departure time.
func (s *Suggestion) DepartureAt() time.Time {
	return s.departureAt
}

// ExpiresAt returns the expiry timestamp.
func (s *Suggestion) ExpiresAt() time.Time {
	return s.expiresAt
}

// DriverID returns the claiming driver, nil while unclaimed.
func (s *Suggestion) DriverID() *kernel.UUID {
	return s.driverID
}

// ClaimedAt returns when the claim happened, nil while unclaimed.
func (s *Suggestion) ClaimedAt() *time.Time {
	return s.claimedAt
}

// Members returns the proposed stop list in sequence order.
func (s *Suggestion) Members() []Member {
	return s.members
}

// OrderIDs returns the member order identifiers in sequence order.
func (s *Suggestion) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(s.members))
	for _, m := range s.members {
		ids = append(ids, m.OrderID())
	}
	return ids
}

// IsExpired reports whether the suggestion is past its window, either by
// status or by timestamp.
func (s *Suggestion) IsExpired(now time.Time) bool {
	return s.status == Expired || !s.expiresAt.After(now)
}

// IsClaimed reports whether a driver currently holds the suggestion.
func (s *Suggestion) IsClaimed() bool {
	return s.driverID != nil
}

// CanBeClaimed reports whether a claim attempt would be valid right now:
// status Accepted, not expired, no driver holding it. Member readiness is a
// separate check; it lives in the order store, not here.
func (s *Suggestion) CanBeClaimed(now time.Time) error {
	if s.IsExpired(now) {
		return errs.NewPreconditionFailedErrorWithCause("suggestion cannot be claimed", ErrSuggestionExpired)
	}
	if s.status != Accepted {
		return errs.NewPreconditionFailedErrorWithCause(
			"suggestion cannot be claimed",
			fmt.Errorf("status is %s, awaiting validation", s.status),
		)
	}
	if s.IsClaimed() {
		return errs.NewResourceConflictErrorWithCause("suggested round", s.id.String(), ErrSuggestionAlreadyClaimed)
	}
	return nil
}

// Claim marks the suggestion as held by the driver. The persistence layer
// performs the same transition as a conditional update; this method keeps the
// in-memory aggregate consistent with it.
func (s *Suggestion) Claim(driverID kernel.UUID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if err := s.CanBeClaimed(now); err != nil {
		return err
	}

	s.driverID = &driverID
	s.claimedAt = &now
	return nil
}

// RevertToPending reopens the suggestion after a claimed round was released:
// status back to Pending, driver and claim timestamp cleared. Expired
// suggestions are never revived.
func (s *Suggestion) RevertToPending() error {
	newStatus, err := s.status.RevertToPending()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.driverID = nil
	s.claimedAt = nil
	return nil
}

// Expire marks the suggestion as past its window.
func (s *Suggestion) Expire() error {
	newStatus, err := s.status.Expire()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

func (s *Suggestion) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Suggestion) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Suggestion) setTimes(preparationAt, departureAt, expiresAt time.Time) error {
	if preparationAt.IsZero() {
		return errs.NewValueIsRequiredError("preparationAt")
	}
	if departureAt.IsZero() {
		return errs.NewValueIsRequiredError("departureAt")
	}
	if expiresAt.IsZero() {
		return errs.NewValueIsRequiredError("expiresAt")
	}

	s.preparationAt = preparationAt
	s.departureAt = departureAt
	s.expiresAt = expiresAt
	return nil
}

func (s *Suggestion) setClaim(driverID *kernel.UUID, claimedAt *time.Time) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}
	if (driverID == nil) != (claimedAt == nil) {
		return errs.NewValueIsInvalidError("claim fields must be set or cleared together")
	}

	s.driverID = driverID
	s.claimedAt = claimedAt
	return nil
}

func (s *Suggestion) setMembers(members []Member) error {
	if len(members) == 0 {
		return errs.NewValueIsRequiredError("members")
	}

	seen := make(map[kernel.UUID]struct{}, len(members))
	bySequence := make([]Member, len(members))
	for _, m := range members {
		if err := m.Validate(); err != nil {
			return err
		}
		if m.Sequence() < 1 || m.Sequence() > len(members) {
			return errs.NewValueIsOutOfRangeError("member sequence", m.Sequence(), 1, len(members))
		}
		idx := m.Sequence() - 1
		if bySequence[idx].Validate() == nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"member sequence",
				fmt.Errorf("position %d appears twice", m.Sequence()),
			)
		}
		if _, dup := seen[m.OrderID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"members",
				fmt.Errorf("order %s appears twice", m.OrderID()),
			)
		}
		seen[m.OrderID()] = struct{}{}
		bySequence[idx] = m
	}

	s.members = bySequence
	return nil
}
