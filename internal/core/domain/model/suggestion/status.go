package suggestion

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the planner-side lifecycle of a suggested round.
//
//	Pending ──> Accepted ──> (claimed by a driver)
//	    │           │  ▲
//	    │           │  └── revert-to-pending on round release
//	    └────┬──────┘
//	         ▼
//	      Expired (terminal, never claimable or revertible-to)
//
// Pending means proposed but not yet validated by the shop; Accepted means
// validated and offerable to drivers. Expiry applies to both non-terminal
// states once the planner's expiry timestamp passes.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is a proposed grouping awaiting validation.
	Pending

	// Accepted is a validated grouping that drivers may claim.
	Accepted

	// Expired is the terminal state for groupings whose window passed.
	Expired
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Accepted: "Accepted",
		Expired:  "Expired",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Accepted: "Accepted",
		Expired:  "Expired",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Expire transitions the status to Expired.
// Valid from Pending and Accepted; Expired is idempotent-terminal and
// re-expiring it is rejected so callers notice double bookkeeping.
func (s Status) Expire() (Status, error) {
	if s != Pending && s != Accepted {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"suggestion cannot expire",
			fmt.Errorf("%s is not a valid status to expire from", s.String()),
		)
	}
	return Expired, nil
}

// RevertToPending transitions the status back to Pending after a claimed
// round was released. Expired suggestions must never be revived.
func (s Status) RevertToPending() (Status, error) {
	if s == Expired {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"suggestion cannot be reverted",
			fmt.Errorf("%s is a terminal status", s.String()),
		)
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Pending, nil
}
