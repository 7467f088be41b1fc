package round

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery round.
//
//	Ready ──> InProgress ──> Completed
//
// Ready rounds can still be reshaped (stops added, round released);
// once in progress only in-order deliveries are allowed; Completed is final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Ready is the initial status of a freshly claimed round.
	Ready

	// InProgress indicates the driver departed with the round.
	InProgress

	// Completed indicates every stop was delivered. Final state.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Ready:      "Ready",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Ready:      "Ready",
		InProgress: "InProgress",
		Completed:  "Completed",
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
// Implements fmt.Stringer; safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Start transitions the status to InProgress.
// Only valid from Ready; starting an already started or completed round
// is a precondition failure, not a silent no-op.
func (s Status) Start() (Status, error) {
	if s != Ready {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"round cannot be started",
			fmt.Errorf("%s is not a valid status to start from", s.String()),
		)
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
// Only valid from InProgress; reached when the last stop is delivered.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"round cannot be completed",
			fmt.Errorf("%s is not a valid status to complete from", s.String()),
		)
	}
	return Completed, nil
}
