package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the kitchen readiness state of an order. The transitions
// happen in the order/kitchen core; dispatch only reads the value, mostly to
// decide whether a suggested round is takeable.
//
//	Pending ──> Preparing ──> Ready ──> Completed
//	    └──────────┴────> Cancelled
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a paid order awaiting the kitchen.
	Pending

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is packed and waiting for a driver.
	// Only Ready orders make a suggested round takeable.
	Ready

	// Completed indicates the order left the building and was delivered.
	Completed

	// Cancelled indicates the order was cancelled before delivery.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Preparing: "Preparing",
		Ready:     "Ready",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Preparing: "Preparing",
		Ready:     "Ready",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is one of the known readiness states.
// Used when reconstructing orders from persistence or external payloads.
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

// IsReady reports whether the order has reached kitchen readiness.
func (s Status) IsReady() bool {
	return s == Ready
}

// IsTerminal reports whether the order left the delivery pipeline,
// either delivered or cancelled.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}
