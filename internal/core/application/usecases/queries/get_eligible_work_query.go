// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// Clock supplies the current time to query handlers that filter by it.
type Clock func() time.Time

// Disabled reasons shown alongside a suggested round that cannot be taken yet.
const (
	// ReasonAwaitingValidation marks a suggestion the shop has not accepted.
	ReasonAwaitingValidation = "awaiting validation"

	// ReasonInPreparation marks an accepted suggestion whose member orders
	// have not all reached kitchen readiness.
	ReasonInPreparation = "in preparation"
)

var ErrGetEligibleWorkQueryIsNotConstructed = errors.New(
	"GetEligibleWorkQuery must be created via NewGetEligibleWorkQuery constructor",
)

// GetEligibleWorkQuery retrieves the claimable work for a driver: unassigned
// orders inside the look-ahead window plus live suggested rounds. The result
// is the same for every driver; the driver identity travels with the query
// for auditing at the transport layer.
//
// Example:
//
//	query, err := NewGetEligibleWorkQuery(driverID)
//	if err != nil {
//	    return err
//	}
//
//	work, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load eligible work: %w", err)
//	}
//
//	fmt.Printf("%d orders, %d suggested rounds\n",
//	    len(work.Orders), len(work.Suggestions))
type GetEligibleWorkQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetEligibleWorkQuery creates a query for the given driver.
func NewGetEligibleWorkQuery(driverID kernel.UUID) (GetEligibleWorkQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetEligibleWorkQuery{}, err
	}

	return GetEligibleWorkQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// DriverID returns the requesting driver's identifier.
func (q GetEligibleWorkQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetEligibleWorkQueryIsNotConstructed if validation fails.
func (q GetEligibleWorkQuery) Validate() error {
	return q.guard.Validate(ErrGetEligibleWorkQueryIsNotConstructed)
}

// EligibleOrderResponse is one individually claimable order in the read model.
type EligibleOrderResponse struct {
	ID          kernel.UUID
	Number      string
	Address     string
	Coordinates *kernel.GeoPoint
	ScheduledAt time.Time
	Status      string
}

// EligibleSuggestionMemberResponse is one order slot inside a suggested round.
type EligibleSuggestionMemberResponse struct {
	OrderID          kernel.UUID
	Number           string
	Address          string
	Sequence         int
	EstimatedArrival time.Time
	OrderStatus      string
}

// EligibleSuggestionResponse is one offerable suggested round. Takeable is
// true only when the suggestion is accepted and every member order is ready;
// otherwise DisabledReason explains why the grouping cannot be claimed yet.
type EligibleSuggestionResponse struct {
	ID             kernel.UUID
	Status         string
	PreparationAt  time.Time
	DepartureAt    time.Time
	ExpiresAt      time.Time
	Takeable       bool
	DisabledReason string
	Members        []EligibleSuggestionMemberResponse
}

// GetEligibleWorkQueryResponse is the combined eligibility view.
type GetEligibleWorkQueryResponse struct {
	Orders      []EligibleOrderResponse
	Suggestions []EligibleSuggestionResponse
}
