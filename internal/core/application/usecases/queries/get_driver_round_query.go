package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDriverRoundQueryIsNotConstructed = errors.New(
	"GetDriverRoundQuery must be created via NewGetDriverRoundQuery constructor",
)

// GetDriverRoundQuery retrieves the driver's current active round, if any.
// Active means ready or in progress; completed rounds fall out of this view.
type GetDriverRoundQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverRoundQuery creates a query for the given driver.
func NewGetDriverRoundQuery(driverID kernel.UUID) (GetDriverRoundQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverRoundQuery{}, err
	}

	return GetDriverRoundQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// DriverID returns the requesting driver's identifier.
func (q GetDriverRoundQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDriverRoundQueryIsNotConstructed if validation fails.
func (q GetDriverRoundQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverRoundQueryIsNotConstructed)
}

// DriverRoundStopResponse is one stop in the driver's round view, in
// sequence order.
type DriverRoundStopResponse struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	Sequence         int
	Address          string
	Coordinates      *kernel.GeoPoint
	Status           string
	TimeWindowStart  *time.Time
	EstimatedArrival *time.Time
	ActualArrival    *time.Time
}

// GetDriverRoundQueryResponse is the driver's current round read model.
type GetDriverRoundQueryResponse struct {
	ID               kernel.UUID
	Status           string
	SuggestedRoundID *kernel.UUID
	PlannedDeparture *time.Time
	ActualDeparture  *time.Time
	TotalStops       int
	Stops            []DriverRoundStopResponse
}
