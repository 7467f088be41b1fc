// Package roundrepo provides data transfer objects and mapping functions for
// delivery round persistence. A round row owns its stop rows; deleting the
// round cascades to the stops so a release can never leave orphans.
package roundrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/round"

	"github.com/google/uuid"
)

// RoundDTO represents the database structure for persisting delivery round
// aggregates.
type RoundDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DriverID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	SuggestedRoundID *uuid.UUID `gorm:"type:uuid;index"`
	Status           int        `gorm:"index"`
	PlannedDeparture *time.Time
	ActualDeparture  *time.Time
	Stops            []StopDTO `gorm:"foreignKey:DeliveryRoundID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for delivery round entities.
// Overrides GORM's default naming convention to use "delivery_rounds".
func (RoundDTO) TableName() string {
	return "delivery_rounds"
}

// StopDTO represents the database structure for persisting stop entities.
// Address and coordinates are snapshots taken at claim time.
type StopDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryRoundID  uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Sequence         int       `gorm:"not null"`
	Address          string    `gorm:"type:varchar(512);not null"`
	Latitude         *float64
	Longitude        *float64
	Status           int
	TimeWindowStart  *time.Time
	EstimatedArrival *time.Time
	ActualArrival    *time.Time
}

// TableName specifies the database table name for stop entities.
// Overrides GORM's default naming convention to use "stops".
func (StopDTO) TableName() string {
	return "stops"
}

// fromDomain converts a round domain aggregate to its database representation,
// stop children included.
func fromDomain(aggregate *round.Round) RoundDTO {
	roundID := aggregate.ID().Bytes()
	stops := make([]StopDTO, 0, len(aggregate.Stops()))

	for _, stop := range aggregate.Stops() {
		var latitude, longitude *float64
		if point := stop.Coordinates(); point != nil {
			lat, lon := point.Latitude(), point.Longitude()
			latitude, longitude = &lat, &lon
		}

		stops = append(stops, StopDTO{
			ID:               stop.ID().Bytes(),
			DeliveryRoundID:  roundID,
			OrderID:          stop.OrderID().Bytes(),
			Sequence:         stop.Sequence(),
			Address:          stop.Address(),
			Latitude:         latitude,
			Longitude:        longitude,
			Status:           int(stop.Status()),
			TimeWindowStart:  stop.TimeWindowStart(),
			EstimatedArrival: stop.EstimatedArrival(),
			ActualArrival:    stop.ActualArrival(),
		})
	}

	var suggestedRoundID *uuid.UUID
	if id := aggregate.SuggestionID(); id != nil {
		raw := id.Bytes()
		suggestedRoundID = &raw
	}

	return RoundDTO{
		ID:               roundID,
		DriverID:         aggregate.DriverID().Bytes(),
		SuggestedRoundID: suggestedRoundID,
		Status:           int(aggregate.Status()),
		PlannedDeparture: aggregate.PlannedDeparture(),
		ActualDeparture:  aggregate.ActualDeparture(),
		Stops:            stops,
	}
}

// toDomain converts a database DTO to a round domain aggregate using
// RestoreRound, which re-validates stop sequence density on every read.
func toDomain(dto RoundDTO) (*round.Round, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	var suggestionID *kernel.UUID
	if dto.SuggestedRoundID != nil {
		sID, sugErr := kernel.UUIDFromBytes((*dto.SuggestedRoundID)[:])
		if sugErr != nil {
			return nil, sugErr
		}
		suggestionID = &sID
	}

	stops := make([]*round.Stop, 0, len(dto.Stops))
	for _, stopDto := range dto.Stops {
		stop, stopErr := stopToDomain(stopDto)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, stop)
	}

	return round.RestoreRound(
		id,
		driverID,
		suggestionID,
		round.Status(dto.Status),
		dto.PlannedDeparture,
		dto.ActualDeparture,
		stops,
	)
}

// stopToDomain converts a stop DTO to its domain entity.
func stopToDomain(dto StopDTO) (*round.Stop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var coordinates *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, geoErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if geoErr != nil {
			return nil, geoErr
		}
		coordinates = &point
	}

	return round.RestoreStop(
		id,
		orderID,
		dto.Sequence,
		dto.Address,
		coordinates,
		round.StopStatus(dto.Status),
		dto.TimeWindowStart,
		dto.EstimatedArrival,
		dto.ActualArrival,
	)
}
