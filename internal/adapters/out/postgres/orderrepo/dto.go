// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The dispatch core owns only the linkage columns of an
// order row; everything else is a read-only snapshot of the order store.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The nullable DeliveryRoundID doubles as the claim flag: a non-null value
// means the order belongs to a round.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number           string    `gorm:"type:varchar(32);not null"`
	Address          string    `gorm:"type:varchar(512);not null"`
	Latitude         *float64
	Longitude        *float64
	ScheduledAt      time.Time  `gorm:"index"`
	Status           int        `gorm:"index"`
	DeliveryRoundID  *uuid.UUID `gorm:"type:uuid;index"`
	SuggestedRoundID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var latitude, longitude *float64
	if point := aggregate.Coordinates(); point != nil {
		lat, lon := point.Latitude(), point.Longitude()
		latitude, longitude = &lat, &lon
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		Number:           aggregate.Number(),
		Address:          aggregate.Address(),
		Latitude:         latitude,
		Longitude:        longitude,
		ScheduledAt:      aggregate.ScheduledAt(),
		Status:           int(aggregate.Status()),
		DeliveryRoundID:  nullableID(aggregate.DeliveryRoundID()),
		SuggestedRoundID: nullableID(aggregate.SuggestedRoundID()),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, so the linkage invariant is re-validated on every read.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
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

	deliveryRoundID, err := domainID(dto.DeliveryRoundID)
	if err != nil {
		return nil, err
	}
	suggestedRoundID, err := domainID(dto.SuggestedRoundID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		dto.Address,
		coordinates,
		dto.ScheduledAt,
		order.Status(dto.Status),
		deliveryRoundID,
		suggestedRoundID,
	)
}

func nullableID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
