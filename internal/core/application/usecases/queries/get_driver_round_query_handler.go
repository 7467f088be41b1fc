package queries

import (
	"context"
	"database/sql"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/round"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverRoundQueryHandler loads the driver's active round straight from
// the database, stops included, without materializing the write-side
// aggregate.
type GetDriverRoundQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverRoundQueryHandler creates a handler for driver round queries.
func NewGetDriverRoundQueryHandler(db *gorm.DB) GetDriverRoundQueryHandler {
	return GetDriverRoundQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the driver
// holds no ready or in-progress round.
func (h GetDriverRoundQueryHandler) Handle(
	ctx context.Context,
	query GetDriverRoundQuery,
) (GetDriverRoundQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverRoundQueryResponse{}, err
	}

	resp, err := h.activeRound(ctx, query.DriverID())
	if err != nil {
		return GetDriverRoundQueryResponse{}, err
	}

	stops, err := h.roundStops(ctx, resp.ID)
	if err != nil {
		return GetDriverRoundQueryResponse{}, err
	}
	resp.Stops = stops
	resp.TotalStops = len(stops)

	return resp, nil
}

func (h GetDriverRoundQueryHandler) activeRound(
	ctx context.Context,
	driverID kernel.UUID,
) (GetDriverRoundQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			suggested_round_id,
			planned_departure,
			actual_departure
		FROM delivery_rounds
		WHERE driver_id = ?
		  AND status IN (?, ?)
		ORDER BY id
		LIMIT 1
	`, driverID.Bytes(), int(round.Ready), int(round.InProgress)).Rows()
	if err != nil {
		return GetDriverRoundQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetDriverRoundQueryResponse{}, err
		}
		return GetDriverRoundQueryResponse{}, errs.NewObjectNotFoundError("active round for driver", driverID.String())
	}

	var id uuid.UUID
	var status int
	var suggestionID uuid.NullUUID
	var plannedDeparture, actualDeparture sql.NullTime
	resp := GetDriverRoundQueryResponse{}

	err = rows.Scan(
		&id,
		&status,
		&suggestionID,
		&plannedDeparture,
		&actualDeparture,
	)
	if err != nil {
		return GetDriverRoundQueryResponse{}, err
	}

	roundID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetDriverRoundQueryResponse{}, idErr
	}
	resp.ID = roundID
	resp.Status = round.Status(status).String()

	if suggestionID.Valid {
		sugID, sidErr := kernel.UUIDFromBytes(suggestionID.UUID[:])
		if sidErr != nil {
			return GetDriverRoundQueryResponse{}, sidErr
		}
		resp.SuggestedRoundID = &sugID
	}
	resp.PlannedDeparture = nullableTime(plannedDeparture)
	resp.ActualDeparture = nullableTime(actualDeparture)

	return resp, nil
}

func (h GetDriverRoundQueryHandler) roundStops(
	ctx context.Context,
	roundID kernel.UUID,
) ([]DriverRoundStopResponse, error) {
	stops := make([]DriverRoundStopResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			sequence,
			address,
			latitude,
			longitude,
			status,
			time_window_start,
			estimated_arrival,
			actual_arrival
		FROM stops
		WHERE delivery_round_id = ?
		ORDER BY sequence
	`, roundID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID uuid.UUID
		var latitude, longitude sql.NullFloat64
		var status int
		var timeWindowStart, estimatedArrival, actualArrival sql.NullTime
		stop := DriverRoundStopResponse{}

		err = rows.Scan(
			&id,
			&orderID,
			&stop.Sequence,
			&stop.Address,
			&latitude,
			&longitude,
			&status,
			&timeWindowStart,
			&estimatedArrival,
			&actualArrival,
		)
		if err != nil {
			return nil, err
		}

		stopID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		stopOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		stop.ID = stopID
		stop.OrderID = stopOrderID
		stop.Status = round.StopStatus(status).String()

		coordinates, geoErr := nullableGeoPoint(latitude, longitude)
		if geoErr != nil {
			return nil, geoErr
		}
		stop.Coordinates = coordinates
		stop.TimeWindowStart = nullableTime(timeWindowStart)
		stop.EstimatedArrival = nullableTime(estimatedArrival)
		stop.ActualArrival = nullableTime(actualArrival)

		stops = append(stops, stop)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stops, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
