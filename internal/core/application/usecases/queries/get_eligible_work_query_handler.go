package queries

import (
	"context"
	"database/sql"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/suggestion"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetEligibleWorkQueryHandler computes the claimable work view directly from
// the database. Uses raw SQL for read performance in the CQRS pattern; the
// write-side aggregates are never materialized here.
type GetEligibleWorkQueryHandler struct {
	db        *gorm.DB
	lookahead time.Duration
	clock     Clock
}

// NewGetEligibleWorkQueryHandler creates a handler for eligibility queries.
// The lookahead bounds how far into the future individual orders are shown.
func NewGetEligibleWorkQueryHandler(db *gorm.DB, lookahead time.Duration, clock Clock) GetEligibleWorkQueryHandler {
	return GetEligibleWorkQueryHandler{
		db:        db,
		lookahead: lookahead,
		clock:     clock,
	}
}

// Handle executes the eligibility query. Individual orders are unassigned,
// not past due, inside the look-ahead window, and not held by a live
// suggestion; orders whose suggestion expired fall back to this list.
// Suggestions are pending or accepted, unclaimed and unexpired, with members
// still free to be grouped.
func (h GetEligibleWorkQueryHandler) Handle(
	ctx context.Context,
	query GetEligibleWorkQuery,
) (GetEligibleWorkQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetEligibleWorkQueryResponse{}, err
	}

	now := h.clock()

	orders, err := h.eligibleOrders(ctx, now)
	if err != nil {
		return GetEligibleWorkQueryResponse{}, err
	}

	suggestions, err := h.eligibleSuggestions(ctx, now)
	if err != nil {
		return GetEligibleWorkQueryResponse{}, err
	}

	return GetEligibleWorkQueryResponse{
		Orders:      orders,
		Suggestions: suggestions,
	}, nil
}

func (h GetEligibleWorkQueryHandler) eligibleOrders(
	ctx context.Context,
	now time.Time,
) ([]EligibleOrderResponse, error) {
	orders := make([]EligibleOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.address,
			o.latitude,
			o.longitude,
			o.scheduled_at,
			o.status
		FROM orders o
		LEFT JOIN suggested_rounds s ON s.id = o.suggested_round_id
		WHERE o.delivery_round_id IS NULL
		  AND o.status NOT IN (?, ?)
		  AND o.scheduled_at > ?
		  AND o.scheduled_at <= ?
		  AND (o.suggested_round_id IS NULL OR s.status = ?)
		ORDER BY o.scheduled_at, o.id
	`, int(order.Completed), int(order.Cancelled),
		now, now.Add(h.lookahead),
		int(suggestion.Expired)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var latitude, longitude sql.NullFloat64
		var status int
		resp := EligibleOrderResponse{}

		err = rows.Scan(
			&id,
			&resp.Number,
			&resp.Address,
			&latitude,
			&longitude,
			&resp.ScheduledAt,
			&status,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()

		coordinates, geoErr := nullableGeoPoint(latitude, longitude)
		if geoErr != nil {
			return nil, geoErr
		}
		resp.Coordinates = coordinates

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetEligibleWorkQueryHandler) eligibleSuggestions(
	ctx context.Context,
	now time.Time,
) ([]EligibleSuggestionResponse, error) {
	suggestions := make([]EligibleSuggestionResponse, 0)

	// Members of a live suggestion must still be free: not claimed into a
	// round and not referenced by a different suggestion.
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.status,
			s.preparation_at,
			s.departure_at,
			s.expires_at,
			m.order_id,
			m.sequence,
			m.estimated_arrival,
			o.number,
			o.address,
			o.status
		FROM suggested_rounds s
		JOIN suggestion_members m ON m.suggested_round_id = s.id
		JOIN orders o ON o.id = m.order_id
		WHERE s.status IN (?, ?)
		  AND s.driver_id IS NULL
		  AND s.expires_at > ?
		  AND NOT EXISTS (
			SELECT 1
			FROM suggestion_members mm
			JOIN orders oo ON oo.id = mm.order_id
			WHERE mm.suggested_round_id = s.id
			  AND (oo.delivery_round_id IS NOT NULL
			       OR (oo.suggested_round_id IS NOT NULL AND oo.suggested_round_id <> s.id))
		  )
		ORDER BY s.departure_at, s.id, m.sequence
	`, int(suggestion.Pending), int(suggestion.Accepted), now).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var current *EligibleSuggestionResponse
	for rows.Next() {
		var suggestionID, orderID uuid.UUID
		var suggestionStatus, orderStatus int
		var preparationAt, departureAt, expiresAt time.Time
		member := EligibleSuggestionMemberResponse{}

		err = rows.Scan(
			&suggestionID,
			&suggestionStatus,
			&preparationAt,
			&departureAt,
			&expiresAt,
			&orderID,
			&member.Sequence,
			&member.EstimatedArrival,
			&member.Number,
			&member.Address,
			&orderStatus,
		)
		if err != nil {
			return nil, err
		}

		sugID, idErr := kernel.UUIDFromBytes(suggestionID[:])
		if idErr != nil {
			return nil, idErr
		}
		memberOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		member.OrderID = memberOrderID
		member.OrderStatus = order.Status(orderStatus).String()

		if current == nil || !current.ID.IsEqual(sugID) {
			if current != nil {
				suggestions = append(suggestions, finalizeSuggestion(*current))
			}
			current = &EligibleSuggestionResponse{
				ID:            sugID,
				Status:        suggestion.Status(suggestionStatus).String(),
				PreparationAt: preparationAt,
				DepartureAt:   departureAt,
				ExpiresAt:     expiresAt,
			}
		}
		current.Members = append(current.Members, member)
	}
	if current != nil {
		suggestions = append(suggestions, finalizeSuggestion(*current))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return suggestions, nil
}

// finalizeSuggestion computes the takeable flag once all members are known:
// takeable requires acceptance plus kitchen readiness of every member.
func finalizeSuggestion(resp EligibleSuggestionResponse) EligibleSuggestionResponse {
	if resp.Status != suggestion.Accepted.String() {
		resp.DisabledReason = ReasonAwaitingValidation
		return resp
	}

	for _, m := range resp.Members {
		if m.OrderStatus != order.Ready.String() {
			resp.DisabledReason = ReasonInPreparation
			return resp
		}
	}

	resp.Takeable = true
	return resp
}

func nullableGeoPoint(latitude, longitude sql.NullFloat64) (*kernel.GeoPoint, error) {
	if !latitude.Valid || !longitude.Valid {
		return nil, nil
	}

	point, err := kernel.NewGeoPoint(latitude.Float64, longitude.Float64)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
