// Package http provides the inbound HTTP adapter. The Server type
// implements the generated ServerInterface and translates between the wire
// types and application commands and queries.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	claimOrderHandler          commands.ClaimOrderCommandHandler
	addOrderToRoundHandler     commands.AddOrderToRoundCommandHandler
	claimSuggestedRoundHandler commands.ClaimSuggestedRoundCommandHandler
	startRoundHandler          commands.StartRoundCommandHandler
	markStopDeliveredHandler   commands.MarkStopDeliveredCommandHandler
	releaseStopHandler         commands.ReleaseStopCommandHandler
	releaseRoundHandler        commands.ReleaseRoundCommandHandler

	// Query handlers
	getEligibleWorkHandler queries.GetEligibleWorkQueryHandler
	getDriverRoundHandler  queries.GetDriverRoundQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	claimOrderHandler commands.ClaimOrderCommandHandler,
	addOrderToRoundHandler commands.AddOrderToRoundCommandHandler,
	claimSuggestedRoundHandler commands.ClaimSuggestedRoundCommandHandler,
	startRoundHandler commands.StartRoundCommandHandler,
	markStopDeliveredHandler commands.MarkStopDeliveredCommandHandler,
	releaseStopHandler commands.ReleaseStopCommandHandler,
	releaseRoundHandler commands.ReleaseRoundCommandHandler,
	getEligibleWorkHandler queries.GetEligibleWorkQueryHandler,
	getDriverRoundHandler queries.GetDriverRoundQueryHandler,
) *Server {
	return &Server{
		claimOrderHandler:          claimOrderHandler,
		addOrderToRoundHandler:     addOrderToRoundHandler,
		claimSuggestedRoundHandler: claimSuggestedRoundHandler,
		startRoundHandler:          startRoundHandler,
		markStopDeliveredHandler:   markStopDeliveredHandler,
		releaseStopHandler:         releaseStopHandler,
		releaseRoundHandler:        releaseRoundHandler,
		getEligibleWorkHandler:     getEligibleWorkHandler,
		getDriverRoundHandler:      getDriverRoundHandler,
	}
}

// GetEligibleWork handles GET /api/v1/drivers/{driverId}/eligible-work.
func (s *Server) GetEligibleWork(ctx echo.Context, driverId openapi_types.UUID) error {
	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return badRequest(ctx, "Invalid driver ID: "+err.Error())
	}

	query, err := queries.NewGetEligibleWorkQuery(driverID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	work, err := s.getEligibleWorkHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := servers.EligibleWork{
		Orders:      make([]servers.EligibleOrder, len(work.Orders)),
		Suggestions: make([]servers.EligibleSuggestion, len(work.Suggestions)),
	}
	for i, eligibleOrder := range work.Orders {
		response.Orders[i] = servers.EligibleOrder{
			Id:          eligibleOrder.ID.Bytes(),
			Number:      eligibleOrder.Number,
			Address:     eligibleOrder.Address,
			Location:    toLocation(eligibleOrder.Coordinates),
			ScheduledAt: eligibleOrder.ScheduledAt,
			Status:      eligibleOrder.Status,
		}
	}
	for i, eligibleSuggestion := range work.Suggestions {
		members := make([]servers.SuggestionMember, len(eligibleSuggestion.Members))
		for j, member := range eligibleSuggestion.Members {
			members[j] = servers.SuggestionMember{
				OrderId:          member.OrderID.Bytes(),
				Number:           member.Number,
				Address:          member.Address,
				Sequence:         member.Sequence,
				EstimatedArrival: member.EstimatedArrival,
				OrderStatus:      member.OrderStatus,
			}
		}

		response.Suggestions[i] = servers.EligibleSuggestion{
			Id:             eligibleSuggestion.ID.Bytes(),
			Status:         eligibleSuggestion.Status,
			PreparationAt:  eligibleSuggestion.PreparationAt,
			DepartureAt:    eligibleSuggestion.DepartureAt,
			ExpiresAt:      eligibleSuggestion.ExpiresAt,
			Takeable:       eligibleSuggestion.Takeable,
			DisabledReason: optionalString(eligibleSuggestion.DisabledReason),
			Members:        members,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriverRound handles GET /api/v1/drivers/{driverId}/round.
func (s *Server) GetDriverRound(ctx echo.Context, driverId openapi_types.UUID) error {
	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return badRequest(ctx, "Invalid driver ID: "+err.Error())
	}

	query, err := queries.NewGetDriverRoundQuery(driverID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	driverRound, err := s.getDriverRoundHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	stops := make([]servers.RoundStop, len(driverRound.Stops))
	for i, stop := range driverRound.Stops {
		stops[i] = servers.RoundStop{
			Id:               stop.ID.Bytes(),
			OrderId:          stop.OrderID.Bytes(),
			Sequence:         stop.Sequence,
			Address:          stop.Address,
			Location:         toLocation(stop.Coordinates),
			Status:           stop.Status,
			TimeWindowStart:  stop.TimeWindowStart,
			EstimatedArrival: stop.EstimatedArrival,
			ActualArrival:    stop.ActualArrival,
		}
	}

	var suggestedRoundID *openapi_types.UUID
	if driverRound.SuggestedRoundID != nil {
		googleUUID := driverRound.SuggestedRoundID.Bytes()
		suggestedRoundID = &googleUUID
	}

	return ctx.JSON(http.StatusOK, servers.DriverRound{
		Id:               driverRound.ID.Bytes(),
		Status:           driverRound.Status,
		SuggestedRoundId: suggestedRoundID,
		PlannedDeparture: driverRound.PlannedDeparture,
		ActualDeparture:  driverRound.ActualDeparture,
		TotalStops:       driverRound.TotalStops,
		Stops:            stops,
	})
}

// ClaimOrder handles POST /api/v1/drivers/{driverId}/round/claim-order.
func (s *Server) ClaimOrder(ctx echo.Context, driverId openapi_types.UUID) error {
	var request servers.ClaimOrderJSONRequestBody
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, driverID, err := twoUUIDs(request.OrderId, driverId)
	if err != nil {
		return badRequest(ctx, "Invalid identifier: "+err.Error())
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, driverID)
	if err != nil {
		return badRequest(ctx, "Invalid claim data: "+err.Error())
	}

	if handleErr := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AddOrderToRound handles POST /api/v1/drivers/{driverId}/round/stops.
func (s *Server) AddOrderToRound(ctx echo.Context, driverId openapi_types.UUID) error {
	var request servers.AddOrderToRoundJSONRequestBody
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, driverID, err := twoUUIDs(request.OrderId, driverId)
	if err != nil {
		return badRequest(ctx, "Invalid identifier: "+err.Error())
	}

	cmd, err := commands.NewAddOrderToRoundCommand(orderID, driverID)
	if err != nil {
		return badRequest(ctx, "Invalid stop data: "+err.Error())
	}

	if handleErr := s.addOrderToRoundHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ClaimSuggestedRound handles POST /api/v1/drivers/{driverId}/round/claim-suggestion.
func (s *Server) ClaimSuggestedRound(ctx echo.Context, driverId openapi_types.UUID) error {
	var request servers.ClaimSuggestedRoundJSONRequestBody
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	suggestionID, driverID, err := twoUUIDs(request.SuggestionId, driverId)
	if err != nil {
		return badRequest(ctx, "Invalid identifier: "+err.Error())
	}

	cmd, err := commands.NewClaimSuggestedRoundCommand(suggestionID, driverID)
	if err != nil {
		return badRequest(ctx, "Invalid claim data: "+err.Error())
	}

	if handleErr := s.claimSuggestedRoundHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// StartRound handles POST /api/v1/rounds/{roundId}/start.
func (s *Server) StartRound(ctx echo.Context, roundId openapi_types.UUID) error {
	var request servers.StartRoundJSONRequestBody
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	roundID, driverID, err := twoUUIDs(roundId, request.DriverId)
	if err != nil {
		return badRequest(ctx, "Invalid identifier: "+err.Error())
	}

	cmd, err := commands.NewStartRoundCommand(roundID, driverID)
	if err != nil {
		return badRequest(ctx, "Invalid start data: "+err.Error())
	}

	if handleErr := s.startRoundHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkStopDelivered handles POST /api/v1/rounds/{roundId}/stops/{stopId}/delivered.
func (s *Server) MarkStopDelivered(ctx echo.Context, roundId openapi_types.UUID, stopId openapi_types.UUID) error {
	var request servers.MarkStopDeliveredJSONRequestBody
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	roundID, stopID, err := twoUUIDs(roundId, stopId)
	if err != nil {
		return badRequest(ctx, "Invalid identifier: "+err.Error())
	}
	driverID, err := kernel.UUIDFromBytes(request.DriverId[:])
	if err != nil {
		return badRequest(ctx, "Invalid driver ID: "+err.Error())
	}

	cmd, err := commands.NewMarkStopDeliveredCommand(roundID, stopID, driverID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.markStopDeliveredHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseStop handles DELETE /api/v1/rounds/{roundId}/stops/{stopId}.
func (s *Server) ReleaseStop(
	ctx echo.Context,
	roundId openapi_types.UUID,
	stopId openapi_types.UUID,
	params servers.ReleaseStopParams,
) error {
	roundID, stopID, err := twoUUIDs(roundId, stopId)
	if err != nil {
		return badRequest(ctx, "Invalid identifier: "+err.Error())
	}
	driverID, err := kernel.UUIDFromBytes(params.DriverId[:])
	if err != nil {
		return badRequest(ctx, "Invalid driver ID: "+err.Error())
	}

	cmd, err := commands.NewReleaseStopCommand(roundID, stopID, driverID)
	if err != nil {
		return badRequest(ctx, "Invalid release data: "+err.Error())
	}

	if handleErr := s.releaseStopHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseRound handles DELETE /api/v1/rounds/{roundId}.
func (s *Server) ReleaseRound(ctx echo.Context, roundId openapi_types.UUID, params servers.ReleaseRoundParams) error {
	roundID, driverID, err := twoUUIDs(roundId, params.DriverId)
	if err != nil {
		return badRequest(ctx, "Invalid identifier: "+err.Error())
	}

	cmd, err := commands.NewReleaseRoundCommand(roundID, driverID)
	if err != nil {
		return badRequest(ctx, "Invalid release data: "+err.Error())
	}

	if handleErr := s.releaseRoundHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// mapError translates application and domain errors into HTTP responses.
// Conflicts over contested resources map to 409, rejected state transitions
// to 422, missing objects to 404 and validation failures to 400.
func mapError(ctx echo.Context, err error) error {
	status := errorStatus(err)
	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrResourceConflict),
		errors.Is(err, errs.ErrCapacityExceeded):
		return http.StatusConflict
	case errors.Is(err, errs.ErrPreconditionFailed),
		errors.Is(err, commands.ErrDriverHasReadyRound),
		errors.Is(err, commands.ErrNoReadyRound),
		errors.Is(err, commands.ErrRoundOwnedByAnotherDriver):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// twoUUIDs converts a pair of wire identifiers to kernel UUIDs.
func twoUUIDs(first openapi_types.UUID, second openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	firstID, err := kernel.UUIDFromBytes(first[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	secondID, err := kernel.UUIDFromBytes(second[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return firstID, secondID, nil
}

// toLocation converts optional domain coordinates to the wire representation.
func toLocation(point *kernel.GeoPoint) *servers.Location {
	if point == nil {
		return nil
	}

	return &servers.Location{
		Latitude:  point.Latitude(),
		Longitude: point.Longitude(),
	}
}

// optionalString returns nil for an empty string so the field is omitted
// from the JSON payload.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
