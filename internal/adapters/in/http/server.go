// Package http exposes the conversation engine as a webhook for the
// dialogue runtime. One endpoint receives every turn; the action field
// selects the operation.
package http

import (
	"net/http"

	"waiterbot/internal/core/application/usecases/commands"
	"waiterbot/internal/core/application/usecases/queries"
	"waiterbot/internal/core/domain/model/kernel"
	"waiterbot/internal/core/domain/model/turn"

	"github.com/labstack/echo/v4"
)

// Actions the dialogue runtime may request.
const (
	ActionPlaceOrder             = "place_order"
	ActionPlaceAdditionalRequest = "place_additional_request_order"
	ActionConfirmOrder           = "confirm_order"
	ActionResetOrder             = "reset_order"
	ActionGetMenu                = "get_menu"
	ActionGetOpeningHours        = "get_opening_hours"
	ActionCheckIsOpen            = "check_is_open"
	ActionCheckCurrentlyOpen     = "check_currently_open"
)

// Server handles conversation-turn webhooks.
// It coordinates between the HTTP layer and the application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler             commands.PlaceOrderCommandHandler
	placeAdditionalRequestHandler commands.PlaceAdditionalRequestOrderCommandHandler
	confirmOrderHandler           commands.ConfirmOrderCommandHandler
	resetOrderHandler             commands.ResetOrderCommandHandler

	// Query handlers
	getMenuHandler            queries.GetMenuQueryHandler
	getOpeningHoursHandler    queries.GetOpeningHoursQueryHandler
	checkIsOpenHandler        queries.CheckIsOpenQueryHandler
	checkCurrentlyOpenHandler queries.CheckCurrentlyOpenQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	placeAdditionalRequestHandler commands.PlaceAdditionalRequestOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	resetOrderHandler commands.ResetOrderCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getOpeningHoursHandler queries.GetOpeningHoursQueryHandler,
	checkIsOpenHandler queries.CheckIsOpenQueryHandler,
	checkCurrentlyOpenHandler queries.CheckCurrentlyOpenQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:             placeOrderHandler,
		placeAdditionalRequestHandler: placeAdditionalRequestHandler,
		confirmOrderHandler:           confirmOrderHandler,
		resetOrderHandler:             resetOrderHandler,
		getMenuHandler:                getMenuHandler,
		getOpeningHoursHandler:        getOpeningHoursHandler,
		checkIsOpenHandler:            checkIsOpenHandler,
		checkCurrentlyOpenHandler:     checkCurrentlyOpenHandler,
	}
}

// RegisterRoutes mounts the webhook endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/conversations/:sessionID/turns", s.HandleTurn)
}

// HandleTurn handles POST /api/v1/conversations/:sessionID/turns - processes
// one conversation turn and returns the assistant's reply messages.
func (s *Server) HandleTurn(ctx echo.Context) error {
	sessionID, err := kernel.UUIDFromString(ctx.Param("sessionID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid session ID",
		})
	}

	var request TurnRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	switch request.Action {
	case ActionPlaceOrder:
		return s.placeOrder(ctx, sessionID, request)
	case ActionPlaceAdditionalRequest:
		return s.placeAdditionalRequest(ctx, sessionID, request)
	case ActionConfirmOrder:
		return s.confirmOrder(ctx, sessionID)
	case ActionResetOrder:
		return s.resetOrder(ctx, sessionID)
	case ActionGetMenu:
		return s.getMenu(ctx)
	case ActionGetOpeningHours:
		return s.getOpeningHours(ctx, request)
	case ActionCheckIsOpen:
		return s.checkIsOpen(ctx, request)
	case ActionCheckCurrentlyOpen:
		return s.checkCurrentlyOpen(ctx)
	default:
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Unknown action: " + request.Action,
		})
	}
}

func (s *Server) placeOrder(ctx echo.Context, sessionID kernel.UUID, request TurnRequest) error {
	orderTurn, err := turnFromRequest(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid turn data: " + err.Error(),
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(sessionID, orderTurn)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid turn data: " + err.Error(),
		})
	}

	result, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process the order",
		})
	}

	return ctx.JSON(http.StatusOK, TurnResponse{Messages: result.Messages})
}

func (s *Server) placeAdditionalRequest(ctx echo.Context, sessionID kernel.UUID, request TurnRequest) error {
	orderTurn, err := turnFromRequest(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid turn data: " + err.Error(),
		})
	}

	cmd, err := commands.NewPlaceAdditionalRequestOrderCommand(sessionID, orderTurn)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid turn data: " + err.Error(),
		})
	}

	result, err := s.placeAdditionalRequestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process the order",
		})
	}

	return ctx.JSON(http.StatusOK, TurnResponse{Messages: result.Messages})
}

func (s *Server) confirmOrder(ctx echo.Context, sessionID kernel.UUID) error {
	cmd, err := commands.NewConfirmOrderCommand(sessionID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid session ID: " + err.Error(),
		})
	}

	result, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to confirm the order",
		})
	}

	return ctx.JSON(http.StatusOK, TurnResponse{Messages: result.Messages})
}

func (s *Server) resetOrder(ctx echo.Context, sessionID kernel.UUID) error {
	cmd, err := commands.NewResetOrderCommand(sessionID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid session ID: " + err.Error(),
		})
	}

	result, err := s.resetOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to reset the order",
		})
	}

	return ctx.JSON(http.StatusOK, TurnResponse{Messages: result.Messages})
}

func (s *Server) getMenu(ctx echo.Context) error {
	response, err := s.getMenuHandler.Handle(queries.NewGetMenuQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve the menu",
		})
	}

	return ctx.JSON(http.StatusOK, TurnResponse{Messages: response.Messages})
}

func (s *Server) getOpeningHours(ctx echo.Context, request TurnRequest) error {
	questionTurn, err := turnFromRequest(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid turn data: " + err.Error(),
		})
	}

	query, err := queries.NewGetOpeningHoursQuery(questionTurn)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid turn data: " + err.Error(),
		})
	}

	response, err := s.getOpeningHoursHandler.Handle(query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve opening hours",
		})
	}

	return ctx.JSON(http.StatusOK, TurnResponse{Messages: response.Messages})
}

func (s *Server) checkIsOpen(ctx echo.Context, request TurnRequest) error {
	questionTurn, err := turnFromRequest(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid turn data: " + err.Error(),
		})
	}

	query, err := queries.NewCheckIsOpenQuery(questionTurn)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid turn data: " + err.Error(),
		})
	}

	response, err := s.checkIsOpenHandler.Handle(query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to check opening hours",
		})
	}

	return ctx.JSON(http.StatusOK, TurnResponse{Messages: response.Messages})
}

func (s *Server) checkCurrentlyOpen(ctx echo.Context) error {
	response, err := s.checkCurrentlyOpenHandler.Handle(queries.NewCheckCurrentlyOpenQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to check opening hours",
		})
	}

	return ctx.JSON(http.StatusOK, TurnResponse{Messages: response.Messages})
}

// turnFromRequest builds the domain turn from the webhook payload.
func turnFromRequest(request TurnRequest) (turn.Turn, error) {
	entities := make([]turn.Entity, 0, len(request.Entities))
	for _, raw := range request.Entities {
		kind, err := turn.KindFromString(raw.Kind)
		if err != nil {
			return turn.Turn{}, err
		}

		entity, err := turn.NewEntity(kind, raw.Value)
		if err != nil {
			return turn.Turn{}, err
		}
		entities = append(entities, entity)
	}

	return turn.NewTurn(request.Text, entities)
}
