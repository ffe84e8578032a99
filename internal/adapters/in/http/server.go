package http

import (
	"context"
	"net/http"
	"strconv"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Use case ports of the HTTP adapter. The command and query handlers satisfy them.
type (
	CreateCouriersHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCouriersCommand) ([]int, error)
	}
	CreateOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrdersCommand) ([]int, error)
	}
	AssignOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.AssignOrdersCommand) (commands.AssignOrdersResult, error)
	}
	CompleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteOrderCommand) (int, error)
	}
	UpdateCourierProfileHandler interface {
		Handle(
			ctx context.Context,
			cmd commands.UpdateCourierProfileCommand,
		) (commands.UpdateCourierProfileResult, error)
	}
	GetCourierStatsHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetCourierStatsQuery,
		) (*queries.GetCourierStatsQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateCouriers       CreateCouriersHandler
	CreateOrders         CreateOrdersHandler
	AssignOrders         AssignOrdersHandler
	CompleteOrder        CompleteOrderHandler
	UpdateCourierProfile UpdateCourierProfileHandler
	GetCourierStats      GetCourierStatsHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// CreateCouriers handles POST /couriers.
func (s *Server) CreateCouriers(ctx echo.Context) error {
	var req CreateCouriersRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]any{"validation_error": map[string]any{}})
	}

	entries := make([]commands.CourierEntry, len(req.Data))
	for i, item := range req.Data {
		entries[i] = commands.CourierEntry{
			ID:           item.CourierID,
			Type:         item.CourierType,
			Regions:      item.Regions,
			WorkingHours: item.WorkingHours,
		}
	}

	cmd, err := commands.NewCreateCouriersCommand(entries)
	if err != nil {
		return writeError(ctx, err)
	}

	ids, err := s.handlers.CreateCouriers.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateCouriersResponse{Couriers: toIDItems(ids)})
}

// GetCourier handles GET /couriers/:courier_id.
func (s *Server) GetCourier(ctx echo.Context) error {
	courierID, err := strconv.Atoi(ctx.Param("courier_id"))
	if err != nil {
		return badRequest(ctx, "courier_id must be an integer")
	}

	query, err := queries.NewGetCourierStatsQuery(courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	stats, err := s.handlers.GetCourierStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// PatchCourier handles PATCH /couriers/:courier_id.
func (s *Server) PatchCourier(ctx echo.Context) error {
	courierID, err := strconv.Atoi(ctx.Param("courier_id"))
	if err != nil {
		return badRequest(ctx, "courier_id must be an integer")
	}

	var req PatchCourierRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCourierProfileCommand(courierID, commands.ProfileChanges{
		Type:         req.CourierType,
		Regions:      req.Regions,
		WorkingHours: req.WorkingHours,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.UpdateCourierProfile.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	c := result.Courier
	return ctx.JSON(http.StatusOK, PatchCourierResponse{
		CourierID:      c.ID(),
		CourierType:    c.Type().String(),
		Regions:        c.Regions(),
		WorkingHours:   kernel.FormatTimeWindows(c.WorkingHours()),
		ReleasedOrders: toIDItems(result.ReleasedOrderIDs),
	})
}

// CreateOrders handles POST /orders.
func (s *Server) CreateOrders(ctx echo.Context) error {
	var req CreateOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]any{"validation_error": map[string]any{}})
	}

	entries := make([]commands.OrderEntry, len(req.Data))
	for i, item := range req.Data {
		entries[i] = commands.OrderEntry{
			ID:            item.OrderID,
			Weight:        item.Weight,
			Region:        item.Region,
			DeliveryHours: item.DeliveryHours,
		}
	}

	cmd, err := commands.NewCreateOrdersCommand(entries)
	if err != nil {
		return writeError(ctx, err)
	}

	ids, err := s.handlers.CreateOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrdersResponse{Orders: toIDItems(ids)})
}

// AssignOrders handles POST /orders/assign.
func (s *Server) AssignOrders(ctx echo.Context) error {
	var req AssignOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignOrdersCommand(req.CourierID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.AssignOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignOrdersResponse{
		Orders:     toIDItems(result.OrderIDs),
		AssignTime: result.AssignTime,
	})
}

// CompleteOrder handles POST /orders/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	var req CompleteOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteOrderCommand(req.OrderID, req.CourierID, req.CompleteTime)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CompleteOrderResponse{OrderID: orderID})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
