// Package http exposes the storefront API over echo. Handlers translate
// between wire DTOs and application use cases; no business rule lives here.
package http

import (
	"errors"
	"net/http"

	"attieke/internal/core/application/usecases/commands"
	"attieke/internal/core/application/usecases/queries"
	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/core/domain/model/order"
	"attieke/internal/core/ports"
	"attieke/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	advanceOrderHandler commands.AdvanceOrderCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getClientOrdersHandler queries.GetClientOrdersQueryHandler
	getOrderTrackHandler   queries.GetOrderTrackQueryHandler
	getSalesStatsHandler   queries.GetSalesStatsQueryHandler

	stream ports.OrderStream
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getClientOrdersHandler queries.GetClientOrdersQueryHandler,
	getOrderTrackHandler queries.GetOrderTrackQueryHandler,
	getSalesStatsHandler queries.GetSalesStatsQueryHandler,
	stream ports.OrderStream,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		advanceOrderHandler:    advanceOrderHandler,
		changeStatusHandler:    changeStatusHandler,
		getOrderHandler:        getOrderHandler,
		getClientOrdersHandler: getClientOrdersHandler,
		getOrderTrackHandler:   getOrderTrackHandler,
		getSalesStatsHandler:   getSalesStatsHandler,
		stream:                 stream,
	}
}

// RegisterRoutes binds all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/stream", s.StreamOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/track", s.GetOrderTrack)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.PUT("/orders/:id/status", s.ChangeOrderStatus)
	api.GET("/clients/:clientId/orders", s.GetClientOrders)
	api.GET("/admin/stats", s.GetSalesStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid client ID: " + err.Error(),
		})
	}

	attiekeType, err := order.ParseAttiekeType(req.AttiekeType)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		clientID,
		req.ClientName,
		req.ClientPhone,
		req.Address,
		req.City,
		req.Country,
		attiekeType,
		req.Amount,
		req.DeliveryFee,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(created))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromView(view))
}

// GetClientOrders handles GET /api/v1/clients/:clientId/orders - retrieves
// one customer's history, newest first.
func (s *Server) GetClientOrders(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("clientId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid client ID",
		})
	}

	query, err := queries.NewGetClientOrdersQuery(clientID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.getClientOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]OrderResponse, len(views))
	for i, view := range views {
		response[i] = orderResponseFromView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - moves an order
// one step along the pipeline.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	advanced, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(advanced))
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status - sets an order's
// status directly, including cancellation.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return s.writeError(ctx, err)
	}

	changed, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(changed))
}

// GetOrderTrack handles GET /api/v1/orders/:id/track - returns the current
// tracking frame for the map view. This is the polling fallback for
// clients without a live stream connection.
func (s *Server) GetOrderTrack(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	query, err := queries.NewGetOrderTrackQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.getOrderTrackHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackResponseFrom(view))
}

// GetSalesStats handles GET /api/v1/admin/stats - the seller dashboard.
func (s *Server) GetSalesStats(ctx echo.Context) error {
	stats, err := s.getSalesStatsHandler.Handle(ctx.Request().Context(), queries.NewGetSalesStatsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SalesStatsResponse{
		Revenue:      stats.Revenue,
		OrderCount:   stats.OrderCount,
		ClientCount:  stats.ClientCount,
		OrdersByCity: stats.OrdersByCity,
		OrdersByType: stats.OrdersByType,
	})
}

// writeError maps domain errors to HTTP status codes.
func (s *Server) writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrStoreUnavailable):
		return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Store temporarily unavailable",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
