package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// StreamOrders handles GET /api/v1/orders/stream - pushes order events as
// server-sent events.
//
// Optional query parameters narrow the stream: order_id follows a single
// order (the tracking view), client_id follows one customer's orders (the
// dashboard). Without parameters the stream carries every order (the
// seller's admin view).
//
// The subscription is cancelled when the client disconnects. Events may be
// dropped under backpressure; clients recover by polling the query
// endpoints, which always return current state.
func (s *Server) StreamOrders(ctx echo.Context) error {
	filter, err := streamFilterFrom(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	events, cancel := s.stream.Subscribe(filter)
	defer cancel()

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}

			payload, marshalErr := json.Marshal(orderEventResponseFrom(event))
			if marshalErr != nil {
				continue
			}

			if _, writeErr := fmt.Fprintf(resp, "event: %s\ndata: %s\n\n", event.Kind, payload); writeErr != nil {
				return nil
			}
			resp.Flush()
		}
	}
}

// streamFilterFrom parses the optional order_id and client_id parameters.
func streamFilterFrom(ctx echo.Context) (ports.OrderEventFilter, error) {
	var filter ports.OrderEventFilter

	if raw := ctx.QueryParam("order_id"); raw != "" {
		orderID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return ports.OrderEventFilter{}, fmt.Errorf("invalid order_id: %w", err)
		}
		filter.OrderID = &orderID
	}

	if raw := ctx.QueryParam("client_id"); raw != "" {
		clientID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return ports.OrderEventFilter{}, fmt.Errorf("invalid client_id: %w", err)
		}
		filter.ClientID = &clientID
	}

	return filter, nil
}
