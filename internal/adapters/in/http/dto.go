package http

import (
	"math"
	"time"

	"attieke/internal/core/application/usecases/queries"
	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/core/domain/model/order"
	"attieke/internal/core/ports"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
// DeliveryFee is optional: when absent the tariff computes the fee from
// the destination.
type CreateOrderRequest struct {
	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	AttiekeType string `json:"attieke_type"`
	Amount      int    `json:"amount"`
	DeliveryFee *int   `json:"delivery_fee,omitempty"`
}

// ChangeStatusRequest is the body of PUT /api/v1/orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// StatusDisplay carries the presentation metadata of a status.
// Progress is null for cancelled orders, where the pipeline fraction is
// undefined.
type StatusDisplay struct {
	Label    string   `json:"label"`
	Color    string   `json:"color"`
	Icon     string   `json:"icon"`
	Progress *float64 `json:"progress"`
}

// OrderResponse is the read model of one order over the wire.
type OrderResponse struct {
	ID           string        `json:"id"`
	ClientID     string        `json:"client_id"`
	ClientName   string        `json:"client_name"`
	ClientPhone  string        `json:"client_phone"`
	Address      string        `json:"address"`
	City         string        `json:"city"`
	Country      string        `json:"country"`
	AttiekeType  string        `json:"attieke_type"`
	Amount       int           `json:"amount"`
	DeliveryFee  int           `json:"delivery_fee"`
	Total        int           `json:"total"`
	Status       string        `json:"status"`
	Display      StatusDisplay `json:"display"`
	CreatedAt    time.Time     `json:"created_at"`
	InDeliveryAt *time.Time    `json:"in_delivery_at,omitempty"`
}

// GeoPointResponse is a map coordinate over the wire.
type GeoPointResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TransportResponse describes the simulated vehicle of a delivery.
type TransportResponse struct {
	Class           string `json:"class"`
	Icon            string `json:"icon"`
	DurationSeconds int    `json:"duration_seconds"`
}

// TrackResponse is one tracking frame for the map view.
type TrackResponse struct {
	OrderID     string             `json:"order_id"`
	Status      string             `json:"status"`
	Display     StatusDisplay      `json:"display"`
	Transport   TransportResponse  `json:"transport"`
	Origin      GeoPointResponse   `json:"origin"`
	Destination GeoPointResponse   `json:"destination"`
	Position    GeoPointResponse   `json:"position"`
	Route       []GeoPointResponse `json:"route"`
	Traversed   []GeoPointResponse `json:"traversed"`
	Progress    float64            `json:"progress"`
}

// SalesStatsResponse is the seller dashboard payload.
type SalesStatsResponse struct {
	Revenue      int            `json:"revenue"`
	OrderCount   int            `json:"order_count"`
	ClientCount  int            `json:"client_count"`
	OrdersByCity map[string]int `json:"orders_by_city"`
	OrdersByType map[string]int `json:"orders_by_type"`
}

// OrderEventResponse is one server-sent event payload.
type OrderEventResponse struct {
	Kind       string            `json:"kind"`
	OrderID    string            `json:"order_id"`
	ClientID   string            `json:"client_id"`
	Status     string            `json:"status"`
	Display    StatusDisplay     `json:"display"`
	Position   *GeoPointResponse `json:"position,omitempty"`
	Progress   float64           `json:"progress"`
	OccurredAt time.Time         `json:"occurred_at"`
}

func statusDisplayFrom(info order.DisplayInfo) StatusDisplay {
	display := StatusDisplay{
		Label: info.Label,
		Color: info.Color,
		Icon:  info.Icon,
	}

	if !math.IsNaN(info.ProgressFraction) {
		progress := info.ProgressFraction
		display.Progress = &progress
	}

	return display
}

func geoPointFrom(point kernel.GeoPoint) GeoPointResponse {
	return GeoPointResponse{Lat: point.Lat(), Lng: point.Lng()}
}

func geoPointsFrom(points []kernel.GeoPoint) []GeoPointResponse {
	out := make([]GeoPointResponse, len(points))
	for i, point := range points {
		out[i] = geoPointFrom(point)
	}
	return out
}

// orderResponseFromAggregate maps a freshly mutated aggregate to the wire.
func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		ID:           aggregate.ID().String(),
		ClientID:     aggregate.ClientID().String(),
		ClientName:   aggregate.ClientName(),
		ClientPhone:  aggregate.ClientPhone(),
		Address:      aggregate.Address(),
		City:         aggregate.City(),
		Country:      aggregate.Country(),
		AttiekeType:  aggregate.AttiekeType().String(),
		Amount:       aggregate.Amount(),
		DeliveryFee:  aggregate.DeliveryFee(),
		Total:        aggregate.Total(),
		Status:       aggregate.Status().String(),
		Display:      statusDisplayFrom(aggregate.Status().DisplayInfo()),
		CreatedAt:    aggregate.CreatedAt(),
		InDeliveryAt: aggregate.InDeliveryAt(),
	}
}

// orderResponseFromView maps a query read model to the wire.
func orderResponseFromView(view queries.GetOrderQueryResponse) OrderResponse {
	return OrderResponse{
		ID:           view.ID.String(),
		ClientID:     view.ClientID.String(),
		ClientName:   view.ClientName,
		ClientPhone:  view.ClientPhone,
		Address:      view.Address,
		City:         view.City,
		Country:      view.Country,
		AttiekeType:  view.AttiekeType.String(),
		Amount:       view.Amount,
		DeliveryFee:  view.DeliveryFee,
		Total:        view.Total,
		Status:       view.Status.String(),
		Display:      statusDisplayFrom(view.Status.DisplayInfo()),
		CreatedAt:    view.CreatedAt,
		InDeliveryAt: view.InDeliveryAt,
	}
}

func trackResponseFrom(view queries.GetOrderTrackQueryResponse) TrackResponse {
	return TrackResponse{
		OrderID: view.OrderID.String(),
		Status:  view.Status.String(),
		Display: statusDisplayFrom(view.Display),
		Transport: TransportResponse{
			Class:           view.Transport.String(),
			Icon:            view.Transport.Icon(),
			DurationSeconds: int(view.Duration / time.Second),
		},
		Origin:      geoPointFrom(view.Origin),
		Destination: geoPointFrom(view.Destination),
		Position:    geoPointFrom(view.Position),
		Route:       geoPointsFrom(view.Route),
		Traversed:   geoPointsFrom(view.Traversed),
		Progress:    view.Fraction,
	}
}

func orderEventResponseFrom(event ports.OrderEvent) OrderEventResponse {
	resp := OrderEventResponse{
		Kind:       string(event.Kind),
		OrderID:    event.OrderID.String(),
		ClientID:   event.ClientID.String(),
		Status:     event.Status.String(),
		Display:    statusDisplayFrom(event.Status.DisplayInfo()),
		Progress:   event.Fraction,
		OccurredAt: event.OccurredAt,
	}

	if event.Position != nil {
		position := geoPointFrom(*event.Position)
		resp.Position = &position
	}

	return resp
}
