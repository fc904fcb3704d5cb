package queries

import (
	"errors"
	"time"

	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/core/domain/model/order"
	"attieke/internal/core/domain/services"
	"attieke/internal/pkg/guard"
)

var (
	ErrGetOrderTrackQueryIsNotConstructed = errors.New(
		"GetOrderTrackQuery must be created via NewGetOrderTrackQuery constructor",
	)
)

// GetOrderTrackQuery retrieves the tracking view of one order: the route
// polyline, the simulated vehicle position and the status display
// attributes. This is the polling counterpart of the live event stream.
type GetOrderTrackQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTrackQuery creates a query for an order's tracking view.
func NewGetOrderTrackQuery(orderID kernel.UUID) (GetOrderTrackQuery, error) {
	q := GetOrderTrackQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderTrackQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTrackQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackQueryIsNotConstructed)
}

// OrderID returns the tracked order's identifier.
func (q GetOrderTrackQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderTrackQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderTrackQueryResponse is everything a tracking map needs to render
// one frame. Position and Traversed are simulated from elapsed time, not
// real telemetry.
type GetOrderTrackQueryResponse struct {
	OrderID     kernel.UUID
	Status      order.Status
	Display     order.DisplayInfo
	Transport   services.TransportClass
	Origin      kernel.GeoPoint
	Destination kernel.GeoPoint
	Position    kernel.GeoPoint
	Route       []kernel.GeoPoint
	Traversed   []kernel.GeoPoint
	Fraction    float64
	Duration    time.Duration
}
