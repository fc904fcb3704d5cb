package queries

import (
	"errors"
	"time"

	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/pkg/guard"
)

var (
	ErrGetOrdersInDeliveryQueryIsNotConstructed = errors.New(
		"GetOrdersInDeliveryQuery must be created via NewGetOrdersInDeliveryQuery constructor",
	)
)

// GetOrdersInDeliveryQuery retrieves the orders currently on the road.
// Feeds the tracking job that pushes simulated positions to subscribers.
type GetOrdersInDeliveryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersInDeliveryQuery creates a query for in-transit orders.
// This is a parameterless query.
func NewGetOrdersInDeliveryQuery() GetOrdersInDeliveryQuery {
	return GetOrdersInDeliveryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersInDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersInDeliveryQueryIsNotConstructed)
}

// GetOrdersInDeliveryQueryResponse carries the fields the position
// simulator needs for one in-transit order.
type GetOrdersInDeliveryQueryResponse struct {
	ID           kernel.UUID
	ClientID     kernel.UUID
	City         string
	Country      string
	InDeliveryAt time.Time
}
