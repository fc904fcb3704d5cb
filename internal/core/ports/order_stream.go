package ports

import (
	"time"

	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/core/domain/model/order"
)

// OrderEventKind discriminates the events carried by the order stream.
type OrderEventKind string

const (
	// OrderStatusChanged is published after a status mutation commits.
	OrderStatusChanged OrderEventKind = "status_changed"

	// OrderPositionUpdated is published by the tracking job for each
	// in-delivery order on every tick.
	OrderPositionUpdated OrderEventKind = "position_updated"
)

// OrderEvent is a change notification for one order. The same shape serves
// the admin view (all orders), a customer's dashboard (orders for one
// client) and the tracking view (a single order).
//
// Events may arrive duplicated or out of order; consumers must apply them
// idempotently; re-applying the current status is a no-op.
type OrderEvent struct {
	Kind       OrderEventKind
	OrderID    kernel.UUID
	ClientID   kernel.UUID
	Status     order.Status
	Position   *kernel.GeoPoint
	Fraction   float64
	OccurredAt time.Time
}

// OrderEventFilter selects which events a subscription receives.
// The zero value matches every order (admin view); setting ClientID or
// OrderID narrows the stream to one customer or one order.
type OrderEventFilter struct {
	OrderID  *kernel.UUID
	ClientID *kernel.UUID
}

// Matches reports whether an event passes the filter.
func (f OrderEventFilter) Matches(event OrderEvent) bool {
	if f.OrderID != nil && !f.OrderID.IsEqual(event.OrderID) {
		return false
	}
	if f.ClientID != nil && !f.ClientID.IsEqual(event.ClientID) {
		return false
	}
	return true
}

// OrderStream is the real-time propagation contract for order changes.
//
// Subscribe returns a receive channel and a cancel function; the caller
// owns cancel and must invoke it on disposal, otherwise the subscription
// leaks and keeps delivering updates to an abandoned view. Polling the
// query endpoints is the degraded-mode substitute when push is
// unavailable.
type OrderStream interface {
	// Publish delivers an event to all matching subscribers.
	// It never blocks the publisher; slow subscribers may miss events.
	Publish(event OrderEvent)

	// Subscribe registers a filtered subscription.
	Subscribe(filter OrderEventFilter) (<-chan OrderEvent, func())
}
