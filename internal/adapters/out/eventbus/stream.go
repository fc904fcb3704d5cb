// Package eventbus provides the in-process implementation of the order
// event stream. Delivery is at-most-once per subscriber: a subscriber
// whose buffer is full misses the event rather than stalling the
// publisher, and catches up through the query endpoints.
package eventbus

import (
	"sync"

	"attieke/internal/core/ports"
)

// subscriberBuffer sizes each subscription channel. A tracking view
// consumes one event per simulator tick, so a small buffer only fills
// when the consumer has stopped reading.
const subscriberBuffer = 16

type subscription struct {
	ch     chan ports.OrderEvent
	filter ports.OrderEventFilter
}

// OrderStream is a mutex-guarded fan-out bus for order events.
// Implements ports.OrderStream for single-process deployments.
type OrderStream struct {
	mu     sync.RWMutex
	subs   map[int]*subscription
	nextID int
}

// NewOrderStream creates an empty event bus.
func NewOrderStream() *OrderStream {
	return &OrderStream{
		subs: make(map[int]*subscription),
	}
}

// Publish delivers the event to every matching subscriber without blocking.
func (s *OrderStream) Publish(event ports.OrderEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sub := range s.subs {
		if !sub.filter.Matches(event) {
			continue
		}

		select {
		case sub.ch <- event:
		default:
			// Subscriber is not keeping up; drop rather than block.
		}
	}
}

// Subscribe registers a filtered subscription and returns its channel plus
// a cancel function. Cancel closes the channel; callers must stop ranging
// over it afterwards.
func (s *OrderStream) Subscribe(filter ports.OrderEventFilter) (<-chan ports.OrderEvent, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	sub := &subscription{
		ch:     make(chan ports.OrderEvent, subscriberBuffer),
		filter: filter,
	}
	s.subs[id] = sub

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if current, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(current.ch)
		}
	}

	return sub.ch, cancel
}

// SubscriberCount reports the number of active subscriptions.
func (s *OrderStream) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
