// Package memory provides an in-memory implementation of the order store.
// It backs the simulated-store mode, where the service runs without a
// database, and doubles as the store used by application-layer tests.
// Aggregates are cloned on the way in and out, so callers never share
// mutable state with the store.
package memory

import (
	"errors"
	"sync"
	"time"

	"attieke/internal/core/domain/model/order"
)

var (
	// ErrOrderAlreadyExists is returned when Add sees a duplicate identifier.
	ErrOrderAlreadyExists = errors.New("order already exists")

	// ErrNoActiveTransaction is returned by Commit and Rollback when Begin
	// was never called.
	ErrNoActiveTransaction = errors.New("no active transaction")
)

// Store is the shared in-memory order table. Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		orders: make(map[string]*order.Order),
	}
}

// snapshot returns a cloned view of every stored order.
func (s *Store) snapshot() (map[string]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*order.Order, len(s.orders))
	for id, aggregate := range s.orders {
		clone, err := cloneOrder(aggregate)
		if err != nil {
			return nil, err
		}
		out[id] = clone
	}

	return out, nil
}

// get returns a clone of one stored order, or nil when absent.
func (s *Store) get(id string) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	aggregate, ok := s.orders[id]
	if !ok {
		return nil, nil
	}

	return cloneOrder(aggregate)
}

// apply merges committed pending writes into the table.
func (s *Store) apply(pending map[string]*order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, aggregate := range pending {
		s.orders[id] = aggregate
	}
}

// cloneOrder deep-copies an aggregate through its restoration constructor,
// so store contents and caller-held references never alias.
func cloneOrder(aggregate *order.Order) (*order.Order, error) {
	var inDeliveryAt *time.Time
	if at := aggregate.InDeliveryAt(); at != nil {
		copied := *at
		inDeliveryAt = &copied
	}

	return order.RestoreOrder(
		aggregate.ID(),
		aggregate.ClientID(),
		aggregate.ClientName(),
		aggregate.ClientPhone(),
		aggregate.Address(),
		aggregate.City(),
		aggregate.Country(),
		aggregate.AttiekeType(),
		aggregate.Amount(),
		aggregate.DeliveryFee(),
		aggregate.Total(),
		aggregate.Status(),
		aggregate.CreatedAt(),
		inDeliveryAt,
	)
}
