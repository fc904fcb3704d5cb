package memory

import (
	"context"

	"attieke/internal/core/domain/model/order"
	"attieke/internal/core/ports"
)

// UnitOfWorkFactory creates in-memory unit of work instances over a shared
// store. Mirrors the postgres factory so composition can swap one for the
// other.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new unit of work with its own pending write buffer.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:   f.store,
		pending: make(map[string]*order.Order),
	}
}

// UnitOfWork buffers writes until Commit. Reads within the unit of work see
// its own pending writes first, then the shared store, which is the same
// read-your-writes behavior a database transaction provides.
type UnitOfWork struct {
	store   *Store
	pending map[string]*order.Order
	began   bool
}

// Begin marks the transaction as active. Repeated calls are safe.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	uow.began = true
	return nil
}

// Commit applies all pending writes to the shared store atomically.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.began {
		return ErrNoActiveTransaction
	}

	uow.store.apply(uow.pending)
	uow.pending = make(map[string]*order.Order)
	uow.began = false
	return nil
}

// Rollback discards all pending writes.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.began {
		return ErrNoActiveTransaction
	}

	uow.pending = make(map[string]*order.Order)
	uow.began = false
	return nil
}

// OrderRepository returns a repository view bound to this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &Repository{uow: uow}
}
