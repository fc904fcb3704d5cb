package memory

import (
	"context"

	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/core/domain/model/order"
	"attieke/internal/pkg/errs"
)

// Repository implements OrderRepository over an in-memory unit of work.
// Writes land in the unit of work's pending buffer; reads see pending
// writes first, then the shared store.
type Repository struct {
	uow *UnitOfWork
}

// Add stages a new order. Fails on duplicate identifiers, matching the
// primary key constraint of the postgres implementation.
func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, staged := r.uow.pending[key]; staged {
		return ErrOrderAlreadyExists
	}

	existing, err := r.uow.store.get(key)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrOrderAlreadyExists
	}

	clone, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.uow.pending[key] = clone
	return nil
}

// Update stages changes to an existing order.
func (r *Repository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, staged := r.uow.pending[key]; !staged {
		existing, err := r.uow.store.get(key)
		if err != nil {
			return err
		}
		if existing == nil {
			return errs.NewObjectNotFoundError("order", key)
		}
	}

	clone, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.uow.pending[key] = clone
	return nil
}

// Get retrieves an order by ID, pending writes first.
func (r *Repository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	key := id.String()
	if staged, ok := r.uow.pending[key]; ok {
		return cloneOrder(staged)
	}

	aggregate, err := r.uow.store.get(key)
	if err != nil {
		return nil, err
	}
	if aggregate == nil {
		return nil, errs.NewObjectNotFoundError("order", key)
	}

	return aggregate, nil
}

// GetByClient retrieves all orders placed by a client.
func (r *Repository) GetByClient(ctx context.Context, clientID kernel.UUID) ([]*order.Order, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	return r.filter(func(aggregate *order.Order) bool {
		return aggregate.ClientID().IsEqual(clientID)
	})
}

// GetAllInStatus retrieves all orders currently in the given status.
func (r *Repository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return r.filter(func(aggregate *order.Order) bool {
		return aggregate.Status() == status
	})
}

// filter merges the store view with pending writes and keeps the orders
// matching the predicate.
func (r *Repository) filter(keep func(*order.Order) bool) ([]*order.Order, error) {
	merged, err := r.uow.store.snapshot()
	if err != nil {
		return nil, err
	}

	for key, staged := range r.uow.pending {
		clone, cloneErr := cloneOrder(staged)
		if cloneErr != nil {
			return nil, cloneErr
		}
		merged[key] = clone
	}

	orders := make([]*order.Order, 0, len(merged))
	for _, aggregate := range merged {
		if keep(aggregate) {
			orders = append(orders, aggregate)
		}
	}

	return orders, nil
}
