package queries

import (
	"errors"

	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/pkg/guard"
)

var (
	ErrGetClientOrdersQueryIsNotConstructed = errors.New(
		"GetClientOrdersQuery must be created via NewGetClientOrdersQuery constructor",
	)
)

// GetClientOrdersQuery retrieves the order history of one customer,
// newest first. Cancelled orders are included: they remain part of the
// history and are never physically removed.
//
// Example:
//
//	query, err := NewGetClientOrdersQuery(clientID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get client orders: %w", err)
//	}
//	fmt.Printf("client has %d orders\n", len(orders))
type GetClientOrdersQuery struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClientOrdersQuery creates a query for a customer's order history.
func NewGetClientOrdersQuery(clientID kernel.UUID) (GetClientOrdersQuery, error) {
	q := GetClientOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setClientID(clientID); err != nil {
		return GetClientOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClientOrdersQueryIsNotConstructed)
}

// ClientID returns the customer whose history is requested.
func (q GetClientOrdersQuery) ClientID() kernel.UUID {
	return q.clientID
}

func (q *GetClientOrdersQuery) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	q.clientID = clientID
	return nil
}
