package queries

import (
	"context"

	"attieke/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetClientOrdersQueryHandler retrieves one customer's orders from the
// database, newest first. An unknown client is not an error: it simply has
// an empty history.
type GetClientOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetClientOrdersQueryHandler creates a handler for client history queries.
// Requires a GORM database connection for query execution.
func NewGetClientOrdersQueryHandler(db *gorm.DB) GetClientOrdersQueryHandler {
	return GetClientOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the order views sorted by creation
// time descending.
func (h GetClientOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetClientOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE client_id = ?
		ORDER BY created_at DESC, id
	`, query.ClientID().String()).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("list client orders", err)
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreUnavailableError("list client orders", err)
	}

	return orders, nil
}
