package queries

import (
	"context"
	"database/sql"

	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/core/domain/model/order"
	"attieke/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersInDeliveryQueryHandler retrieves in-transit orders from the
// database. Orders without a delivery clock anchor are skipped: the
// simulator cannot place them on a route.
type GetOrdersInDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersInDeliveryQueryHandler creates a handler for in-transit order queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersInDeliveryQueryHandler(db *gorm.DB) GetOrdersInDeliveryQueryHandler {
	return GetOrdersInDeliveryQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders in delivery.
// Results are sorted by order ID for consistent output.
func (h GetOrdersInDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersInDeliveryQuery,
) ([]GetOrdersInDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersInDeliveryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			city,
			country,
			in_delivery_at
		FROM orders
		WHERE status = ? AND in_delivery_at IS NOT NULL
		ORDER BY id
	`, order.InDelivery.String()).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("list orders in delivery", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp         GetOrdersInDeliveryQueryResponse
			id, clientID uuid.UUID
			inDeliveryAt sql.NullTime
		)

		err = rows.Scan(&id, &clientID, &resp.City, &resp.Country, &inDeliveryAt)
		if err != nil {
			return nil, errs.NewStoreUnavailableError("list orders in delivery", err)
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(clientID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ClientID = ownerID

		resp.InDeliveryAt = inDeliveryAt.Time
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreUnavailableError("list orders in delivery", err)
	}

	return orders, nil
}
