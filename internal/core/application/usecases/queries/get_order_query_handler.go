package queries

import (
	"context"
	"database/sql"
	"errors"

	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/core/domain/model/order"
	"attieke/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderColumns is the shared select list scanned by scanOrderRow.
const orderColumns = `
	id,
	client_id,
	client_name,
	client_phone,
	address,
	city,
	country,
	attieke_type,
	amount,
	delivery_fee,
	total,
	status,
	created_at,
	in_delivery_at
`

// GetOrderQueryHandler retrieves a single order view from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns *errs.ObjectNotFoundError when no order matches the identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, errs.NewStoreUnavailableError("get order", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, errs.NewStoreUnavailableError("get order", err)
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, errs.NewStoreUnavailableError("get order", err)
	}

	return resp, nil
}

// scanOrderRow maps one row of the orderColumns select list to a response.
func scanOrderRow(rows *sql.Rows) (GetOrderQueryResponse, error) {
	var (
		resp         GetOrderQueryResponse
		id, clientID uuid.UUID
		statusStr    string
		inDeliveryAt sql.NullTime
	)

	err := rows.Scan(
		&id,
		&clientID,
		&resp.ClientName,
		&resp.ClientPhone,
		&resp.Address,
		&resp.City,
		&resp.Country,
		&resp.AttiekeType,
		&resp.Amount,
		&resp.DeliveryFee,
		&resp.Total,
		&statusStr,
		&resp.CreatedAt,
		&inDeliveryAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, errs.NewStoreUnavailableError("scan order row", err)
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID

	ownerID, err := kernel.UUIDFromBytes(clientID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ClientID = ownerID

	status, err := order.ParseStatus(statusStr)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Status = status

	if inDeliveryAt.Valid {
		at := inDeliveryAt.Time
		resp.InDeliveryAt = &at
	}

	return resp, nil
}

// isEmptyResult reports whether err represents an empty result rather than
// a failure.
func isEmptyResult(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound)
}
