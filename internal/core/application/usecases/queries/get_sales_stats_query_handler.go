package queries

import (
	"context"

	"attieke/internal/core/domain/model/order"
	"attieke/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetSalesStatsQueryHandler computes the seller dashboard aggregates from
// the database. Aggregation happens in SQL; an empty store produces zeroes
// and empty maps, not an error.
type GetSalesStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetSalesStatsQueryHandler creates a handler for dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetSalesStatsQueryHandler(db *gorm.DB) GetSalesStatsQueryHandler {
	return GetSalesStatsQueryHandler{db: db}
}

// Handle executes the aggregate queries.
func (h GetSalesStatsQueryHandler) Handle(
	ctx context.Context,
	query GetSalesStatsQuery,
) (GetSalesStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSalesStatsQueryResponse{}, err
	}

	resp := GetSalesStatsQueryResponse{
		OrdersByCity: make(map[string]int),
		OrdersByType: make(map[string]int),
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total) FILTER (WHERE status != ?), 0),
			COUNT(*),
			COUNT(DISTINCT client_id)
		FROM orders
	`, order.Cancelled.String()).Row()

	if err := row.Scan(&resp.Revenue, &resp.OrderCount, &resp.ClientCount); err != nil {
		if isEmptyResult(err) {
			return resp, nil
		}
		return GetSalesStatsQueryResponse{}, errs.NewStoreUnavailableError("get sales stats", err)
	}

	if err := h.groupCounts(ctx, "city", resp.OrdersByCity); err != nil {
		return GetSalesStatsQueryResponse{}, err
	}

	if err := h.groupCounts(ctx, "attieke_type", resp.OrdersByType); err != nil {
		return GetSalesStatsQueryResponse{}, err
	}

	return resp, nil
}

// groupCounts fills dst with order counts grouped by the given column.
// The column name comes from a fixed internal set, never from user input.
func (h GetSalesStatsQueryHandler) groupCounts(
	ctx context.Context,
	column string,
	dst map[string]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + column + `, COUNT(*)
		FROM orders
		GROUP BY ` + column + `
	`).Rows()
	if err != nil {
		return errs.NewStoreUnavailableError("group order counts", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err = rows.Scan(&key, &count); err != nil {
			return errs.NewStoreUnavailableError("group order counts", err)
		}
		dst[key] = count
	}

	if err = rows.Err(); err != nil {
		return errs.NewStoreUnavailableError("group order counts", err)
	}

	return nil
}
