package queries

import (
	"errors"

	"attieke/internal/pkg/guard"
)

var (
	ErrGetSalesStatsQueryIsNotConstructed = errors.New(
		"GetSalesStatsQuery must be created via NewGetSalesStatsQuery constructor",
	)
)

// GetSalesStatsQuery retrieves the seller dashboard aggregates.
//
// Example:
//
//	stats, err := handler.Handle(ctx, NewGetSalesStatsQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to get sales stats: %w", err)
//	}
//	fmt.Printf("revenue %d F CFA over %d orders\n", stats.Revenue, stats.OrderCount)
type GetSalesStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSalesStatsQuery creates a query for the sales dashboard.
// This is a parameterless query.
func NewGetSalesStatsQuery() GetSalesStatsQuery {
	return GetSalesStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSalesStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesStatsQueryIsNotConstructed)
}

// GetSalesStatsQueryResponse holds the dashboard aggregates.
// Revenue counts non-cancelled orders only; the breakdown maps count all
// orders so the seller sees cancellations in context.
type GetSalesStatsQueryResponse struct {
	Revenue      int
	OrderCount   int
	ClientCount  int
	OrdersByCity map[string]int
	OrdersByType map[string]int
}
