package queries

import (
	"context"
	"database/sql"
	"time"

	"attieke/internal/core/domain/model/order"
	"attieke/internal/core/domain/services"
	"attieke/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderTrackQueryHandler computes the tracking view for one order.
// It reads the minimal order state from the database and derives the frame
// with the pure simulation services, so repeated polls for the same elapsed
// time produce identical frames.
type GetOrderTrackQueryHandler struct {
	db       *gorm.DB
	geocoder services.Geocoder
	now      func() time.Time
}

// NewGetOrderTrackQueryHandler creates a handler for tracking view queries.
// Requires a GORM database connection and the destination geocoder.
func NewGetOrderTrackQueryHandler(db *gorm.DB, geocoder services.Geocoder) GetOrderTrackQueryHandler {
	return GetOrderTrackQueryHandler{
		db:       db,
		geocoder: geocoder,
		now:      time.Now,
	}
}

// Handle executes the query.
// Returns *errs.ObjectNotFoundError when no order matches the identifier.
func (h GetOrderTrackQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackQuery,
) (GetOrderTrackQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTrackQueryResponse{}, err
	}

	var (
		city         string
		country      string
		statusStr    string
		inDeliveryAt sql.NullTime
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			city,
			country,
			status,
			in_delivery_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	if err := row.Scan(&city, &country, &statusStr, &inDeliveryAt); err != nil {
		if isEmptyResult(err) {
			return GetOrderTrackQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return GetOrderTrackQueryResponse{}, errs.NewStoreUnavailableError("get order track", err)
	}

	status, err := order.ParseStatus(statusStr)
	if err != nil {
		return GetOrderTrackQueryResponse{}, err
	}

	origin := h.geocoder.Origin()
	destination := h.geocoder.Resolve(city)
	transport := services.ClassifyTransport(city, country)
	duration := transport.Duration()

	var elapsed time.Duration
	if inDeliveryAt.Valid {
		elapsed = h.now().UTC().Sub(inDeliveryAt.Time)
	}

	snapshot, err := services.Snapshot(status, origin, destination, elapsed, duration)
	if err != nil {
		return GetOrderTrackQueryResponse{}, err
	}

	return GetOrderTrackQueryResponse{
		OrderID:     query.OrderID(),
		Status:      status,
		Display:     status.DisplayInfo(),
		Transport:   transport,
		Origin:      origin,
		Destination: destination,
		Position:    snapshot.Position,
		Route:       snapshot.Route,
		Traversed:   snapshot.Traversed,
		Fraction:    snapshot.Fraction,
		Duration:    duration,
	}, nil
}
