package jobs

import (
	"context"
	"log/slog"
	"time"

	"attieke/internal/core/application/usecases/queries"
	"attieke/internal/core/domain/model/order"
	"attieke/internal/core/domain/services"
	"attieke/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DeliveryTrackingJob animates in-transit orders. Runs every second,
// derives the simulated vehicle position of each in-delivery order from
// its delivery clock anchor, and publishes a position event so connected
// tracking views move their markers.
//
// The job is read-only: it never mutates orders and a missed tick costs
// nothing, because the next tick recomputes positions from elapsed time.
type DeliveryTrackingJob struct {
	inDeliveryHandler queries.GetOrdersInDeliveryQueryHandler
	geocoder          services.Geocoder
	stream            ports.OrderStream
	cron              *cron.Cron
	logger            *slog.Logger
	now               func() time.Time
}

// NewDeliveryTrackingJob creates a job that publishes simulated positions
// for orders in delivery.
func NewDeliveryTrackingJob(
	inDeliveryHandler queries.GetOrdersInDeliveryQueryHandler,
	geocoder services.Geocoder,
	stream ports.OrderStream,
	logger *slog.Logger,
) *DeliveryTrackingJob {
	return &DeliveryTrackingJob{
		inDeliveryHandler: inDeliveryHandler,
		geocoder:          geocoder,
		stream:            stream,
		cron:              cron.New(cron.WithSeconds()),
		logger:            logger.With("component", "delivery_tracking_job"),
		now:               time.Now,
	}
}

// Start begins the tracking job to run every second.
func (j *DeliveryTrackingJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.tick(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Delivery tracking job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery tracking job started (running every second)")
	return nil
}

// Stop stops the tracking job.
func (j *DeliveryTrackingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery tracking job stopped")
}

// tick publishes one position event per in-delivery order.
func (j *DeliveryTrackingJob) tick(ctx context.Context) error {
	inDelivery, err := j.inDeliveryHandler.Handle(ctx, queries.NewGetOrdersInDeliveryQuery())
	if err != nil {
		return err
	}

	now := j.now().UTC()
	for _, transit := range inDelivery {
		origin := j.geocoder.Origin()
		destination := j.geocoder.Resolve(transit.City)
		duration := services.ClassifyTransport(transit.City, transit.Country).Duration()

		snapshot, snapErr := services.Snapshot(
			order.InDelivery,
			origin,
			destination,
			now.Sub(transit.InDeliveryAt),
			duration,
		)
		if snapErr != nil {
			j.logger.ErrorContext(ctx, "Position snapshot failed",
				"order_id", transit.ID.String(), "error", snapErr)
			continue
		}

		position := snapshot.Position
		j.stream.Publish(ports.OrderEvent{
			Kind:       ports.OrderPositionUpdated,
			OrderID:    transit.ID,
			ClientID:   transit.ClientID,
			Status:     order.InDelivery,
			Position:   &position,
			Fraction:   snapshot.Fraction,
			OccurredAt: now,
		})
	}

	return nil
}
