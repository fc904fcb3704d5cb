package jobs

import (
	"fmt"
	"log/slog"

	"attieke/internal/core/application/usecases/queries"
	"attieke/internal/core/domain/services"
	"attieke/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryTrackingJob *DeliveryTrackingJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	inDeliveryHandler queries.GetOrdersInDeliveryQueryHandler,
	geocoder services.Geocoder,
	stream ports.OrderStream,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryTrackingJob: NewDeliveryTrackingJob(inDeliveryHandler, geocoder, stream, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryTrackingJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery tracking job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryTrackingJob.Stop()
}
