// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the delivery tracking feature.
//
// # Available Jobs
//
// 1. DeliveryTrackingJob - Runs every second to publish simulated vehicle
// positions for orders in delivery
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(inDeliveryHandler, geocoder, stream, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The tracking job uses the cron expression "* * * * * *" which means it
// runs every second, matching the pacing of the map animation.
//
// # Error Handling
//
// The tracking job logs failures and moves on: positions are derived from
// elapsed time, so the next tick repairs any missed frame.
package jobs
