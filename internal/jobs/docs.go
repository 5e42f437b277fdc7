// Package jobs provides scheduled background tasks for the boutique service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The jobs only read; they report what needs attention in the structured log.
//
// # Available Jobs
//
// 1. AlertsJob - logs the dashboard alerts (overdue orders, orders due within a day)
// 2. DueSoonJob - logs every active work order expected within the next 24 hours
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dashboardHandler, bucketHandler, "0 0 * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field. DefaultSchedule
// runs at the start of every hour.
//
// # Error Handling
//
// - Failed evaluations are logged and retried at the next tick
// - Failed job starts will stop any already running jobs
package jobs
