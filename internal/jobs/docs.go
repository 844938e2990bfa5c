// Package jobs provides scheduled background tasks for the store.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. DeliveryCompletionJob - Runs every minute to find orders that crossed
// 100% delivery progress and push the delivered notification for them.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(repo, notifyHandler, calculator, clock, logger)
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
// The completion job uses the cron expression "0 * * * * *", running at the
// top of every minute. Delivery progress moves in whole-percent steps over
// three hours, so minute granularity announces completion promptly without
// rescanning the store every second.
//
// # Error Handling
//
// A store read failure is logged and the sweep retried on the next tick.
// Announcements themselves are single-attempt: a transport failure is logged
// by the command handler and the order is still marked announced, matching
// the fire-and-forget contract of the notification channel.
package jobs
