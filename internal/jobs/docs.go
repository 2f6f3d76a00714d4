// Package jobs provides scheduled background tasks for the conversation
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the assistant.
//
// # Available Jobs
//
// 1. AbandonedOrderResetJob - Periodically drops the order slots of sessions
// that went silent without confirming, so a returning user starts from a
// clean slate.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(resetAbandonedHandler, threshold, logger)
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
// The sweep uses the cron expression "0 * * * * *": once a minute is
// frequent enough for an inactivity threshold measured in minutes.
package jobs
