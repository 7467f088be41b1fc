// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for round orchestration.
//
// # Available Jobs
//
// 1. SuggestionExpiryJob - Runs every 30 seconds to expire unclaimed suggested
// rounds whose expiry timestamp has passed, returning their orders to the
// individually eligible pool
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireSuggestionsHandler, logger)
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
// The expiry job uses the cron expression "*/30 * * * * *" which means it runs
// every 30 seconds. Expiry only ever moves suggestions forward in their
// lifecycle, so a sweep arriving late is harmless.
//
// # Error Handling
//
// The expiry job logs all errors as they indicate system issues. A sweep that
// expires zero suggestions is the normal case and is not logged.
package jobs
