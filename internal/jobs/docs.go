// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. TariffRefreshJob - Periodically re-reads the tariff file and swaps in a
// fresh pricing snapshot, so rate changes reach quote calculation without a
// restart.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required collaborators
//	jobManager := jobs.NewJobManager(tariffProvider, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and the previous tariff snapshot stays active;
// quotes keep flowing on the last good rate card.
package jobs
