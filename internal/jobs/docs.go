// Package jobs provides scheduled background tasks for the marketplace core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the transaction lifecycle.
//
// # Available Jobs
//
// 1. PendingRequestsDigestJob - Runs every 15 minutes to log the seller
// onboarding backlog so stuck applications are noticed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(pendingRequestsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
