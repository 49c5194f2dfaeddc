// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OverdueParcelReportJob - Reports parcels stuck in a non-final status
// past the configured age.
// 2. OrphanSweepJob - Reports address rows that no person or headquarters
// references anymore.
//
// Both jobs are read-only: they log their findings and leave cleanup to an
// operator. They are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(overdueHandler, orphanHandler, overdueAge, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
