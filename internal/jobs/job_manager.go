package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	overdueParcelReportJob *OverdueParcelReportJob
	orphanSweepJob         *OrphanSweepJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	overdueHandler queries.GetOverdueParcelsQueryHandler,
	orphanHandler queries.GetOrphanedAddressesQueryHandler,
	overdueAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueParcelReportJob: NewOverdueParcelReportJob(overdueHandler, overdueAge, logger),
		orphanSweepJob:         NewOrphanSweepJob(orphanHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueParcelReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue parcel report job: %w", err)
	}

	if err := jm.orphanSweepJob.Start(); err != nil {
		jm.overdueParcelReportJob.Stop()
		return fmt.Errorf("failed to start orphan sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.orphanSweepJob.Stop()
	jm.overdueParcelReportJob.Stop()
}
