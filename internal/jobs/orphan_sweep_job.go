package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// orphanSweepSchedule runs the sweep daily at 03:00.
const orphanSweepSchedule = "0 0 3 * * *"

// OrphanSweepJob periodically lists address rows nothing references. Failed
// multi-step writes keep the address on purpose, so a small number of
// orphans is normal; the sweep keeps them visible.
type OrphanSweepJob struct {
	handler queries.GetOrphanedAddressesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrphanSweepJob creates the job.
func NewOrphanSweepJob(handler queries.GetOrphanedAddressesQueryHandler, logger *slog.Logger) *OrphanSweepJob {
	return &OrphanSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "orphan_sweep_job"),
	}
}

// Start schedules the daily sweep.
func (j *OrphanSweepJob) Start() error {
	_, err := j.cron.AddFunc(orphanSweepSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Orphan sweep job started")
	return nil
}

// Stop stops the job.
func (j *OrphanSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Orphan sweep job stopped")
}

func (j *OrphanSweepJob) run() {
	ctx := context.Background()

	orphans, err := j.handler.Handle(ctx, queries.NewGetOrphanedAddressesQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Orphan sweep job failed", "error", err)
		return
	}

	if len(orphans) == 0 {
		return
	}

	j.logger.InfoContext(ctx, "Orphaned addresses found", "count", len(orphans))
	for _, a := range orphans {
		j.logger.InfoContext(ctx, "Orphaned address",
			"addressId", a.ID,
			"postalCode", a.PostalCode,
			"city", a.City,
		)
	}
}
