package jobs

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// overdueReportSchedule runs the report hourly.
const overdueReportSchedule = "0 0 * * * *"

// OverdueParcelReportJob periodically lists parcels that are past their
// expected delivery date, or registered more than maxAge ago when no date
// was set, and still have not reached a final status. The job only reports;
// a stuck parcel needs an operator decision, not an automatic one.
type OverdueParcelReportJob struct {
	handler queries.GetOverdueParcelsQueryHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueParcelReportJob creates the job.
func NewOverdueParcelReportJob(handler queries.GetOverdueParcelsQueryHandler, maxAge time.Duration, logger *slog.Logger) *OverdueParcelReportJob {
	return &OverdueParcelReportJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_parcel_report_job"),
	}
}

// Start schedules the hourly report.
func (j *OverdueParcelReportJob) Start() error {
	_, err := j.cron.AddFunc(overdueReportSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue parcel report job started",
		"maxAge", j.maxAge.String())
	return nil
}

// Stop stops the job.
func (j *OverdueParcelReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue parcel report job stopped")
}

func (j *OverdueParcelReportJob) run() {
	ctx := context.Background()

	now := time.Now()
	query, err := queries.NewGetOverdueParcelsQuery(now, now.Add(-j.maxAge))
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue parcel report job failed to build query", "error", err)
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue parcel report job failed", "error", err)
		return
	}

	if len(overdue) == 0 {
		return
	}

	j.logger.WarnContext(ctx, "Overdue parcels found", "count", len(overdue))
	for _, p := range overdue {
		attrs := []any{
			"parcelId", p.ID,
			"trackingCode", p.TrackingCode,
			"status", p.Status,
			"registeredAt", p.RegisteredAt,
		}
		if p.ExpectedDelivery != nil {
			attrs = append(attrs, "expectedDelivery", *p.ExpectedDelivery)
		}
		j.logger.WarnContext(ctx, "Overdue parcel", attrs...)
	}
}
