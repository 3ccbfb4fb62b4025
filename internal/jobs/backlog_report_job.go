package jobs

import (
	"context"
	"log/slog"
	"time"

	"tradematch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

const backlogReportSchedule = "*/5 * * * *"

// BacklogReportJob periodically reports the unclaimed order backlog.
// Read-only: it never mutates orders, only makes the pile visible.
type BacklogReportJob struct {
	handler queries.GetUnclaimedBacklogQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBacklogReportJob creates a job reporting the backlog every five minutes.
func NewBacklogReportJob(handler queries.GetUnclaimedBacklogQueryHandler, logger *slog.Logger) *BacklogReportJob {
	return &BacklogReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "backlog_report_job"),
	}
}

// Start begins the periodic backlog report.
func (j *BacklogReportJob) Start() error {
	_, err := j.cron.AddFunc(backlogReportSchedule, func() {
		ctx := context.Background()

		report, reportErr := j.handler.Handle(ctx, queries.NewGetUnclaimedBacklogQuery())
		if reportErr != nil {
			j.logger.ErrorContext(ctx, "Backlog report job failed", "error", reportErr)
			return
		}

		if report.Count == 0 {
			j.logger.InfoContext(ctx, "No unclaimed orders")
			return
		}

		j.logger.InfoContext(ctx, "Unclaimed order backlog",
			"count", report.Count,
			"oldest_age", time.Since(*report.OldestCreatedAt).Round(time.Second).String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog report job started (running every five minutes)")
	return nil
}

// Stop stops the backlog report job.
func (j *BacklogReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog report job stopped")
}
