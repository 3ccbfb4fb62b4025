package jobs

import (
	"fmt"
	"log/slog"

	"tradematch/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	backlogReportJob *BacklogReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	backlogHandler queries.GetUnclaimedBacklogQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		backlogReportJob: NewBacklogReportJob(backlogHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.backlogReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start backlog report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.backlogReportJob.Stop()
}
