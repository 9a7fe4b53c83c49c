package jobs

import (
	"fmt"
	"log/slog"

	"couriernet/internal/core/application/usecases/queries"
	"couriernet/internal/core/ports"
)

// JobManager coordinates the scheduled jobs behind one start/stop pair.
type JobManager struct {
	interventionWatchJob *InterventionWatchJob
	trackingSweepJob     *TrackingSweepJob
}

// NewJobManager creates a job manager with all background jobs wired.
func NewJobManager(
	openInterventionsHandler queries.GetOpenInterventionsQueryHandler,
	changedOrderCodesHandler queries.GetChangedOrderCodesQueryHandler,
	trackingCache ports.TrackingCache,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		interventionWatchJob: NewInterventionWatchJob(openInterventionsHandler, logger),
		trackingSweepJob:     NewTrackingSweepJob(changedOrderCodesHandler, trackingCache, logger),
	}
}

// StartAll starts every scheduled job, stopping already started jobs
// when a later one fails.
func (jm *JobManager) StartAll() error {
	if err := jm.interventionWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start intervention watch job: %w", err)
	}

	if err := jm.trackingSweepJob.Start(); err != nil {
		jm.interventionWatchJob.Stop()
		return fmt.Errorf("failed to start tracking sweep job: %w", err)
	}

	return nil
}

// StopAll stops every scheduled job.
func (jm *JobManager) StopAll() {
	jm.trackingSweepJob.Stop()
	jm.interventionWatchJob.Stop()
}
