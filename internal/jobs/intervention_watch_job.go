// Package jobs runs the engine's background work on cron schedules:
// watching for shipments stuck in the intervention state and sweeping
// stale tracking snapshots.
package jobs

import (
	"context"
	"log/slog"

	"couriernet/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// InterventionWatchJob periodically surfaces orders parked in the
// intervention state so dispatchers act on them. It only observes and
// logs; resolving an intervention stays a manual override.
type InterventionWatchJob struct {
	handler queries.GetOpenInterventionsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewInterventionWatchJob creates the watch job.
func NewInterventionWatchJob(handler queries.GetOpenInterventionsQueryHandler, logger *slog.Logger) *InterventionWatchJob {
	return &InterventionWatchJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "intervention_watch_job"),
	}
}

// Start schedules the watch to run every minute.
func (j *InterventionWatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		interventions, err := j.handler.Handle(ctx, queries.NewGetOpenInterventionsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "intervention watch failed", "error", err)
			return
		}

		for _, entry := range interventions {
			j.logger.WarnContext(ctx, "order awaiting dispatcher decision",
				"orderCode", entry.OrderCode,
				"since", entry.Since,
			)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "intervention watch started (running every minute)")
	return nil
}

// Stop stops the watch.
func (j *InterventionWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "intervention watch stopped")
}
