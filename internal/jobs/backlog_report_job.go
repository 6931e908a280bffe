// Package jobs runs scheduled background tasks for the fulfillment service.
package jobs

import (
	"fmt"

	"github.com/guttosm/drone-fulfillment/internal/logger"
	"github.com/guttosm/drone-fulfillment/internal/metrics"
	"github.com/robfig/cron/v3"
)

// DefaultBacklogReportSchedule runs the report once a minute.
const DefaultBacklogReportSchedule = "0 * * * * *"

// BacklogSource exposes the backlog depth.
type BacklogSource interface {
	BacklogStats() (fragments, units int)
}

// BacklogReportJob periodically logs how much demand is waiting for stock
// and refreshes the backlog gauges.
type BacklogReportJob struct {
	source   BacklogSource
	schedule string
	cron     *cron.Cron
}

// NewBacklogReportJob creates the job. An empty schedule uses
// DefaultBacklogReportSchedule.
func NewBacklogReportJob(source BacklogSource, schedule string) *BacklogReportJob {
	if schedule == "" {
		schedule = DefaultBacklogReportSchedule
	}
	return &BacklogReportJob{
		source:   source,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
	}
}

// Start schedules the report and starts the cron runner.
func (j *BacklogReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Report); err != nil {
		return fmt.Errorf("schedule backlog report %q: %w", j.schedule, err)
	}
	j.cron.Start()

	log := logger.Logger()
	log.Info().Str("schedule", j.schedule).Msg("Backlog report job started")
	return nil
}

// Report logs the current backlog once.
func (j *BacklogReportJob) Report() {
	fragments, units := j.source.BacklogStats()
	metrics.SetBacklogDepth(fragments, units)

	log := logger.Logger()
	event := log.Info()
	if fragments > 0 {
		event = log.Warn()
	}
	event.
		Int("fragments", fragments).
		Int("deferred_units", units).
		Msg("Backlog report")
}

// Stop stops scheduling and waits for a running report to finish.
func (j *BacklogReportJob) Stop() {
	<-j.cron.Stop().Done()

	log := logger.Logger()
	log.Info().Msg("Backlog report job stopped")
}
