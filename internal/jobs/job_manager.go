package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	truckDispatchJob *TruckDispatchJob
}

// NewJobManager creates a job manager wiring the dispatch handler to its
// schedule.
func NewJobManager(
	dispatchHandler commands.DispatchTrucksCommandHandler,
	dispatchSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		truckDispatchJob: NewTruckDispatchJob(dispatchHandler, dispatchSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.truckDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start truck dispatch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.truckDispatchJob.Stop()
}
