package jobs

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// TruckDispatchJob periodically binds best-fit trucks to draft shipments
// that already carry cargo but have no truck yet.
type TruckDispatchJob struct {
	handler commands.DispatchTrucksCommandHandler
	cron    *cron.Cron
	spec    string
	logger  *slog.Logger
}

// NewTruckDispatchJob creates a dispatch job running on the given cron
// spec (with seconds field, e.g. "*/10 * * * * *").
func NewTruckDispatchJob(
	handler commands.DispatchTrucksCommandHandler,
	spec string,
	logger *slog.Logger,
) *TruckDispatchJob {
	return &TruckDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		spec:    spec,
		logger:  logger.With("component", "truck_dispatch_job"),
	}
}

// Start begins the dispatch job on its schedule.
func (j *TruckDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		cmd := commands.NewDispatchTrucksCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty backlog and an exhausted fleet are idle outcomes,
			// not failures.
			if errors.Is(err, commands.ErrNoShipmentAwaitingTruck) ||
				errors.Is(err, services.ErrNoSuitableTruck) {
				return
			}
			j.logger.ErrorContext(ctx, "Truck dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Truck dispatch job started", "spec", j.spec)
	return nil
}

// Stop stops the dispatch job.
func (j *TruckDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Truck dispatch job stopped")
}
