// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// TruckDispatchJob periodically runs the truck dispatch command: the oldest
// draft shipment that carries cargo but has no truck gets the best-fit
// available truck. An empty backlog or an exhausted fleet is a normal idle
// outcome and is not logged as an error.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, "*/10 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The cron spec uses the six-field form with a seconds column.
package jobs
