package jobs

import (
	"context"
	"log/slog"
	"time"

	"galapagos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ShipmentCompletionJob periodically finishes shipments whose estimated
// date has passed, transitioning them and their orders to delivered and
// returning their lockers to the pool.
type ShipmentCompletionJob struct {
	handler commands.CompleteShipmentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewShipmentCompletionJob creates a job that completes due shipments.
// Uses CompleteShipmentsCommandHandler to process completions every minute.
func NewShipmentCompletionJob(handler commands.CompleteShipmentsCommandHandler, logger *slog.Logger) *ShipmentCompletionJob {
	return &ShipmentCompletionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "shipment_completion_job"),
	}
}

// Start begins the shipment completion job to run every minute.
func (j *ShipmentCompletionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCompleteShipmentsCommand(time.Now().UTC())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Shipment completion job failed to build command", "error", cmdErr)
			return
		}

		delivered, handleErr := j.handler.Handle(ctx, cmd)
		if delivered > 0 {
			j.logger.InfoContext(ctx, "Shipments delivered", "count", delivered)
		}
		// A non-nil error alongside a positive count means lockers failed
		// to release after the deliveries committed.
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Shipment completion job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment completion job started (running every minute)")
	return nil
}

// Stop stops the shipment completion job.
func (j *ShipmentCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment completion job stopped")
}
