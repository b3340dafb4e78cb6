package jobs

import (
	"fmt"
	"log/slog"

	"galapagos/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shipmentCompletionJob *ShipmentCompletionJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	completeShipmentsHandler commands.CompleteShipmentsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shipmentCompletionJob: NewShipmentCompletionJob(completeShipmentsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shipmentCompletionJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment completion job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shipmentCompletionJob.Stop()
}
