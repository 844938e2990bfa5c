package jobs

import (
	"fmt"
	"log/slog"

	"universestore/internal/core/application/usecases/commands"
	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryCompletionJob *DeliveryCompletionJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	orders ports.OrderRepository,
	notifyHandler commands.NotifyDeliveryCompleteCommandHandler,
	clock kernel.Clock,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryCompletionJob: NewDeliveryCompletionJob(orders, notifyHandler, clock, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryCompletionJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery completion job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryCompletionJob.Stop()
}
