package jobs

import (
	"context"
	"log/slog"
	"sync"

	"universestore/internal/core/application/usecases/commands"
	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/domain/services"
	"universestore/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DeliveryCompletionJob watches for orders whose delivery window has elapsed
// and announces their completion. Runs every minute.
//
// Announced order numbers are remembered in memory only: after a restart the
// job announces completed orders once more. That matches the at-least-once,
// best-effort character of the notification channel.
type DeliveryCompletionJob struct {
	orders  ports.OrderRepository
	handler commands.NotifyDeliveryCompleteCommandHandler
	clock   kernel.Clock
	cron    *cron.Cron
	logger  *slog.Logger

	// mu serializes sweeps: the cron runs every trigger in its own goroutine,
	// so a sweep that outlives the minute boundary would otherwise overlap the
	// next one, racing on announced and double-sending notifications.
	mu        sync.Mutex
	announced map[string]bool
}

// NewDeliveryCompletionJob creates a job that announces delivery completion.
func NewDeliveryCompletionJob(
	orders ports.OrderRepository,
	handler commands.NotifyDeliveryCompleteCommandHandler,
	clock kernel.Clock,
	logger *slog.Logger,
) *DeliveryCompletionJob {
	return &DeliveryCompletionJob{
		orders:    orders,
		handler:   handler,
		clock:     clock,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "delivery_completion_job"),
		announced: make(map[string]bool),
	}
}

// Start begins the delivery completion job, sweeping once per minute.
func (j *DeliveryCompletionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.RunOnce(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery completion job started (running every minute)")
	return nil
}

// Stop stops the delivery completion job.
func (j *DeliveryCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery completion job stopped")
}

// RunOnce performs a single sweep: every order whose delivery window has
// elapsed and that has not been announced by this process gets the delivered
// notification. Exposed so a sweep can be triggered outside the schedule.
// Concurrent calls are safe; sweeps run one at a time.
func (j *DeliveryCompletionJob) RunOnce(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	all, err := j.orders.Load(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery completion sweep failed to load orders", "error", err)
		return
	}

	now := j.clock()
	for _, o := range all {
		number := o.Number().String()
		if j.announced[number] {
			continue
		}
		if now.Sub(o.CreatedAt()) < services.TotalDeliveryDuration {
			continue
		}

		cmd, cmdErr := commands.NewNotifyDeliveryCompleteCommand(o.Number())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Delivery completion command rejected",
				"order_number", number, "error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Delivery completion announcement failed",
				"order_number", number, "error", handleErr)
			continue
		}

		j.announced[number] = true
		j.logger.InfoContext(ctx, "Delivery completion announced", "order_number", number)
	}
}
