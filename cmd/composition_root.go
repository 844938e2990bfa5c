package cmd

import (
	"log/slog"
	"time"

	"universestore/internal/adapters/out/jsonstore"
	"universestore/internal/adapters/out/telegram"
	"universestore/internal/core/application/usecases/commands"
	"universestore/internal/core/application/usecases/queries"
	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/domain/services"
	"universestore/internal/core/ports"
	"universestore/internal/jobs"
)

// CompositionRoot wires the adapters to the application layer. All handlers
// share one repository, one notification client, and the real clock.
type CompositionRoot struct {
	orders        ports.OrderRepository
	notifications ports.NotificationSender
	calculator    services.ProgressCalculator
	clock         kernel.Clock
	logger        *slog.Logger
}

func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	orders, err := jsonstore.NewRepository(config.OrdersFilePath)
	if err != nil {
		return CompositionRoot{}, err
	}

	notifications, err := telegram.NewClient(config.TelegramToken, config.TelegramChatID, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		orders:        orders,
		notifications: notifications,
		calculator:    services.NewProgressCalculator(),
		clock:         time.Now,
		logger:        logger,
	}, nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orders, c.notifications, c.clock, c.logger)
}

func (c *CompositionRoot) CreateNotifyDeliveryCompleteCommandHandler() commands.NotifyDeliveryCompleteCommandHandler {
	return commands.NewNotifyDeliveryCompleteCommandHandler(
		c.orders, c.notifications, c.calculator, c.clock, c.logger)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders, c.calculator, c.clock)
}

func (c *CompositionRoot) CreateGetOrderProgressQueryHandler() queries.GetOrderProgressQueryHandler {
	return queries.NewGetOrderProgressQueryHandler(c.orders, c.calculator, c.clock)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.orders,
		c.CreateNotifyDeliveryCompleteCommandHandler(),
		c.clock,
		c.logger,
	)
}
