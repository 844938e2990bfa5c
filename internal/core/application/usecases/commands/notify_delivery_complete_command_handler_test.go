package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"universestore/internal/core/application/usecases/commands"
	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/domain/model/order"
	"universestore/internal/core/domain/services"
	"universestore/internal/core/ports"
	"universestore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func placedOrder(t *testing.T, createdAt time.Time) *order.Order {
	t.Helper()
	number, err := kernel.NewOrderNumber(createdAt)
	require.NoError(t, err)
	o, err := order.NewOrder(number, "💪 A healthy body", "present me", "",
		order.MentalStateEarnest, "self-respect", createdAt)
	require.NoError(t, err)
	return o
}

func TestNotifyDeliveryCompleteCommandHandler_Handle_Delivered(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	o := placedOrder(t, createdAt)
	cmd, err := commands.NewNotifyDeliveryCompleteCommand(o.Number())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, o.Number()).Return(o, nil).Once()
	sender := new(MockNotificationSender)
	sender.On("Send", ctx, ports.NotificationDelivered, o.Number(), o.Item()).Return(nil).Once()

	h := commands.NewNotifyDeliveryCompleteCommandHandler(repo, sender,
		services.NewProgressCalculator(), fixedClock(createdAt.Add(3*time.Hour)), discardLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestNotifyDeliveryCompleteCommandHandler_Handle_NotYetDelivered(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	o := placedOrder(t, createdAt)
	cmd, err := commands.NewNotifyDeliveryCompleteCommand(o.Number())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, o.Number()).Return(o, nil).Once()
	sender := new(MockNotificationSender)

	h := commands.NewNotifyDeliveryCompleteCommandHandler(repo, sender,
		services.NewProgressCalculator(), fixedClock(createdAt.Add(time.Hour)), discardLogger())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderNotYetDelivered)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifyDeliveryCompleteCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := context.Background()
	number, err := kernel.OrderNumberFromString("UNIVERSE-1")
	require.NoError(t, err)
	cmd, err := commands.NewNotifyDeliveryCompleteCommand(number)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, number).Return(nil, errs.NewObjectNotFoundError("orderNumber", "UNIVERSE-1")).Once()
	sender := new(MockNotificationSender)

	h := commands.NewNotifyDeliveryCompleteCommandHandler(repo, sender,
		services.NewProgressCalculator(), time.Now, discardLogger())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNotifyDeliveryCompleteCommandHandler_Handle_SendFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	o := placedOrder(t, createdAt)
	cmd, err := commands.NewNotifyDeliveryCompleteCommand(o.Number())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, o.Number()).Return(o, nil).Once()
	sender := new(MockNotificationSender)
	sender.On("Send", ctx, ports.NotificationDelivered, o.Number(), o.Item()).
		Return(errors.New("timeout")).Once()

	h := commands.NewNotifyDeliveryCompleteCommandHandler(repo, sender,
		services.NewProgressCalculator(), fixedClock(createdAt.Add(4*time.Hour)), discardLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestNotifyDeliveryCompleteCommandHandler_Handle_EachCallResends(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	o := placedOrder(t, createdAt)
	cmd, err := commands.NewNotifyDeliveryCompleteCommand(o.Number())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, o.Number()).Return(o, nil)
	sender := new(MockNotificationSender)
	sender.On("Send", ctx, ports.NotificationDelivered, o.Number(), o.Item()).Return(nil)

	h := commands.NewNotifyDeliveryCompleteCommandHandler(repo, sender,
		services.NewProgressCalculator(), fixedClock(createdAt.Add(3*time.Hour)), discardLogger())

	require.NoError(t, h.Handle(ctx, cmd))
	require.NoError(t, h.Handle(ctx, cmd))

	sender.AssertNumberOfCalls(t, "Send", 2)
}
