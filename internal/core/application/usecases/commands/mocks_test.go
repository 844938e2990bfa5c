package commands_test

import (
	"context"
	"io"
	"log/slog"

	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/domain/model/order"
	"universestore/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Load(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Append(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockNotificationSender struct{ mock.Mock }

func (m *MockNotificationSender) Send(
	ctx context.Context, kind ports.NotificationKind, number kernel.OrderNumber, item string,
) error {
	args := m.Called(ctx, kind, number, item)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
