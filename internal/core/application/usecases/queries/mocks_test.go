package queries_test

import (
	"context"
	"testing"
	"time"

	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func storedOrder(t *testing.T, number, item string, createdAt time.Time) *order.Order {
	t.Helper()
	n, err := kernel.OrderNumberFromString(number)
	require.NoError(t, err)
	o, err := order.RestoreOrder(n, item, "present me", order.DefaultDeliveryRequest,
		order.MentalStateExpectant, "faith", createdAt, "shipping 🚀")
	require.NoError(t, err)
	return o
}
