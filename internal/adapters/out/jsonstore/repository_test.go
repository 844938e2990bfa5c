package jsonstore_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"universestore/internal/adapters/out/jsonstore"
	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/domain/model/order"
	"universestore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*jsonstore.Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders_history.json")
	repo, err := jsonstore.NewRepository(path)
	require.NoError(t, err)
	return repo, path
}

func newOrder(t *testing.T, item string, createdAt time.Time) *order.Order {
	t.Helper()
	number, err := kernel.NewOrderNumber(createdAt)
	require.NoError(t, err)
	o, err := order.NewOrder(number, item, "cloud nine, 7th floor", "ring the doorbell twice",
		order.MentalStateExpectant, "a sincere heart", createdAt)
	require.NoError(t, err)
	return o
}

func TestNewRepository_EmptyPath(t *testing.T) {
	_, err := jsonstore.NewRepository("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRepository_Load_MissingFile(t *testing.T) {
	repo, _ := newTestRepository(t)

	orders, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestRepository_AppendThenLoad(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)
	createdAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)

	first := newOrder(t, "🏠 Dream home", createdAt)
	second := newOrder(t, "💰 Monthly income of 10 million", createdAt.Add(time.Minute))
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	orders, err := repo.Load(ctx)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.True(t, orders[0].Number().IsEqual(first.Number()))
	assert.Equal(t, "🏠 Dream home", orders[0].Item())
	assert.Equal(t, "cloud nine, 7th floor", orders[0].Address())
	assert.Equal(t, "ring the doorbell twice", orders[0].DeliveryRequest())
	assert.Equal(t, order.MentalStateExpectant, orders[0].MentalState())
	assert.Equal(t, "a sincere heart", orders[0].Price())
	assert.True(t, orders[0].CreatedAt().Equal(createdAt))
	assert.True(t, orders[1].Number().IsEqual(second.Number()))
}

func TestRepository_Append_DuplicateNumber(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)
	o := newOrder(t, "item", time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local))

	require.NoError(t, repo.Append(ctx, o))
	err := repo.Append(ctx, o)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRepository_Append_NotConstructedOrder(t *testing.T) {
	repo, path := newTestRepository(t)

	err := repo.Append(context.Background(), &order.Order{})

	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestRepository_Get(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)
	o := newOrder(t, "✈️ World travel ticket", time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local))
	require.NoError(t, repo.Append(ctx, o))

	found, err := repo.Get(ctx, o.Number())

	require.NoError(t, err)
	assert.Equal(t, "✈️ World travel ticket", found.Item())
}

func TestRepository_Get_Unknown(t *testing.T) {
	repo, _ := newTestRepository(t)
	number, err := kernel.OrderNumberFromString("UNIVERSE-404-x")
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), number)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRepository_Load_CorruptFile(t *testing.T) {
	repo, path := newTestRepository(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := repo.Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStorage)
}

// Records written by earlier versions lack the delivery_request field and may
// carry labels outside the current vocabulary. They must still load.
func TestRepository_Load_LegacyRecord(t *testing.T) {
	repo, path := newTestRepository(t)
	legacy := `[
  {
    "order_num": "UNIVERSE-1735725600",
    "item": "🏠 꿈에 그리던 집",
    "address": "구름 위 궁전",
    "state": "기대돼요",
    "price": "마음의 평화",
    "date": "2025-01-01 19:00:00",
    "status": "배송 중 🚀"
  }
]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	orders, err := repo.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "UNIVERSE-1735725600", orders[0].Number().String())
	assert.Equal(t, "🏠 꿈에 그리던 집", orders[0].Item())
	assert.Equal(t, order.DefaultDeliveryRequest, orders[0].DeliveryRequest())
	assert.Equal(t, "배송 중 🚀", orders[0].StatusLabel())
}

// The file stays a readable document: indented, with raw non-ASCII text.
func TestRepository_FileIsHumanReadable(t *testing.T) {
	ctx := context.Background()
	repo, path := newTestRepository(t)
	o := newOrder(t, "🌙 A piece of the moon", time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local))
	require.NoError(t, repo.Append(ctx, o))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), "🌙 A piece of the moon")
	assert.Contains(t, string(data), "\n  {\n")
	assert.Contains(t, string(data), `"status": "shipping 🚀"`)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "2025-03-01 09:00:00", raw[0]["date"])
}

func TestRepository_Append_PreservesExistingRecords(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)
	createdAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append(ctx, newOrder(t, "item", createdAt.Add(time.Duration(i)*time.Second))))
	}

	orders, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 5)
}
