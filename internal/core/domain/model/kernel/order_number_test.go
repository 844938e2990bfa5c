package kernel_test

import (
	"strings"
	"testing"
	"time"

	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	t.Run("encodes_creation_unix_time", func(t *testing.T) {
		createdAt := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

		number, err := kernel.NewOrderNumber(createdAt)

		require.NoError(t, err)
		require.NoError(t, number.Validate())
		assert.True(t, strings.HasPrefix(number.String(), "UNIVERSE-1735725600-"))
	})

	t.Run("zero_time_is_rejected", func(t *testing.T) {
		_, err := kernel.NewOrderNumber(time.Time{})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("numbers_are_unique_within_the_same_second", func(t *testing.T) {
		createdAt := time.Now()
		seen := make(map[string]bool)

		for i := 0; i < 100; i++ {
			number, err := kernel.NewOrderNumber(createdAt)
			require.NoError(t, err)
			assert.False(t, seen[number.String()], "duplicate order number %s", number)
			seen[number.String()] = true
		}
	})

	t.Run("numbers_sort_by_creation_time", func(t *testing.T) {
		earlier, err := kernel.NewOrderNumber(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		later, err := kernel.NewOrderNumber(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		assert.Less(t, earlier.String(), later.String())
	})
}

func TestOrderNumberFromString(t *testing.T) {
	t.Run("accepts_legacy_numbers", func(t *testing.T) {
		number, err := kernel.OrderNumberFromString("UNIVERSE-1727000000")

		require.NoError(t, err)
		require.NoError(t, number.Validate())
		assert.Equal(t, "UNIVERSE-1727000000", number.String())
	})

	t.Run("rejects_blank_input", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\t"} {
			_, err := kernel.OrderNumberFromString(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})
}

func TestOrderNumber_IsEqual(t *testing.T) {
	a, err := kernel.OrderNumberFromString("UNIVERSE-1-x")
	require.NoError(t, err)
	b, err := kernel.OrderNumberFromString("UNIVERSE-1-x")
	require.NoError(t, err)
	c, err := kernel.OrderNumberFromString("UNIVERSE-2-y")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestOrderNumber_Validate(t *testing.T) {
	var zero kernel.OrderNumber
	err := zero.Validate()
	require.Error(t, err)
	assert.Equal(t, kernel.ErrOrderNumberIsNotConstructed, err)
}
