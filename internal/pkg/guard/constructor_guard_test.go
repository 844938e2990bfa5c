package guard_test

import (
	"errors"
	"testing"

	"universestore/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsage demonstrates embedding a guard in a value object
// to enforce constructor usage.
func TestConstructorGuardUsage(t *testing.T) {
	type receipt struct {
		total int
		guard guard.ConstructorGuard
	}

	errReceiptNotConstructed := errors.New("receipt must be created via newReceipt")

	newReceipt := func(total int) (receipt, error) {
		if total < 0 {
			return receipt{}, errors.New("total cannot be negative")
		}
		return receipt{total: total, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction", func(t *testing.T) {
		r, err := newReceipt(100)
		require.NoError(t, err)
		require.NoError(t, r.guard.Validate(errReceiptNotConstructed))
		assert.Equal(t, 100, r.total)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var r receipt
		err := r.guard.Validate(errReceiptNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errReceiptNotConstructed, err)
	})
}
