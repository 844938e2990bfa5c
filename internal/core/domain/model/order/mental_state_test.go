package order_test

import (
	"testing"

	"universestore/internal/core/domain/model/order"
	"universestore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMentalState_Validate(t *testing.T) {
	t.Run("accepts_all_fixed_states", func(t *testing.T) {
		for _, state := range order.AllMentalStates() {
			require.NoError(t, state.Validate())
		}
	})

	t.Run("rejects_unknown_state", func(t *testing.T) {
		err := order.MentalState("mild panic").Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_empty_state", func(t *testing.T) {
		err := order.MentalState("").Validate()
		require.Error(t, err)
	})
}

func TestAllMentalStates(t *testing.T) {
	states := order.AllMentalStates()

	assert.Len(t, states, 4)
	assert.Equal(t, order.MentalStateAlreadyReceived, states[0])
}

func TestMentalState_String(t *testing.T) {
	assert.Equal(t, "calm certainty", order.MentalStateCalmCertainty.String())
}
