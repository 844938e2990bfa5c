package commands_test

import (
	"testing"
	"time"

	"universestore/internal/core/application/usecases/commands"
	"universestore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifyDeliveryCompleteCommand_ValidInput(t *testing.T) {
	number, err := kernel.NewOrderNumber(time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewNotifyDeliveryCompleteCommand(number)

	require.NoError(t, err)
	assert.True(t, cmd.OrderNumber().IsEqual(number))
}

func TestNewNotifyDeliveryCompleteCommand_InvalidNumber(t *testing.T) {
	var zero kernel.OrderNumber
	_, err := commands.NewNotifyDeliveryCompleteCommand(zero)
	require.Error(t, err)
}

func TestNotifyDeliveryCompleteCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.NotifyDeliveryCompleteCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.Equal(t, commands.ErrNotifyDeliveryCompleteCommandIsNotConstructed, err)
}
