package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionOrderStatus(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusDelivering, false},
		{OrderStatusConfirmed, OrderStatusPreparing, true},
		{OrderStatusConfirmed, OrderStatusDelivering, true}, // preparing can be skipped
		{OrderStatusPreparing, OrderStatusDelivering, true},
		{OrderStatusPreparing, OrderStatusConfirmed, false},
		{OrderStatusDelivering, OrderStatusDelivered, true},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusConfirmed, false},
		{OrderStatus("UNKNOWN"), OrderStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransitionOrderStatus(tt.from, tt.to))
		})
	}
}

func TestValidateOrderTransition(t *testing.T) {
	assert.NoError(t, ValidateOrderTransition(OrderStatusPending, OrderStatusConfirmed))

	err := ValidateOrderTransition(OrderStatusDelivered, OrderStatusPending)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status transition")
}

func TestCancellableFromEveryNonTerminalState(t *testing.T) {
	for _, from := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusDelivering} {
		assert.True(t, CanTransitionOrderStatus(from, OrderStatusCancelled), "should cancel from %s", from)
	}
}
