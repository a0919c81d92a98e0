package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderForwardChain(t *testing.T) {
	o := &Order{Status: OrderReceived}

	chain := []OrderStatus{
		OrderCutting, OrderStitching, OrderQualityCheck,
		OrderPressing, OrderReady, OrderDelivered,
	}
	for _, next := range chain {
		require.NoError(t, o.TransitionTo(next))
		require.Equal(t, next, o.Status)
	}
	require.NotNil(t, o.DeliveredAt)
}

func TestOrderSkipStageRejected(t *testing.T) {
	o := &Order{Status: OrderReceived}

	err := o.TransitionTo(OrderStitching)
	require.ErrorIs(t, err, ErrInvalidStatusTransition)
	require.Equal(t, OrderReceived, o.Status, "failed transition must not mutate the order")

	err = o.TransitionTo(OrderDelivered)
	require.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestOrderCancelFromAnyNonTerminal(t *testing.T) {
	for _, from := range []OrderStatus{
		OrderReceived, OrderCutting, OrderStitching,
		OrderQualityCheck, OrderPressing, OrderReady,
	} {
		o := &Order{Status: from}
		require.NoError(t, o.TransitionTo(OrderCancelled), "cancel from %s", from)
		require.Equal(t, OrderCancelled, o.Status)
	}
}

func TestOrderTerminalStatesFrozen(t *testing.T) {
	for _, terminal := range []OrderStatus{OrderDelivered, OrderCancelled} {
		o := &Order{Status: terminal}
		for _, next := range []OrderStatus{
			OrderReceived, OrderCutting, OrderStitching, OrderQualityCheck,
			OrderPressing, OrderReady, OrderDelivered, OrderCancelled,
		} {
			require.ErrorIs(t, o.TransitionTo(next), ErrInvalidStatusTransition,
				"%s -> %s must be rejected", terminal, next)
		}
	}
}

func TestOrderBackwardMoveRejected(t *testing.T) {
	o := &Order{Status: OrderPressing}
	require.ErrorIs(t, o.TransitionTo(OrderCutting), ErrInvalidStatusTransition)
}

func TestOrderStatusValid(t *testing.T) {
	require.True(t, OrderQualityCheck.Valid())
	require.False(t, OrderStatus("SHIPPED").Valid())
}

func TestRecalcBalance(t *testing.T) {
	o := &Order{Total: 250, Deposit: 100}
	o.RecalcBalance()
	require.Equal(t, 150.0, o.Balance)
}
