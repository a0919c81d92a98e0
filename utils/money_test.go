package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMoneyEqual(t *testing.T) {
	require.True(t, MoneyEqual(25.0, 2.5*10.0))
	require.True(t, MoneyEqual(0.30, 0.1+0.2), "float noise stays within tolerance")
	require.False(t, MoneyEqual(25.01, 25.0), "a full cent off is a mismatch")
	require.False(t, MoneyEqual(100, 90))
}

func TestGenCodes(t *testing.T) {
	at := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	require.Equal(t, "ORD-2026-000042", GenOrderCode(42, at))
	require.Equal(t, "PO-2026-000007", GenPurchaseCode(7, at))
	require.Equal(t, "PAY-202608-0003", GenPayslipCode(3, 8, 2026))
}
