package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionStatusTransitions(t *testing.T) {
	cases := []struct {
		from    TransactionStatus
		to      TransactionStatus
		allowed bool
	}{
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusFailed, true},
		{StatusPending, StatusAbandoned, true},
		{StatusPending, StatusRefundRequested, false},
		{StatusCompleted, StatusRefundRequested, true},
		{StatusCompleted, StatusFailed, false},
		{StatusCompleted, StatusPending, false},
		{StatusFailed, StatusCompleted, false},
		{StatusAbandoned, StatusCompleted, false},
		{StatusRefundRequested, StatusRefundCompleted, true},
		{StatusRefundRequested, StatusCompleted, true},
		{StatusRefundCompleted, StatusCompleted, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to),
			"%s -> %s", c.from, c.to)
	}
}

func TestTransactionStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusCompleted.Terminal())
	assert.False(t, StatusRefundRequested.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.True(t, StatusAbandoned.Terminal())
	assert.True(t, StatusRefundCompleted.Terminal())
}
