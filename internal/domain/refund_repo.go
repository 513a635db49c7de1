package domain

import "time"

type RefundRepository interface {
	CreateRefund(refund *Refund) error
	GetRefundByID(id string) (*Refund, error)
	GetRefundByTransactionID(transactionID string) (*Refund, error)
	// CompleteRefund flips a pending refund to completed. Completing an
	// already completed refund is a no-op.
	CompleteRefund(id, providerReference string, processedAt time.Time) error
}
