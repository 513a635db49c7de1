package domain

import "time"

type RefundStatus string

const (
	RefundPending   RefundStatus = "pending"
	RefundCompleted RefundStatus = "completed"
)

type Refund struct {
	ID                string
	TransactionID     string
	Amount            float64
	Status            RefundStatus
	Reason            string
	ProviderReference string
	ProcessedAt       *time.Time
	CreatedAt         time.Time
}
