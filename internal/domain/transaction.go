package domain

import "time"

type TransactionStatus string

const (
	StatusPending         TransactionStatus = "pending"
	StatusCompleted       TransactionStatus = "completed"
	StatusFailed          TransactionStatus = "failed"
	StatusAbandoned       TransactionStatus = "abandoned"
	StatusRefundRequested TransactionStatus = "refund_requested"
	StatusRefundCompleted TransactionStatus = "refund_completed"
)

// allowedTransitions defines the transaction state machine.
// failed/abandoned are dead ends: a retry needs a new reference.
var allowedTransitions = map[TransactionStatus][]TransactionStatus{
	StatusPending:         {StatusCompleted, StatusFailed, StatusAbandoned},
	StatusCompleted:       {StatusRefundRequested},
	StatusRefundRequested: {StatusRefundCompleted, StatusCompleted},
}

func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s TransactionStatus) Terminal() bool {
	return len(allowedTransitions[s]) == 0
}

type PaymentTransaction struct {
	ID                string
	Reference         string
	ProviderReference string
	Provider          string
	Amount            float64
	Currency          string
	Status            TransactionStatus
	RegistrationID    string
	Metadata          map[string]interface{}
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type TransactionFilter struct {
	Provider       string
	Status         TransactionStatus
	RegistrationID string
}
