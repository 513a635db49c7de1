package models

import (
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
)

type TransactionModel struct {
	ID                string                   `gorm:"primaryKey;type:uuid"`
	Reference         string                   `gorm:"uniqueIndex;not null"`
	ProviderReference string                   `gorm:"index"`
	Provider          string                   `gorm:"index:idx_provider_status"`
	Amount            float64                  `gorm:"not null"`
	Currency          string                   `gorm:"not null"`
	Status            domain.TransactionStatus `gorm:"index:idx_provider_status"`
	Metadata          string                   `gorm:"type:jsonb"`
	RegistrationID    string                   `gorm:"type:uuid;index"`
	CreatedAt         time.Time                `gorm:"index:idx_tx_created_at"`
	UpdatedAt         time.Time
}

func (TransactionModel) TableName() string {
	return "payment_transactions"
}
