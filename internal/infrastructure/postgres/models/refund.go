package models

import (
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
)

type RefundModel struct {
	ID                string              `gorm:"primaryKey;type:uuid"`
	TransactionID     string              `gorm:"type:uuid;index;not null"`
	Transaction       TransactionModel    `gorm:"foreignKey:TransactionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Amount            float64             `gorm:"not null"`
	Status            domain.RefundStatus `gorm:"index"`
	Reason            string
	ProviderReference string
	ProcessedAt       *time.Time
	CreatedAt         time.Time
}

func (RefundModel) TableName() string {
	return "payment_refunds"
}
