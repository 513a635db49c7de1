package models

import "time"

type ProviderConfigModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	Provider      string `gorm:"uniqueIndex;not null"`
	PublicKey     string
	SecretKey     string
	WebhookSecret string
	IsActive      bool `gorm:"index"`
	TestMode      bool
	UpdatedAt     time.Time
}

func (ProviderConfigModel) TableName() string {
	return "payment_configurations"
}
