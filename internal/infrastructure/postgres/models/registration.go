package models

import (
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
)

type RegistrationModel struct {
	ID               string                    `gorm:"primaryKey;type:uuid"`
	FullName         string                    `gorm:"not null"`
	Email            string                    `gorm:"index"`
	Phone            string                    `gorm:"index"`
	EventID          string                    `gorm:"type:uuid;index"`
	Status           domain.RegistrationStatus `gorm:"index"`
	PaymentStatus    domain.PaymentStatus      `gorm:"index"`
	PaymentReference string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (RegistrationModel) TableName() string {
	return "registrations"
}
