package models

import "time"

type MealValidationModel struct {
	ID             string    `gorm:"primaryKey;type:uuid"`
	RegistrationID string    `gorm:"type:uuid;index;not null"`
	MealSessionID  string    `gorm:"type:uuid;index;not null"`
	ValidatedAt    time.Time `gorm:"index"`
	ValidatedBy    string    `gorm:"type:uuid"`
	Synced         bool      `gorm:"index:idx_validation_synced"`
}

func (MealValidationModel) TableName() string {
	return "meal_validations"
}
