package mappers

import (
	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres/models"
)

func ToDomainMealValidation(model *models.MealValidationModel) *domain.MealValidation {
	return &domain.MealValidation{
		ID:             model.ID,
		RegistrationID: model.RegistrationID,
		MealSessionID:  model.MealSessionID,
		ValidatedAt:    model.ValidatedAt,
		ValidatedBy:    model.ValidatedBy,
		Synced:         model.Synced,
	}
}

func ToGORMMealValidation(record *domain.MealValidation) *models.MealValidationModel {
	return &models.MealValidationModel{
		ID:             record.ID,
		RegistrationID: record.RegistrationID,
		MealSessionID:  record.MealSessionID,
		ValidatedAt:    record.ValidatedAt,
		ValidatedBy:    record.ValidatedBy,
		Synced:         record.Synced,
	}
}
