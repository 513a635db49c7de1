package mappers

import (
	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres/models"
)

func ToDomainRegistration(model *models.RegistrationModel) *domain.Registration {
	return &domain.Registration{
		ID:               model.ID,
		FullName:         model.FullName,
		Email:            model.Email,
		Phone:            model.Phone,
		EventID:          model.EventID,
		Status:           model.Status,
		PaymentStatus:    model.PaymentStatus,
		PaymentReference: model.PaymentReference,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMRegistration(registration *domain.Registration) *models.RegistrationModel {
	return &models.RegistrationModel{
		ID:               registration.ID,
		FullName:         registration.FullName,
		Email:            registration.Email,
		Phone:            registration.Phone,
		EventID:          registration.EventID,
		Status:           registration.Status,
		PaymentStatus:    registration.PaymentStatus,
		PaymentReference: registration.PaymentReference,
		CreatedAt:        registration.CreatedAt,
		UpdatedAt:        registration.UpdatedAt,
	}
}
