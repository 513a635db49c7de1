package repository

import (
	"errors"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres/mappers"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRegistrationRepository struct {
	DB *gorm.DB
}

func NewDefaultRegistrationRepository(db *gorm.DB) *DefaultRegistrationRepository {
	return &DefaultRegistrationRepository{DB: db}
}

func (r *DefaultRegistrationRepository) GetRegistrationByID(id string) (*domain.Registration, error) {
	var model models.RegistrationModel
	if err := r.DB.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, err
	}
	return mappers.ToDomainRegistration(&model), nil
}

func (r *DefaultRegistrationRepository) MarkRegistrationPaid(id, paymentReference string) error {
	result := r.DB.Model(&models.RegistrationModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status":    domain.PaymentPaid,
			"payment_reference": paymentReference,
			"status":            domain.RegistrationApproved,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}

func (r *DefaultRegistrationRepository) GetRegistrationsByPhone(phone string) ([]*domain.Registration, error) {
	var registrationModels []models.RegistrationModel
	if err := r.DB.Find(&registrationModels, "phone = ?", phone).Error; err != nil {
		return nil, err
	}

	registrations := make([]*domain.Registration, 0, len(registrationModels))
	for i := range registrationModels {
		registrations = append(registrations, mappers.ToDomainRegistration(&registrationModels[i]))
	}
	return registrations, nil
}
