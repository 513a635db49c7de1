package repository

import (
	"errors"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres/mappers"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRefundRepository struct {
	DB *gorm.DB
}

func NewDefaultRefundRepository(db *gorm.DB) *DefaultRefundRepository {
	return &DefaultRefundRepository{DB: db}
}

func (r *DefaultRefundRepository) CreateRefund(refund *domain.Refund) error {
	model := mappers.ToGORMRefund(refund)
	if err := r.DB.Create(model).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultRefundRepository) GetRefundByID(id string) (*domain.Refund, error) {
	var model models.RefundModel
	if err := r.DB.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRefundNotFound
		}
		return nil, err
	}
	return mappers.ToDomainRefund(&model), nil
}

func (r *DefaultRefundRepository) GetRefundByTransactionID(transactionID string) (*domain.Refund, error) {
	var model models.RefundModel
	if err := r.DB.First(&model, "transaction_id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRefundNotFound
		}
		return nil, err
	}
	return mappers.ToDomainRefund(&model), nil
}

func (r *DefaultRefundRepository) CompleteRefund(id, providerReference string, processedAt time.Time) error {
	// pending-only guard makes replayed refund webhooks a no-op
	result := r.DB.Model(&models.RefundModel{}).
		Where("id = ? AND status = ?", id, domain.RefundPending).
		Updates(map[string]interface{}{
			"status":             domain.RefundCompleted,
			"provider_reference": providerReference,
			"processed_at":       processedAt,
		})
	return result.Error
}
