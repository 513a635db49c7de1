package mappers

import (
	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres/models"
)

func ToDomainRefund(model *models.RefundModel) *domain.Refund {
	return &domain.Refund{
		ID:                model.ID,
		TransactionID:     model.TransactionID,
		Amount:            model.Amount,
		Status:            model.Status,
		Reason:            model.Reason,
		ProviderReference: model.ProviderReference,
		ProcessedAt:       model.ProcessedAt,
		CreatedAt:         model.CreatedAt,
	}
}

func ToGORMRefund(refund *domain.Refund) *models.RefundModel {
	return &models.RefundModel{
		ID:                refund.ID,
		TransactionID:     refund.TransactionID,
		Amount:            refund.Amount,
		Status:            refund.Status,
		Reason:            refund.Reason,
		ProviderReference: refund.ProviderReference,
		ProcessedAt:       refund.ProcessedAt,
		CreatedAt:         refund.CreatedAt,
	}
}
