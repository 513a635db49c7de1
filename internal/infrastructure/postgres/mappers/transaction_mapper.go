package mappers

import (
	"encoding/json"

	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.PaymentTransaction {
	metadata := map[string]interface{}{}
	if model.Metadata != "" {
		// invalid jsonb content degrades to empty metadata rather than failing reads
		json.Unmarshal([]byte(model.Metadata), &metadata)
	}

	return &domain.PaymentTransaction{
		ID:                model.ID,
		Reference:         model.Reference,
		ProviderReference: model.ProviderReference,
		Provider:          model.Provider,
		Amount:            model.Amount,
		Currency:          model.Currency,
		Status:            model.Status,
		RegistrationID:    model.RegistrationID,
		Metadata:          metadata,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ToGORMTransaction(tx *domain.PaymentTransaction) *models.TransactionModel {
	metadata := "{}"
	if len(tx.Metadata) > 0 {
		if raw, err := json.Marshal(tx.Metadata); err == nil {
			metadata = string(raw)
		}
	}

	return &models.TransactionModel{
		ID:                tx.ID,
		Reference:         tx.Reference,
		ProviderReference: tx.ProviderReference,
		Provider:          tx.Provider,
		Amount:            tx.Amount,
		Currency:          tx.Currency,
		Status:            tx.Status,
		Metadata:          metadata,
		RegistrationID:    tx.RegistrationID,
		CreatedAt:         tx.CreatedAt,
		UpdatedAt:         tx.UpdatedAt,
	}
}
