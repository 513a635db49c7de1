package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres/mappers"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) CreateTransaction(tx *domain.PaymentTransaction) error {
	model := mappers.ToGORMTransaction(tx)
	if err := r.DB.Create(model).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultTransactionRepository) GetTransactionByID(id string) (*domain.PaymentTransaction, error) {
	var model models.TransactionModel
	if err := r.DB.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTransaction(&model), nil
}

func (r *DefaultTransactionRepository) GetTransactionByReference(reference string) (*domain.PaymentTransaction, error) {
	var model models.TransactionModel
	if err := r.DB.First(&model, "reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTransaction(&model), nil
}

// UpdateTransactionStatus is the conditional update that keeps the state
// machine race-free under concurrent webhook deliveries: only the row still
// in the expected prior status transitions, everyone else gets
// ErrStatusConflict.
func (r *DefaultTransactionRepository) UpdateTransactionStatus(id string, from, to domain.TransactionStatus) error {
	result := r.DB.Model(&models.TransactionModel{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrStatusConflict
	}
	return nil
}

func (r *DefaultTransactionRepository) SetProviderReference(id, providerReference string) error {
	result := r.DB.Model(&models.TransactionModel{}).
		Where("id = ? AND (provider_reference = '' OR provider_reference = ?)", id, providerReference).
		Update("provider_reference", providerReference)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrStatusConflict
	}
	return nil
}

func (r *DefaultTransactionRepository) AppendMetadata(id string, patch map[string]interface{}) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var model models.TransactionModel
		if err := tx.First(&model, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTransactionNotFound
			}
			return err
		}

		metadata := map[string]interface{}{}
		if model.Metadata != "" {
			json.Unmarshal([]byte(model.Metadata), &metadata)
		}
		for k, v := range patch {
			metadata[k] = v
		}

		raw, err := json.Marshal(metadata)
		if err != nil {
			return err
		}

		return tx.Model(&models.TransactionModel{}).
			Where("id = ?", id).
			Update("metadata", string(raw)).Error
	})
}

func (r *DefaultTransactionRepository) GetTransactions(filter domain.TransactionFilter, page, limit int) ([]*domain.PaymentTransaction, int64, error) {
	var transactionModels []models.TransactionModel
	var total int64

	query := r.DB.Model(&models.TransactionModel{})
	if filter.Provider != "" {
		query = query.Where("provider = ?", filter.Provider)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.RegistrationID != "" {
		query = query.Where("registration_id = ?", filter.RegistrationID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&transactionModels).Error
	if err != nil {
		return nil, 0, err
	}

	transactions := make([]*domain.PaymentTransaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, mappers.ToDomainTransaction(&transactionModels[i]))
	}

	return transactions, total, nil
}
