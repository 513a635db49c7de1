package repository

import (
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres/mappers"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultValidationRepository struct {
	DB *gorm.DB
}

func NewDefaultValidationRepository(db *gorm.DB) *DefaultValidationRepository {
	return &DefaultValidationRepository{DB: db}
}

func (r *DefaultValidationRepository) StoreValidation(record *domain.MealValidation) error {
	model := mappers.ToGORMMealValidation(record)
	return r.DB.Create(model).Error
}

func (r *DefaultValidationRepository) GetUnsyncedValidations() ([]*domain.MealValidation, error) {
	var validationModels []models.MealValidationModel
	if err := r.DB.Order("validated_at").Find(&validationModels, "synced = ?", false).Error; err != nil {
		return nil, err
	}

	records := make([]*domain.MealValidation, 0, len(validationModels))
	for i := range validationModels {
		records = append(records, mappers.ToDomainMealValidation(&validationModels[i]))
	}
	return records, nil
}

func (r *DefaultValidationRepository) MarkValidationsSynced(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.Model(&models.MealValidationModel{}).
		Where("id IN ?", ids).
		Update("synced", true).Error
}

func (r *DefaultValidationRepository) DeleteSyncedBefore(cutoff time.Time) (int64, error) {
	result := r.DB.
		Where("synced = ? AND validated_at < ?", true, cutoff).
		Delete(&models.MealValidationModel{})
	return result.RowsAffected, result.Error
}

// UpsertValidations is used by the server-side reconciliation endpoint.
// Re-delivered records collide on id and are skipped, but every id in the
// batch is acknowledged so devices can mark them synced.
func (r *DefaultValidationRepository) UpsertValidations(records []*domain.MealValidation) ([]string, error) {
	if len(records) == 0 {
		return nil, nil
	}

	validationModels := make([]models.MealValidationModel, 0, len(records))
	acked := make([]string, 0, len(records))
	for _, record := range records {
		model := mappers.ToGORMMealValidation(record)
		model.Synced = true
		validationModels = append(validationModels, *model)
		acked = append(acked, record.ID)
	}

	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&validationModels).Error
	if err != nil {
		return nil, err
	}

	return acked, nil
}
