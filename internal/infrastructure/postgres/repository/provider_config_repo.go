package repository

import (
	"errors"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres/mappers"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultProviderConfigRepository struct {
	DB *gorm.DB
}

func NewDefaultProviderConfigRepository(db *gorm.DB) *DefaultProviderConfigRepository {
	return &DefaultProviderConfigRepository{DB: db}
}

func (r *DefaultProviderConfigRepository) GetActiveConfig(provider string) (*domain.ProviderConfig, error) {
	var model models.ProviderConfigModel
	err := r.DB.First(&model, "provider = ? AND is_active = ?", provider, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProviderNotConfigured
		}
		return nil, err
	}
	return mappers.ToDomainProviderConfig(&model), nil
}

func (r *DefaultProviderConfigRepository) SaveConfig(cfg *domain.ProviderConfig) error {
	if cfg.ID == "" {
		cfg.ID = uuid.New().String()
	}
	cfg.UpdatedAt = time.Now()

	model := mappers.ToGORMProviderConfig(cfg)
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "provider"}},
		UpdateAll: true,
	}).Create(model).Error
}

func (r *DefaultProviderConfigRepository) ListConfigs() ([]*domain.ProviderConfig, error) {
	var configModels []models.ProviderConfigModel
	if err := r.DB.Order("provider").Find(&configModels).Error; err != nil {
		return nil, err
	}

	configs := make([]*domain.ProviderConfig, 0, len(configModels))
	for i := range configModels {
		configs = append(configs, mappers.ToDomainProviderConfig(&configModels[i]))
	}
	return configs, nil
}
