package mappers

import (
	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/postgres/models"
)

func ToDomainProviderConfig(model *models.ProviderConfigModel) *domain.ProviderConfig {
	return &domain.ProviderConfig{
		ID:            model.ID,
		Provider:      model.Provider,
		PublicKey:     model.PublicKey,
		SecretKey:     model.SecretKey,
		WebhookSecret: model.WebhookSecret,
		IsActive:      model.IsActive,
		TestMode:      model.TestMode,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMProviderConfig(cfg *domain.ProviderConfig) *models.ProviderConfigModel {
	return &models.ProviderConfigModel{
		ID:            cfg.ID,
		Provider:      cfg.Provider,
		PublicKey:     cfg.PublicKey,
		SecretKey:     cfg.SecretKey,
		WebhookSecret: cfg.WebhookSecret,
		IsActive:      cfg.IsActive,
		TestMode:      cfg.TestMode,
		UpdatedAt:     cfg.UpdatedAt,
	}
}
