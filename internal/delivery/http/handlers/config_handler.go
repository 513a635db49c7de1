package handlers

import (
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/providers"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ConfigHandler manages provider credentials. Secrets never leave through the
// read endpoints.
type ConfigHandler struct {
	configRepo domain.ProviderConfigRepository
	registry   domain.ProviderRegistry
}

func NewConfigHandler(configRepo domain.ProviderConfigRepository, registry domain.ProviderRegistry) *ConfigHandler {
	return &ConfigHandler{configRepo: configRepo, registry: registry}
}

func (h *ConfigHandler) List(c *fiber.Ctx) error {
	configs, err := h.configRepo.ListConfigs()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	items := make([]fiber.Map, 0, len(configs))
	for _, cfg := range configs {
		items = append(items, fiber.Map{
			"id":         cfg.ID,
			"provider":   cfg.Provider,
			"public_key": cfg.PublicKey,
			"is_active":  cfg.IsActive,
			"test_mode":  cfg.TestMode,
			"updated_at": cfg.UpdatedAt,
		})
	}
	return c.JSON(fiber.Map{"configurations": items})
}

func (h *ConfigHandler) Save(c *fiber.Ctx) error {
	var body struct {
		Provider      string `json:"provider"`
		PublicKey     string `json:"public_key"`
		SecretKey     string `json:"secret_key"`
		WebhookSecret string `json:"webhook_secret"`
		IsActive      bool   `json:"is_active"`
		TestMode      bool   `json:"test_mode"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	supported := false
	for _, p := range providers.SupportedProviders() {
		if p == body.Provider {
			supported = true
			break
		}
	}
	if !supported {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": domain.ErrUnknownProvider.Error()})
	}
	if body.SecretKey == "" || body.WebhookSecret == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "secret_key and webhook_secret are required"})
	}

	cfg := &domain.ProviderConfig{
		ID:            uuid.New().String(),
		Provider:      body.Provider,
		PublicKey:     body.PublicKey,
		SecretKey:     body.SecretKey,
		WebhookSecret: body.WebhookSecret,
		IsActive:      body.IsActive,
		TestMode:      body.TestMode,
		UpdatedAt:     time.Now(),
	}
	if err := h.configRepo.SaveConfig(cfg); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// cached credentials for this provider are now stale
	h.registry.Invalidate(body.Provider)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"provider":  cfg.Provider,
		"is_active": cfg.IsActive,
	})
}
