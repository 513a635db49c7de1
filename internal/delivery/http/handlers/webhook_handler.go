package handlers

import (
	"errors"
	"log/slog"

	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/providers"
	"github.com/Onahi7/Napps-summit/internal/usecase/webhook"
	"github.com/gofiber/fiber/v2"
)

const ProviderHeader = "x-payment-provider"

type WebhookHandler struct {
	webhookUC webhook.WebhookUsecase
}

func NewWebhookHandler(webhookUC webhook.WebhookUsecase) *WebhookHandler {
	return &WebhookHandler{webhookUC: webhookUC}
}

// HandlePaymentWebhook ingests one provider delivery. The response codes
// matter: 400/401 tell the provider the request itself was bad, 500 makes it
// redeliver later, 200 acknowledges, including events we choose to ignore.
func (h *WebhookHandler) HandlePaymentWebhook(c *fiber.Ctx) error {
	provider := c.Get(ProviderHeader)
	if provider == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing provider header"})
	}

	signatureHeader := providers.SignatureHeader(provider)
	if signatureHeader == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": domain.ErrUnknownProvider.Error()})
	}

	body := c.Body()
	signature := c.Get(signatureHeader)

	err := h.webhookUC.HandleWebhook(provider, body, signature)
	if err != nil {
		slog.Error("webhook rejected", "provider", provider, "error", err.Error())

		switch {
		case webhook.IsAuthError(err):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, domain.ErrMissingSignature),
			errors.Is(err, domain.ErrProviderNotConfigured),
			errors.Is(err, domain.ErrUnknownProvider):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			// reconciliation failed, let the provider retry
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "webhook processing failed"})
		}
	}

	return c.JSON(fiber.Map{"status": "success"})
}
