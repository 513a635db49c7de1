package webhook

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/metrics"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/providers"
)

// PaymentReconciler is the slice of the payment usecase the dispatcher needs.
type PaymentReconciler interface {
	ApplyChargeSucceeded(event *domain.WebhookEvent) error
	ApplyChargeFailed(event *domain.WebhookEvent) error
	ApplyRefundCompleted(event *domain.WebhookEvent) error
}

type WebhookUsecase interface {
	// HandleWebhook verifies and dispatches one raw webhook delivery.
	// signature is the value of the provider's signature header.
	HandleWebhook(provider string, body []byte, signature string) error
}

type DefaultWebhookUsecase struct {
	Registry domain.ProviderRegistry
	Payments PaymentReconciler
	Metrics  *metrics.PaymentMetrics
}

func NewDefaultWebhookUsecase(
	registry domain.ProviderRegistry,
	payments PaymentReconciler,
	paymentMetrics *metrics.PaymentMetrics) *DefaultWebhookUsecase {

	return &DefaultWebhookUsecase{
		Registry: registry,
		Payments: payments,
		Metrics:  paymentMetrics,
	}
}

// HandleWebhook authenticates the payload before a single byte of it is
// parsed, then routes the normalized event to the matching handler. Event
// types without a handler are acknowledged so the provider stops retrying.
func (uc *DefaultWebhookUsecase) HandleWebhook(provider string, body []byte, signature string) error {
	started := time.Now()
	defer func() {
		if uc.Metrics != nil {
			uc.Metrics.RecordWebhookDuration(provider, time.Since(started).Seconds())
		}
	}()

	config, err := uc.Registry.ActiveConfig(provider)
	if err != nil {
		uc.record(provider, "unknown", "rejected")
		return err
	}

	if signature == "" {
		uc.record(provider, "unknown", "rejected")
		return domain.ErrMissingSignature
	}
	if !providers.VerifyWebhookSignature(provider, body, config.WebhookSecret, signature) {
		uc.record(provider, "unknown", "rejected")
		return domain.ErrInvalidSignature
	}

	event, err := providers.ParseWebhookEvent(provider, body)
	if err != nil {
		uc.record(provider, "unknown", "malformed")
		return fmt.Errorf("failed to parse %s webhook: %w", provider, err)
	}

	switch event.Kind {
	case domain.EventChargeSucceeded:
		err = uc.Payments.ApplyChargeSucceeded(event)
	case domain.EventChargeFailed:
		err = uc.Payments.ApplyChargeFailed(event)
	case domain.EventRefundCompleted:
		err = uc.Payments.ApplyRefundCompleted(event)
	case domain.EventIgnored:
		slog.Info("ignoring unhandled webhook event", "provider", provider)
		uc.record(provider, string(domain.EventIgnored), "ignored")
		return nil
	default:
		uc.record(provider, string(event.Kind), "ignored")
		return nil
	}

	if err != nil {
		uc.record(provider, string(event.Kind), "error")
		return err
	}
	uc.record(provider, string(event.Kind), "ok")
	return nil
}

func (uc *DefaultWebhookUsecase) record(provider, event, result string) {
	if uc.Metrics != nil {
		uc.Metrics.RecordWebhook(provider, event, result)
	}
}

// IsAuthError reports whether err should map to 401 rather than 400.
func IsAuthError(err error) bool {
	return errors.Is(err, domain.ErrInvalidSignature)
}
