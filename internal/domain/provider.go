package domain

import (
	"context"
	"time"
)

// ProviderConfig is the active credential set for one payment provider.
// Webhooks for a provider without an active config are rejected, which cuts
// off events for disabled or rotated integrations.
type ProviderConfig struct {
	ID            string
	Provider      string
	PublicKey     string
	SecretKey     string
	WebhookSecret string
	IsActive      bool
	TestMode      bool
	UpdatedAt     time.Time
}

type PaymentData struct {
	Amount      float64
	Email       string
	Reference   string
	CallbackURL string
	Metadata    map[string]interface{}
}

type PaymentResult struct {
	Success   bool
	Reference string
	Data      map[string]interface{}
	Error     string
}

type RefundData struct {
	TransactionID string
	Amount        float64
	Reason        string
}

type RefundResult struct {
	Success   bool
	Reference string
	Data      map[string]interface{}
	Error     string
}

type VerificationResult struct {
	Success bool
	Status  string
	Amount  float64
	Data    map[string]interface{}
	Error   string
}

// PaymentProvider adapts one gateway's HTTP API to a canonical shape.
// Implementations convert upstream failures into failure results instead of
// returning them as errors, so callers branch on Success only.
type PaymentProvider interface {
	Name() string
	InitiatePayment(ctx context.Context, data PaymentData) *PaymentResult
	VerifyTransaction(ctx context.Context, reference string) *VerificationResult
	ProcessRefund(ctx context.Context, data RefundData) *RefundResult
}

type ProviderConfigRepository interface {
	GetActiveConfig(provider string) (*ProviderConfig, error)
	SaveConfig(cfg *ProviderConfig) error
	ListConfigs() ([]*ProviderConfig, error)
}

// ProviderRegistry resolves configured provider adapters by name.
type ProviderRegistry interface {
	ActiveConfig(provider string) (*ProviderConfig, error)
	Provider(provider string) (PaymentProvider, error)
	Invalidate(provider string)
}
