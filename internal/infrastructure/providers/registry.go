package providers

import (
	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/cache"
)

// Registry resolves provider adapters from the active configuration rows.
// Configs are cached with a TTL; SaveConfig paths must call Invalidate so a
// rotated webhook secret takes effect immediately.
type Registry struct {
	configRepo domain.ProviderConfigRepository
	cache      *cache.ConfigCache
}

func NewRegistry(configRepo domain.ProviderConfigRepository, configCache *cache.ConfigCache) *Registry {
	return &Registry{
		configRepo: configRepo,
		cache:      configCache,
	}
}

func (r *Registry) ActiveConfig(provider string) (*domain.ProviderConfig, error) {
	if r.cache != nil {
		if cfg, ok := r.cache.Get(provider); ok {
			return cfg, nil
		}
	}

	cfg, err := r.configRepo.GetActiveConfig(provider)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		r.cache.Set(provider, cfg)
	}

	return cfg, nil
}

func (r *Registry) Provider(provider string) (domain.PaymentProvider, error) {
	cfg, err := r.ActiveConfig(provider)
	if err != nil {
		return nil, err
	}

	switch provider {
	case ProviderPaystack:
		return NewPaystackProvider(cfg), nil
	case ProviderFlutterwave:
		return NewFlutterwaveProvider(cfg), nil
	}
	return nil, domain.ErrUnknownProvider
}

func (r *Registry) Invalidate(provider string) {
	if r.cache != nil {
		r.cache.Invalidate(provider)
	}
}

func SupportedProviders() []string {
	return []string{ProviderPaystack, ProviderFlutterwave}
}
