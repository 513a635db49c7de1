package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/redis/go-redis/v9"
)

func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}

	return client, nil
}

// ConfigCache keeps provider configurations in Redis with a TTL. A cache miss
// or Redis failure falls back to the database; entries are dropped explicitly
// when an admin saves a configuration.
type ConfigCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewConfigCache(client *redis.Client, ttl time.Duration) *ConfigCache {
	return &ConfigCache{client: client, ttl: ttl}
}

func (c *ConfigCache) Get(provider string) (*domain.ProviderConfig, bool) {
	raw, err := c.client.Get(context.Background(), c.key(provider)).Result()
	if err != nil {
		return nil, false
	}

	var cfg domain.ProviderConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, false
	}

	return &cfg, true
}

func (c *ConfigCache) Set(provider string, cfg *domain.ProviderConfig) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return
	}

	if err := c.client.Set(context.Background(), c.key(provider), raw, c.ttl).Err(); err != nil {
		log.Printf("Failed to cache provider config for %s: %v", provider, err)
	}
}

func (c *ConfigCache) Invalidate(provider string) {
	if err := c.client.Del(context.Background(), c.key(provider)).Err(); err != nil {
		log.Printf("Failed to invalidate provider config for %s: %v", provider, err)
	}
}

func (c *ConfigCache) key(provider string) string {
	return "payment-config:" + provider
}
