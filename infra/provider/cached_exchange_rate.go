package provider

import (
	"context"
	"log/slog"
	"time"

	"github.com/mihirand/fxconvert/pkg/cache"
	"github.com/mihirand/fxconvert/pkg/currency"
	"github.com/mihirand/fxconvert/pkg/domain"
	"github.com/mihirand/fxconvert/pkg/provider"
)

// CachedExchangeRateProvider decorates an ExchangeRateProvider with a TTL
// cache keyed by base currency. A hit avoids the network entirely; a miss
// performs exactly one fetch.
type CachedExchangeRateProvider struct {
	next   provider.ExchangeRateProvider
	cache  cache.RateTableCache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedExchangeRateProvider creates a new CachedExchangeRateProvider.
func NewCachedExchangeRateProvider(
	next provider.ExchangeRateProvider,
	cache cache.RateTableCache,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedExchangeRateProvider {
	return &CachedExchangeRateProvider{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// FetchRates returns the cached rate table for the base currency, fetching
// from the underlying provider on a miss.
func (c *CachedExchangeRateProvider) FetchRates(ctx context.Context, base currency.Code) (*domain.RateTable, error) {
	key := base.String()

	if table, err := c.cache.Get(key); err == nil && table != nil {
		c.logger.Debug("Cache hit for rate table", "base", key)
		return table, nil
	} else if err != nil {
		c.logger.Error("Error reading rate table cache", "base", key, "error", err)
	}

	c.logger.Debug("Cache miss for rate table, fetching from provider",
		"base", key, "provider", c.next.Name())
	table, err := c.next.FetchRates(ctx, base)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(key, table, c.ttl); err != nil {
		c.logger.Warn("Failed to cache rate table", "base", key, "error", err)
	}
	return table, nil
}

// Name returns the underlying provider's name.
func (c *CachedExchangeRateProvider) Name() string {
	return c.next.Name()
}

var _ provider.ExchangeRateProvider = (*CachedExchangeRateProvider)(nil)
