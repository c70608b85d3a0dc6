package cache

import (
	"time"

	"github.com/mihirand/fxconvert/pkg/domain"
)

// RateTableCache defines the interface for caching fetched rate tables,
// keyed by base currency code.
type RateTableCache interface {
	Get(key string) (*domain.RateTable, error)
	Set(key string, table *domain.RateTable, ttl time.Duration) error
	Delete(key string) error
}
