// Package provider defines the contract for external exchange rate sources.
package provider

import (
	"context"

	"github.com/mihirand/fxconvert/pkg/currency"
	"github.com/mihirand/fxconvert/pkg/domain"
)

// ExchangeRateProvider fetches the rate table for a base currency from an
// external source. One call maps to at most one outbound request.
type ExchangeRateProvider interface {
	// FetchRates returns all rates quoted against the base currency.
	FetchRates(ctx context.Context, base currency.Code) (*domain.RateTable, error)
	// Name returns the provider's name for logging and health reporting.
	Name() string
}
