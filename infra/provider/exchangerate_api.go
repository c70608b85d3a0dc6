// Package provider contains the concrete exchange rate sources.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mihirand/fxconvert/pkg/config"
	"github.com/mihirand/fxconvert/pkg/currency"
	"github.com/mihirand/fxconvert/pkg/domain"
	"github.com/mihirand/fxconvert/pkg/provider"
)

// ExchangeRateAPIProvider implements provider.ExchangeRateProvider against
// the exchangerate-api.com v4 endpoint.
type ExchangeRateAPIProvider struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ExchangeRateAPIResponse represents the v4 response from the ExchangeRate API.
// Example: { "base": "USD", "date": "2020-03-27", "rates": { "EUR": 0.85, ... } }
type ExchangeRateAPIResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// NewExchangeRateAPIProvider creates a new ExchangeRate API provider using config.
func NewExchangeRateAPIProvider(cfg config.ExchangeRate, logger *slog.Logger) *ExchangeRateAPIProvider {
	return &ExchangeRateAPIProvider{
		baseURL: cfg.ApiUrl,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

// FetchRates fetches all rates quoted against the base currency. A single
// request is made per call; there is no retry.
func (p *ExchangeRateAPIProvider) FetchRates(ctx context.Context, base currency.Code) (*domain.RateTable, error) {
	url := fmt.Sprintf("%s/%s", p.baseURL, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExchangeRateUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		p.logger.Warn("Exchange rate API returned non-success status",
			"status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: API returned status %d", domain.ErrExchangeRateUnavailable, resp.StatusCode)
	}

	var apiResp ExchangeRateAPIResponse
	if err = json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(apiResp.Rates) == 0 {
		return nil, fmt.Errorf("%w: response carried no rates", domain.ErrExchangeRateUnavailable)
	}

	fetchedAt := time.Now()
	if date, err := time.Parse("2006-01-02", apiResp.Date); err == nil {
		fetchedAt = date
	}

	p.logger.Debug("Fetched exchange rates", "base", base, "count", len(apiResp.Rates))
	return &domain.RateTable{
		Base:      base,
		Rates:     apiResp.Rates,
		FetchedAt: fetchedAt,
	}, nil
}

// Name returns the provider's name.
func (p *ExchangeRateAPIProvider) Name() string {
	return "exchangerate-api"
}

// Ensure ExchangeRateAPIProvider implements provider.ExchangeRateProvider
var _ provider.ExchangeRateProvider = (*ExchangeRateAPIProvider)(nil)
