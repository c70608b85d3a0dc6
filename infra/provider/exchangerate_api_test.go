package provider

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mihirand/fxconvert/pkg/config"
	"github.com/mihirand/fxconvert/pkg/currency"
	"github.com/mihirand/fxconvert/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProvider(serverURL string) *ExchangeRateAPIProvider {
	return NewExchangeRateAPIProvider(config.ExchangeRate{
		ApiUrl:      serverURL,
		HTTPTimeout: 5 * time.Second,
	}, discardLogger())
}

func TestFetchRates_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","date":"2020-03-27","rates":{"EUR":0.85,"GBP":0.74}}`)) //nolint:errcheck
	}))
	defer server.Close()

	p := newTestProvider(server.URL)
	table, err := p.FetchRates(context.Background(), currency.USD)

	require.NoError(t, err)
	assert.Equal(t, currency.USD, table.Base)
	assert.Equal(t, 0.85, table.Rates["EUR"])
	assert.Equal(t, 0.74, table.Rates["GBP"])
	assert.Equal(t, 2020, table.FetchedAt.Year())
}

func TestFetchRates_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
		{name: "too many requests", status: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			p := newTestProvider(server.URL)
			_, err := p.FetchRates(context.Background(), currency.USD)

			assert.ErrorIs(t, err, domain.ErrExchangeRateUnavailable)
		})
	}
}

func TestFetchRates_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	p := newTestProvider(server.URL)
	_, err := p.FetchRates(context.Background(), currency.USD)

	assert.ErrorIs(t, err, domain.ErrExchangeRateUnavailable)
}

func TestFetchRates_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates": not json`)) //nolint:errcheck
	}))
	defer server.Close()

	p := newTestProvider(server.URL)
	_, err := p.FetchRates(context.Background(), currency.USD)

	require.Error(t, err)
	// Malformed bodies are unknown failures, not a tagged unavailability.
	assert.NotErrorIs(t, err, domain.ErrExchangeRateUnavailable)
}

func TestFetchRates_EmptyRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"USD","date":"2020-03-27","rates":{}}`)) //nolint:errcheck
	}))
	defer server.Close()

	p := newTestProvider(server.URL)
	_, err := p.FetchRates(context.Background(), currency.USD)

	assert.ErrorIs(t, err, domain.ErrExchangeRateUnavailable)
}

func TestName(t *testing.T) {
	p := newTestProvider("http://localhost")
	assert.Equal(t, "exchangerate-api", p.Name())
}
