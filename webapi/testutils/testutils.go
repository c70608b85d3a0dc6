// Package testutils builds a fully wired test app around a stubbed rate
// source so handler tests never touch the network.
package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mihirand/fxconvert/pkg/app"
	"github.com/mihirand/fxconvert/pkg/config"
	"github.com/mihirand/fxconvert/pkg/currency"
	"github.com/mihirand/fxconvert/pkg/domain"
	"github.com/mihirand/fxconvert/pkg/service/conversion"
	"github.com/mihirand/fxconvert/pkg/service/theme"
	"github.com/mihirand/fxconvert/webapi"
	"github.com/stretchr/testify/require"
)

// StubRateSource implements provider.ExchangeRateProvider with canned data.
type StubRateSource struct {
	mu    sync.Mutex
	Table *domain.RateTable
	Err   error
	calls int
}

// FetchRates returns the canned table or error and counts the call.
func (s *StubRateSource) FetchRates(ctx context.Context, base currency.Code) (*domain.RateTable, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Table, nil
}

// Name identifies the stub in logs.
func (s *StubRateSource) Name() string {
	return "stub"
}

// Calls reports how many fetches were made.
func (s *StubRateSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// SetupTestApp builds a Fiber app wired to the given rate source, with no
// history store and a fresh theme context.
func SetupTestApp(t *testing.T, source *StubRateSource) *fiber.App {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.App{
		Env: "test",
		RateLimit: config.RateLimit{
			MaxRequests: 1000,
			Window:      time.Minute,
		},
	}
	registry := currency.NewRegistry()

	application := &app.App{
		Config:            cfg,
		Logger:            logger,
		Registry:          registry,
		ConversionService: conversion.New(source, registry, nil, logger),
		Theme:             theme.New(theme.ModeLight),
	}
	return webapi.SetupApp(application)
}

// MakeRequest performs a request against the test app and returns the
// response. JSON content type is set when a body is present.
func MakeRequest(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
