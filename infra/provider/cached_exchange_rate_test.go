package provider

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	infracache "github.com/mihirand/fxconvert/infra/cache"
	"github.com/mihirand/fxconvert/pkg/currency"
	"github.com/mihirand/fxconvert/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	mu    sync.Mutex
	table *domain.RateTable
	err   error
	calls int
}

func (s *countingSource) FetchRates(ctx context.Context, base currency.Code) (*domain.RateTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.table, nil
}

func (s *countingSource) Name() string { return "counting" }

func (s *countingSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestCachedFetchRates_HitAvoidsNetwork(t *testing.T) {
	source := &countingSource{table: &domain.RateTable{
		Base:  currency.USD,
		Rates: map[string]float64{"EUR": 0.85},
	}}
	cached := NewCachedExchangeRateProvider(source, infracache.NewMemoryCache(), time.Minute, discardLogger())

	first, err := cached.FetchRates(context.Background(), currency.USD)
	require.NoError(t, err)

	second, err := cached.FetchRates(context.Background(), currency.USD)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.Calls())
}

func TestCachedFetchRates_DistinctBasesFetchSeparately(t *testing.T) {
	source := &countingSource{table: &domain.RateTable{
		Base:  currency.USD,
		Rates: map[string]float64{"EUR": 0.85},
	}}
	cached := NewCachedExchangeRateProvider(source, infracache.NewMemoryCache(), time.Minute, discardLogger())

	_, err := cached.FetchRates(context.Background(), currency.USD)
	require.NoError(t, err)
	_, err = cached.FetchRates(context.Background(), currency.EUR)
	require.NoError(t, err)

	assert.Equal(t, 2, source.Calls())
}

func TestCachedFetchRates_ErrorsAreNotCached(t *testing.T) {
	source := &countingSource{err: errors.New("upstream down")}
	cached := NewCachedExchangeRateProvider(source, infracache.NewMemoryCache(), time.Minute, discardLogger())

	_, err := cached.FetchRates(context.Background(), currency.USD)
	require.Error(t, err)
	_, err = cached.FetchRates(context.Background(), currency.USD)
	require.Error(t, err)

	assert.Equal(t, 2, source.Calls())
}

func TestCachedName_DelegatesToSource(t *testing.T) {
	cached := NewCachedExchangeRateProvider(&countingSource{}, infracache.NewMemoryCache(), time.Minute, discardLogger())
	assert.Equal(t, "counting", cached.Name())
}
