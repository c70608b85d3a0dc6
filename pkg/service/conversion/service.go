// Package conversion orchestrates one currency conversion from raw input to
// displayed result: validate, fetch the rate table, compute, record.
package conversion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mihirand/fxconvert/pkg/currency"
	"github.com/mihirand/fxconvert/pkg/domain"
	"github.com/mihirand/fxconvert/pkg/provider"
)

// GenericFailureMessage is shown when a failure matches no known error kind.
const GenericFailureMessage = "conversion failed, please try again"

// HistoryRepository records completed conversions. Implementations may be
// backed by a database; the service treats recording as best-effort.
type HistoryRepository interface {
	Save(ctx context.Context, rec *domain.ConversionRecord) error
	List(ctx context.Context, limit int) ([]*domain.ConversionRecord, error)
}

// Snapshot is the displayed state of the converter: at most one of Result
// and Error is meaningful, and Loading reports an outstanding fetch.
type Snapshot struct {
	Loading bool
	Result  *domain.ConversionResult
	Error   string
}

// Service runs conversions. A submission walks validate → fetch → compute;
// validation failures never reach the network. While a fetch is outstanding
// further submissions are rejected, and a generation counter guards state
// writes so only the latest accepted submission updates the snapshot.
type Service struct {
	source   provider.ExchangeRateProvider
	registry *currency.Registry
	history  HistoryRepository
	logger   *slog.Logger

	mu         sync.Mutex
	loading    bool
	generation uint64
	result     *domain.ConversionResult
	errMsg     string
}

// New creates a conversion service. history may be nil, which disables
// recording.
func New(
	source provider.ExchangeRateProvider,
	registry *currency.Registry,
	history HistoryRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		source:   source,
		registry: registry,
		history:  history,
		logger:   logger,
	}
}

// Convert runs one conversion submission.
func (s *Service) Convert(ctx context.Context, req domain.ConversionRequest) (*domain.ConversionResult, error) {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil, domain.ErrConversionInFlight
	}

	if err := req.Validate(); err != nil {
		// Loading is never raised for invalid input.
		s.errMsg = messageFor(err)
		s.mu.Unlock()
		s.logger.Debug("Conversion rejected by validator", "amount", req.Amount,
			"from", req.From, "to", req.To, "error", err)
		return nil, err
	}

	s.loading = true
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	table, err := s.source.FetchRates(ctx, req.From)
	if err != nil {
		s.fail(gen, err)
		return nil, err
	}

	rate, ok := table.Rate(req.To)
	if !ok {
		err = fmt.Errorf("%w: %s to %s", domain.ErrUnsupportedCurrencyPair, req.From, req.To)
		s.fail(gen, err)
		return nil, err
	}

	result := domain.Convert(req, rate)

	s.mu.Lock()
	if gen == s.generation {
		s.result = &result
		s.errMsg = ""
		s.loading = false
	}
	s.mu.Unlock()

	s.record(ctx, result)

	s.logger.Info("Conversion completed", "amount", req.Amount,
		"from", req.From, "to", req.To, "rate", rate, "result", result.Result)
	return &result, nil
}

// Rates fetches the rate table for a base currency.
func (s *Service) Rates(ctx context.Context, base currency.Code) (*domain.RateTable, error) {
	if !s.registry.IsSupported(base) {
		return nil, fmt.Errorf("%w: base %s", domain.ErrUnsupportedCurrencyPair, base)
	}
	return s.source.FetchRates(ctx, base)
}

// History lists the most recent recorded conversions, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]*domain.ConversionRecord, error) {
	if s.history == nil {
		return []*domain.ConversionRecord{}, nil
	}
	return s.history.List(ctx, limit)
}

// Snapshot returns the current displayed state.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Loading: s.loading,
		Result:  s.result,
		Error:   s.errMsg,
	}
}

func (s *Service) fail(gen uint64, err error) {
	s.mu.Lock()
	if gen == s.generation {
		s.errMsg = messageFor(err)
		s.loading = false
	}
	s.mu.Unlock()
	s.logger.Warn("Conversion failed", "error", err)
}

func (s *Service) record(ctx context.Context, result domain.ConversionResult) {
	if s.history == nil {
		return
	}
	rec := domain.NewConversionRecord(result)
	if err := s.history.Save(ctx, rec); err != nil {
		s.logger.Warn("Failed to record conversion", "id", rec.ID, "error", err)
	}
}

// messageFor maps an error to the user-visible failure message. Unknown
// errors collapse to a generic message.
func messageFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrMissingSelection),
		errors.Is(err, domain.ErrExchangeRateUnavailable),
		errors.Is(err, domain.ErrUnsupportedCurrencyPair):
		return err.Error()
	default:
		return GenericFailureMessage
	}
}
