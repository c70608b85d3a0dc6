// Package domain holds the conversion types and the validation and
// calculation rules they obey.
package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mihirand/fxconvert/pkg/currency"
)

// MaxAmountLen caps the accepted amount input length.
const MaxAmountLen = 10

var amountPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// ConversionRequest is one user-submitted conversion. The amount is kept as
// the raw input string so the result can echo it back verbatim.
type ConversionRequest struct {
	Amount string
	From   currency.Code
	To     currency.Code
}

// Validate checks the request before any rate lookup happens.
// It returns ErrInvalidAmount or ErrMissingSelection, or nil.
func (r ConversionRequest) Validate() error {
	if len(r.Amount) > MaxAmountLen || !amountPattern.MatchString(r.Amount) {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, r.Amount)
	}
	value, err := strconv.ParseFloat(r.Amount, 64)
	if err != nil || value <= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, r.Amount)
	}
	if r.From == "" || r.To == "" {
		return ErrMissingSelection
	}
	return nil
}

// AmountValue parses the validated amount string. Call Validate first.
func (r ConversionRequest) AmountValue() float64 {
	value, _ := strconv.ParseFloat(r.Amount, 64)
	return value
}

// RateTable holds the exchange rates for all currencies relative to one base
// currency, as returned by the rate source. It is discarded after use.
type RateTable struct {
	Base      currency.Code
	Rates     map[string]float64
	FetchedAt time.Time
}

// Rate looks up the rate for the target currency.
func (t *RateTable) Rate(target currency.Code) (float64, bool) {
	rate, ok := t.Rates[target.String()]
	return rate, ok
}

// ConversionResult is the outcome of one successful conversion. Result is
// formatted with exactly two fractional digits.
type ConversionResult struct {
	Amount string        `json:"amount"`
	From   currency.Code `json:"from"`
	To     currency.Code `json:"to"`
	Rate   float64       `json:"rate"`
	Result string        `json:"result"`
}

// Convert computes the converted amount for a validated request at the given
// rate. Rounding follows strconv.FormatFloat on binary floats, so results are
// not bit-exact across platforms that round decimally.
func Convert(req ConversionRequest, rate float64) ConversionResult {
	converted := req.AmountValue() * rate
	return ConversionResult{
		Amount: req.Amount,
		From:   req.From,
		To:     req.To,
		Rate:   rate,
		Result: strconv.FormatFloat(converted, 'f', 2, 64),
	}
}

// ConversionRecord is a persisted conversion, one row of the history trail.
type ConversionRecord struct {
	ID        uuid.UUID     `json:"id"`
	Amount    string        `json:"amount"`
	From      currency.Code `json:"from"`
	To        currency.Code `json:"to"`
	Rate      float64       `json:"rate"`
	Result    string        `json:"result"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewConversionRecord builds a record for a result computed now.
func NewConversionRecord(result ConversionResult) *ConversionRecord {
	return &ConversionRecord{
		ID:        uuid.New(),
		Amount:    result.Amount,
		From:      result.From,
		To:        result.To,
		Rate:      result.Rate,
		Result:    result.Result,
		CreatedAt: time.Now().UTC(),
	}
}
