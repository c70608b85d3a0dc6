package domain

import "errors"

// Conversion error taxonomy. Every failure surfaced to a client wraps one of
// these sentinels so callers can branch with errors.Is.
var (
	// ErrInvalidAmount is returned when the submitted amount is not a
	// positive decimal number.
	ErrInvalidAmount = errors.New("amount must be a positive number")
	// ErrMissingSelection is returned when either currency code is empty.
	ErrMissingSelection = errors.New("both currencies must be selected")
	// ErrExchangeRateUnavailable is returned when the rate source cannot be
	// reached or answers with a non-success status.
	ErrExchangeRateUnavailable = errors.New("exchange rate service unavailable")
	// ErrUnsupportedCurrencyPair is returned when the fetched rate table has
	// no entry for the target currency.
	ErrUnsupportedCurrencyPair = errors.New("no rate available for currency pair")
	// ErrConversionInFlight is returned when a conversion is submitted while
	// a previous one is still outstanding.
	ErrConversionInFlight = errors.New("a conversion is already in progress")
)
