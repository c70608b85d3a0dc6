// Package currency defines the currency codes the converter accepts and the
// metadata shown for each of them. The set is closed: rates are only quoted
// between currencies registered here.
package currency

import "strings"

// Code represents a 3-letter currency code (e.g., "USD", "EUR").
type Code string

// String returns the code as a plain string.
func (c Code) String() string {
	return string(c)
}

// Supported currency codes.
const (
	USD Code = "USD" // US Dollar
	EUR Code = "EUR" // Euro
	GBP Code = "GBP" // British Pound
	JPY Code = "JPY" // Japanese Yen
	AUD Code = "AUD" // Australian Dollar
	LKR Code = "LKR" // Sri Lanka Rupee
	INR Code = "INR" // Indian Rupee
	CAD Code = "CAD" // Canadian Dollar
	CHF Code = "CHF" // Swiss Franc
	CNY Code = "CNY" // Chinese Yuan
)

// DefaultCurrency is the fallback base currency code.
const DefaultCurrency = USD

// Meta holds display metadata for one currency.
type Meta struct {
	Code     Code   `json:"code"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Registry is a closed set of supported currencies with a stable listing order.
type Registry struct {
	order      []Code
	currencies map[Code]Meta
}

// NewRegistry creates a registry populated with the supported currencies.
func NewRegistry() *Registry {
	r := &Registry{currencies: make(map[Code]Meta)}

	defaults := []Meta{
		{Code: USD, Name: "US Dollar", Symbol: "$", Decimals: 2},
		{Code: EUR, Name: "Euro", Symbol: "€", Decimals: 2},
		{Code: GBP, Name: "British Pound", Symbol: "£", Decimals: 2},
		{Code: JPY, Name: "Japanese Yen", Symbol: "¥", Decimals: 0},
		{Code: AUD, Name: "Australian Dollar", Symbol: "A$", Decimals: 2},
		{Code: LKR, Name: "Sri Lanka Rupee", Symbol: "Rs", Decimals: 2},
		{Code: INR, Name: "Indian Rupee", Symbol: "₹", Decimals: 2},
		{Code: CAD, Name: "Canadian Dollar", Symbol: "C$", Decimals: 2},
		{Code: CHF, Name: "Swiss Franc", Symbol: "CHF", Decimals: 2},
		{Code: CNY, Name: "Chinese Yuan", Symbol: "¥", Decimals: 2},
	}
	for _, meta := range defaults {
		r.register(meta)
	}

	return r
}

func (r *Registry) register(meta Meta) {
	if _, exists := r.currencies[meta.Code]; !exists {
		r.order = append(r.order, meta.Code)
	}
	r.currencies[meta.Code] = meta
}

// Get returns the metadata for a code. Lookup is case-insensitive.
func (r *Registry) Get(code Code) (Meta, bool) {
	meta, ok := r.currencies[normalize(code)]
	return meta, ok
}

// IsSupported reports whether the code is part of the registry.
func (r *Registry) IsSupported(code Code) bool {
	_, ok := r.currencies[normalize(code)]
	return ok
}

// List returns all registered currencies in registration order.
func (r *Registry) List() []Meta {
	metas := make([]Meta, 0, len(r.order))
	for _, code := range r.order {
		metas = append(metas, r.currencies[code])
	}
	return metas
}

// Codes returns the registered codes in registration order.
func (r *Registry) Codes() []Code {
	codes := make([]Code, len(r.order))
	copy(codes, r.order)
	return codes
}

func normalize(code Code) Code {
	return Code(strings.ToUpper(strings.TrimSpace(string(code))))
}
