package domain

import (
	"testing"

	"github.com/mihirand/fxconvert/pkg/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ConversionRequest
		wantErr error
	}{
		{
			name: "valid integer amount",
			req:  ConversionRequest{Amount: "100", From: currency.USD, To: currency.EUR},
		},
		{
			name: "valid decimal amount",
			req:  ConversionRequest{Amount: "0.5", From: currency.USD, To: currency.EUR},
		},
		{
			name:    "empty amount",
			req:     ConversionRequest{Amount: "", From: currency.USD, To: currency.EUR},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "non-numeric amount",
			req:     ConversionRequest{Amount: "abc", From: currency.USD, To: currency.EUR},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			req:     ConversionRequest{Amount: "-5", From: currency.USD, To: currency.EUR},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "zero amount",
			req:     ConversionRequest{Amount: "0", From: currency.USD, To: currency.EUR},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "double decimal point",
			req:     ConversionRequest{Amount: "1.2.3", From: currency.USD, To: currency.EUR},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "leading decimal point",
			req:     ConversionRequest{Amount: ".5", From: currency.USD, To: currency.EUR},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "trailing decimal point",
			req:     ConversionRequest{Amount: "5.", From: currency.USD, To: currency.EUR},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "amount with spaces",
			req:     ConversionRequest{Amount: " 10", From: currency.USD, To: currency.EUR},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "amount over ten characters",
			req:     ConversionRequest{Amount: "12345678901", From: currency.USD, To: currency.EUR},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "missing base currency",
			req:     ConversionRequest{Amount: "100", From: "", To: currency.EUR},
			wantErr: ErrMissingSelection,
		},
		{
			name:    "missing target currency",
			req:     ConversionRequest{Amount: "100", From: currency.USD, To: ""},
			wantErr: ErrMissingSelection,
		},
		{
			name:    "both currencies missing",
			req:     ConversionRequest{Amount: "100"},
			wantErr: ErrMissingSelection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		rate   float64
		want   string
	}{
		{name: "simple conversion", amount: "100", rate: 0.85, want: "85.00"},
		{name: "rounds to two digits", amount: "10", rate: 3.3333, want: "33.33"},
		{name: "whole result padded", amount: "1", rate: 2, want: "2.00"},
		{name: "rounds up", amount: "1", rate: 0.005, want: "0.01"},
		{name: "large rate", amount: "3", rate: 149.55, want: "448.65"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ConversionRequest{Amount: tt.amount, From: currency.USD, To: currency.EUR}
			result := Convert(req, tt.rate)

			assert.Equal(t, tt.want, result.Result)
			assert.Equal(t, tt.amount, result.Amount)
			assert.Equal(t, currency.USD, result.From)
			assert.Equal(t, currency.EUR, result.To)
			assert.Equal(t, tt.rate, result.Rate)
		})
	}
}

func TestRateTable_Rate(t *testing.T) {
	table := &RateTable{
		Base:  currency.USD,
		Rates: map[string]float64{"EUR": 0.85, "GBP": 0.74},
	}

	rate, ok := table.Rate(currency.EUR)
	require.True(t, ok)
	assert.Equal(t, 0.85, rate)

	_, ok = table.Rate(currency.JPY)
	assert.False(t, ok)
}

func TestNewConversionRecord(t *testing.T) {
	result := ConversionResult{
		Amount: "100",
		From:   currency.USD,
		To:     currency.EUR,
		Rate:   0.85,
		Result: "85.00",
	}

	rec := NewConversionRecord(result)

	require.NotNil(t, rec)
	assert.NotEqual(t, [16]byte{}, [16]byte(rec.ID))
	assert.Equal(t, result.Amount, rec.Amount)
	assert.Equal(t, result.From, rec.From)
	assert.Equal(t, result.To, rec.To)
	assert.Equal(t, result.Rate, rec.Rate)
	assert.Equal(t, result.Result, rec.Result)
	assert.False(t, rec.CreatedAt.IsZero())
}
