package convert

import (
	"github.com/mihirand/fxconvert/pkg/currency"
	"github.com/mihirand/fxconvert/pkg/domain"
)

// Request represents the request body for a conversion. Amount format and
// currency selection are checked by the domain validator so the error kinds
// stay consistent; the tags only guard shape when a code is present.
type Request struct {
	Amount string `json:"amount"`
	From   string `json:"from" validate:"omitempty,len=3,uppercase"`
	To     string `json:"to" validate:"omitempty,len=3,uppercase"`
}

// ToDomain converts the request body to a domain conversion request.
func (r *Request) ToDomain() domain.ConversionRequest {
	return domain.ConversionRequest{
		Amount: r.Amount,
		From:   currency.Code(r.From),
		To:     currency.Code(r.To),
	}
}

// Response represents the response body for a completed conversion.
type Response struct {
	Amount string  `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Rate   float64 `json:"rate"`
	Result string  `json:"result"`
}

// ToResponse converts a conversion result to a response DTO.
func ToResponse(result *domain.ConversionResult) *Response {
	if result == nil {
		return nil
	}
	return &Response{
		Amount: result.Amount,
		From:   result.From.String(),
		To:     result.To.String(),
		Rate:   result.Rate,
		Result: result.Result,
	}
}
