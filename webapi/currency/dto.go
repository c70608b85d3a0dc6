package currency

import (
	"time"

	"github.com/mihirand/fxconvert/pkg/domain"
)

// RateTableResponse represents the response body for a rate table.
type RateTableResponse struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// ToRateTableResponse converts a domain rate table to a response DTO.
func ToRateTableResponse(table *domain.RateTable) *RateTableResponse {
	if table == nil {
		return nil
	}
	return &RateTableResponse{
		Base:      table.Base.String(),
		Rates:     table.Rates,
		FetchedAt: table.FetchedAt,
	}
}
