package history

import (
	"context"
	"fmt"

	"github.com/mihirand/fxconvert/pkg/currency"
	"github.com/mihirand/fxconvert/pkg/domain"
	"gorm.io/gorm"
)

// DefaultListLimit bounds history listings when the caller does not.
const DefaultListLimit = 50

// Repository stores and lists conversion records in the database.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a history repository backed by the given connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Save persists one conversion record.
func (r *Repository) Save(ctx context.Context, rec *domain.ConversionRecord) error {
	model := Conversion{
		ID:           rec.ID,
		Amount:       rec.Amount,
		FromCurrency: rec.From.String(),
		ToCurrency:   rec.To.String(),
		Rate:         rec.Rate,
		Result:       rec.Result,
		CreatedAt:    rec.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save conversion: %w", err)
	}
	return nil
}

// List returns the most recent conversions, newest first.
func (r *Repository) List(ctx context.Context, limit int) ([]*domain.ConversionRecord, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	var models []Conversion
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}

	records := make([]*domain.ConversionRecord, 0, len(models))
	for _, m := range models {
		records = append(records, &domain.ConversionRecord{
			ID:        m.ID,
			Amount:    m.Amount,
			From:      currency.Code(m.FromCurrency),
			To:        currency.Code(m.ToCurrency),
			Rate:      m.Rate,
			Result:    m.Result,
			CreatedAt: m.CreatedAt,
		})
	}
	return records, nil
}
