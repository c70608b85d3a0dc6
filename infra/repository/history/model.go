// Package history persists completed conversions.
package history

import (
	"time"

	"github.com/google/uuid"
)

// Conversion is the GORM model for one stored conversion.
type Conversion struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Amount       string    `gorm:"not null"`
	FromCurrency string    `gorm:"type:varchar(3);not null"`
	ToCurrency   string    `gorm:"type:varchar(3);not null"`
	Rate         float64   `gorm:"not null"`
	Result       string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName overrides the default table name.
func (Conversion) TableName() string {
	return "conversions"
}
