package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EggRate representa la tarifa NECC publicada para una fecha.
type EggRate struct {
	ID        string
	Date      string // "YYYY-MM-DD"
	Rate      decimal.Decimal
	Remarks   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
