package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRateRequest entrada para publicar una tarifa NECC. Rate llega crudo
// (los clientes la envían como string) y se coerce en el caso de uso.
type CreateRateRequest struct {
	Date    string      `json:"date" validate:"required"`
	Rate    interface{} `json:"rate" validate:"required"`
	Remarks string      `json:"remarks" validate:"omitempty,max=500"`
}

// UpdateRateRequest entrada del PATCH de una tarifa.
type UpdateRateRequest struct {
	Date    *string     `json:"date,omitempty"`
	Rate    interface{} `json:"rate,omitempty"`
	Remarks *string     `json:"remarks,omitempty"`
}

// RateResponse salida de una tarifa NECC.
type RateResponse struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Rate      decimal.Decimal `json:"rate"`
	Remarks   string          `json:"remarks"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
