package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddRecordRequest entrada del upsert por fecha. Outlets es el payload de
// ventas/pagos; Damages el de daños (mismo contrato, distinta clave JSON).
// Los valores llegan crudos y se coercen en dominio: inválidos degradan a 0.
type AddRecordRequest struct {
	Date    string                 `json:"date" validate:"required"`
	Outlets map[string]interface{} `json:"outlets" validate:"omitempty"`
	Damages map[string]interface{} `json:"damages" validate:"omitempty"`
}

// Values devuelve el mapa correspondiente a la clave de payload del kind.
func (r *AddRecordRequest) Values(payloadKey string) map[string]interface{} {
	if payloadKey == "damages" {
		return r.Damages
	}
	return r.Outlets
}

// UpsertResponse salida del upsert: id del registro y si hubo fusión.
type UpsertResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Merged  bool   `json:"merged,omitempty"`
}

// UpdateRecordRequest entrada del PATCH parcial por id.
type UpdateRecordRequest struct {
	Date    *string                `json:"date,omitempty"`
	Outlets map[string]interface{} `json:"outlets,omitempty"`
	Damages map[string]interface{} `json:"damages,omitempty"`
}

// RecordResponse salida de un registro diario.
type RecordResponse struct {
	ID        string                     `json:"id"`
	Date      string                     `json:"date"`
	Outlets   map[string]decimal.Decimal `json:"outlets"`
	Total     decimal.Decimal            `json:"total"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}
