package entity

import "time"

// Estados de un outlet.
const (
	OutletStatusActive   = "Active"
	OutletStatusInactive = "Inactive"
)

// Outlet representa un punto de venta físico, adscrito a una zona.
// El ID lo suministra el llamador (clave natural), no el store.
type Outlet struct {
	ID           string
	Name         string
	Area         string
	ZoneID       string // formato libre ("2", "Zone 2"); comparar siempre normalizado
	Status       string // Active, Inactive
	ReviewStatus string
	Contact      string
	Phone        string
	CreatedBy    string // username del creador; vacío si se desconoce
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
