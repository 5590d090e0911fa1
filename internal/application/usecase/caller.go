package usecase

import (
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
	"github.com/eggbucket/eggbucket-api/pkg/zone"
)

// Caller identifica al usuario autenticado de un request (claims del JWT,
// nunca datos enviados en el body). Los casos de uso deciden alcance de zona
// con esto; el cliente no elige su propia zona.
type Caller struct {
	Username string
	Role     string
	Zone     string
}

// IsAdmin indica si el caller tiene acceso irrestricto.
func (c Caller) IsAdmin() bool { return c.Role == entity.RoleAdmin }

// CanAccessZone indica si el caller puede operar sobre la zona dada.
func (c Caller) CanAccessZone(zoneID string) bool {
	if c.IsAdmin() {
		return true
	}
	return zone.Match(c.Zone, zoneID)
}

// EntryZone devuelve la zona efectiva de captura del caller: su zona asignada,
// o la zona por defecto para un Admin sin zona propia.
func (c Caller) EntryZone() string {
	if c.Zone == "" && c.IsAdmin() {
		return zone.Default
	}
	return c.Zone
}
