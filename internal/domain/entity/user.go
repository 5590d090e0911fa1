package entity

import "time"

// Roles válidos para User, en orden descendente de privilegio.
const (
	RoleAdmin      = "Admin"
	RoleSupervisor = "Supervisor"
	RoleDataAgent  = "DataAgent"
	RoleViewer     = "Viewer"
)

// ValidRole indica si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSupervisor, RoleDataAgent, RoleViewer:
		return true
	}
	return false
}

// User representa un usuario del sistema. Username es la clave natural.
// Todos los roles salvo Admin quedan adscritos a exactamente una zona.
type User struct {
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Phone        string
	Role         string // Admin, Supervisor, DataAgent, Viewer
	ZoneID       string // requerido salvo para Admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
