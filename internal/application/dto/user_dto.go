package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"omitempty,max=200"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Role     string `json:"role" validate:"required,oneof=Admin Supervisor DataAgent Viewer"`
	ZoneID   string `json:"zoneId" validate:"omitempty"`
}

// DeleteUserRequest entrada para eliminar un usuario.
type DeleteUserRequest struct {
	Username string `json:"username" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	ZoneID    string    `json:"zoneId,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SigninRequest entrada para iniciar sesión.
type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SigninResponse salida con token JWT; incluye role y zona para el cliente.
type SigninResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
