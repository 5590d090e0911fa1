package dto

import "time"

// CreateOutletRequest entrada para crear un outlet (el id lo trae el llamador).
type CreateOutletRequest struct {
	ID           string `json:"id" validate:"required"`
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Area         string `json:"area" validate:"required"`
	ZoneID       string `json:"zoneId" validate:"required"`
	Status       string `json:"status" validate:"omitempty,oneof=Active Inactive"`
	ReviewStatus string `json:"reviewStatus" validate:"omitempty"`
	Contact      string `json:"contact" validate:"omitempty"`
	Phone        string `json:"phone" validate:"omitempty"`
	CreatedBy    string `json:"createdBy" validate:"omitempty"`
}

// UpdateOutletRequest entrada del PATCH parcial de un outlet.
type UpdateOutletRequest struct {
	Name         *string `json:"name,omitempty"`
	Area         *string `json:"area,omitempty"`
	ZoneID       *string `json:"zoneId,omitempty"`
	Status       *string `json:"status,omitempty"`
	ReviewStatus *string `json:"reviewStatus,omitempty"`
	Contact      *string `json:"contact,omitempty"`
	Phone        *string `json:"phone,omitempty"`
}

// OutletResponse salida de un outlet.
type OutletResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Area         string    `json:"area"`
	ZoneID       string    `json:"zoneId"`
	Status       string    `json:"status"`
	ReviewStatus string    `json:"reviewStatus"`
	Contact      string    `json:"contact"`
	Phone        string    `json:"phone"`
	CreatedBy    string    `json:"createdBy,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
