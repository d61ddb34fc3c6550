package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterVetRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FullName       string `json:"full_name" validate:"required,min=2,max=255"`
	LicenseNumber  string `json:"license_number" validate:"required,min=5,max=50"`
	Specialization string `json:"specialization" validate:"required,min=2,max=100"`
	Biography      string `json:"biography" validate:"omitempty,max=2000"`
}

type UpdateVetProfileRequest struct {
	FullName       string  `json:"full_name" validate:"omitempty,min=2,max=255"`
	Specialization string  `json:"specialization" validate:"omitempty,min=2,max=100"`
	Biography      *string `json:"biography" validate:"omitempty,max=2000"`
	IsActive       *bool   `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type VetResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	LicenseNumber  string    `json:"license_number"`
	Specialization string    `json:"specialization"`
	Biography      string    `json:"biography,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type VetListResponse struct {
	Vets  []VetResponse `json:"vets"`
	Total int           `json:"total"`
}

// VetNamesResponse lists the full names of active veterinarians, used to
// populate the vet picker on the booking form.
type VetNamesResponse struct {
	Names []string `json:"names"`
}
