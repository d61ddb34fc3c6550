package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type VaccinationRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type CreatePetRecordRequest struct {
	PetName       string               `json:"pet_name" validate:"required,min=1,max=100"`
	Breed         string               `json:"breed" validate:"omitempty,max=100"`
	Age           int                  `json:"age" validate:"omitempty,min=0,max=100"`
	Weight        float64              `json:"weight" validate:"omitempty,min=0"`
	Gender        string               `json:"gender" validate:"required,oneof=male female"`
	Color         string               `json:"color" validate:"omitempty,max=50"`
	RecentIllness string               `json:"recent_illness" validate:"omitempty,max=1000"`
	Vaccinations  []VaccinationRequest `json:"vaccinations" validate:"omitempty,dive"`
	Allergies     []string             `json:"allergies" validate:"omitempty,dive,min=1,max=100"`
	Notes         string               `json:"notes" validate:"omitempty,max=1000"`
}

type UpdatePetRecordRequest struct {
	PetName       string               `json:"pet_name" validate:"omitempty,min=1,max=100"`
	Breed         string               `json:"breed" validate:"omitempty,max=100"`
	Age           *int                 `json:"age" validate:"omitempty,min=0,max=100"`
	Weight        *float64             `json:"weight" validate:"omitempty,min=0"`
	Gender        string               `json:"gender" validate:"omitempty,oneof=male female"`
	Color         string               `json:"color" validate:"omitempty,max=50"`
	RecentIllness *string              `json:"recent_illness" validate:"omitempty,max=1000"`
	Vaccinations  []VaccinationRequest `json:"vaccinations" validate:"omitempty,dive"`
	Allergies     []string             `json:"allergies" validate:"omitempty,dive,min=1,max=100"`
	Notes         *string              `json:"notes" validate:"omitempty,max=1000"`
}

// Response DTOs

type VaccinationResponse struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

type PetRecordResponse struct {
	ID            uuid.UUID             `json:"id"`
	OwnerID       uuid.UUID             `json:"owner_id"`
	PetName       string                `json:"pet_name"`
	Breed         string                `json:"breed,omitempty"`
	Age           int                   `json:"age"`
	Weight        float64               `json:"weight"`
	Gender        string                `json:"gender"`
	Color         string                `json:"color,omitempty"`
	RecentIllness string                `json:"recent_illness,omitempty"`
	Vaccinations  []VaccinationResponse `json:"vaccinations,omitempty"`
	Allergies     []string              `json:"allergies,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

type PetRecordListResponse struct {
	Records []PetRecordResponse `json:"records"`
	Total   int                 `json:"total"`
}
