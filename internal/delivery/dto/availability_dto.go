package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpsertAvailabilityRequest struct {
	VeterinarianName    string   `json:"veterinarian_name" validate:"required,min=2,max=100"`
	WorkingDays         []string `json:"working_days" validate:"required,min=1,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime           string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime             string   `json:"end_time" validate:"required,datetime=15:04"`
	AppointmentDuration int      `json:"appointment_duration" validate:"required,min=5,max=480"`
	BreakTime           int      `json:"break_time" validate:"omitempty,min=0,max=120"`
}

// Response DTOs

type AvailabilityResponse struct {
	ID                  uuid.UUID `json:"id"`
	VeterinarianName    string    `json:"veterinarian_name"`
	WorkingDays         []string  `json:"working_days"`
	StartTime           string    `json:"start_time"`
	EndTime             string    `json:"end_time"`
	AppointmentDuration int       `json:"appointment_duration"`
	BreakTime           int       `json:"break_time"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type AvailabilityListResponse struct {
	Availability []AvailabilityResponse `json:"availability"`
	Total        int                    `json:"total"`
}

// VetDaySlotsResponse lists the open slot starts for one veterinarian on one
// date, derived from their recurring availability template.
type VetDaySlotsResponse struct {
	VeterinarianName string   `json:"veterinarian_name"`
	Date             string   `json:"date"`
	Working          bool     `json:"working"`
	Slots            []string `json:"slots"`
}
