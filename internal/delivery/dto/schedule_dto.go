package dto

import "time"

// Request DTOs

type CreateScheduleRequest struct {
	Date          string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime       string   `json:"end_time" validate:"required,datetime=15:04"`
	Veterinarians []string `json:"veterinarians" validate:"required,min=1,dive,min=2,max=100"`
	Notes         string   `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateScheduleRequest struct {
	Date          string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime     string   `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime       string   `json:"end_time" validate:"omitempty,datetime=15:04"`
	Veterinarians []string `json:"veterinarians" validate:"omitempty,min=1,dive,min=2,max=100"`
	Notes         *string  `json:"notes" validate:"omitempty,max=1000"`
}

// Response DTOs

type ScheduleResponse struct {
	ID            int       `json:"id"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Veterinarians []string  `json:"veterinarians"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}
