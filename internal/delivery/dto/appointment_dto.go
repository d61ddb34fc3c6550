package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type BookAppointmentRequest struct {
	PetName     string `json:"pet_name" validate:"required,min=1,max=100"`
	OwnerName   string `json:"owner_name" validate:"required,min=2,max=255"`
	Phone       string `json:"phone" validate:"required,min=8,max=20"`
	Email       string `json:"email" validate:"required,email"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required,datetime=15:04"`
	Vet         string `json:"vet" validate:"required,min=2,max=100"`
	Reason      string `json:"reason" validate:"omitempty,max=1000"`
	ServiceType string `json:"service_type" validate:"omitempty,max=100"`
	Price       string `json:"price" validate:"omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected cancelled rescheduled"`
	// New slot, required only when status is rescheduled.
	Date  string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time  string `json:"time" validate:"omitempty,datetime=15:04"`
	Notes string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string                 `json:"payment_status" validate:"required,oneof=down_payment_paid fully_paid"`
	PaymentData   map[string]interface{} `json:"payment_data" validate:"omitempty"`
}

type ListAppointmentsQuery struct {
	Date   string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Vet    string `json:"vet" validate:"omitempty,max=100"`
	Status string `json:"status" validate:"omitempty,oneof=pending approved rejected cancelled rescheduled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID            uuid.UUID              `json:"id"`
	Code          string                 `json:"code"`
	OwnerID       *uuid.UUID             `json:"owner_id,omitempty"`
	PetName       string                 `json:"pet_name"`
	OwnerName     string                 `json:"owner_name"`
	Phone         string                 `json:"phone"`
	Email         string                 `json:"email"`
	Date          string                 `json:"date"`
	Time          string                 `json:"time"`
	Vet           string                 `json:"vet"`
	Status        string                 `json:"status"`
	Reason        string                 `json:"reason,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	ServiceType   string                 `json:"service_type,omitempty"`
	Price         decimal.Decimal        `json:"price"`
	PaymentStatus string                 `json:"payment_status"`
	PaymentData   map[string]interface{} `json:"payment_data,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// SlotResponse describes one grid slot on a given date as the booking UI
// needs it: whether it is taken, whether the caller may pick it, and which
// veterinarians are on duty.
type SlotResponse struct {
	Time          string   `json:"time"`
	Booked        bool     `json:"booked"`
	Selectable    bool     `json:"selectable"`
	Veterinarians []string `json:"veterinarians"`
}

type DaySlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}
