package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending     AppointmentStatus = "pending"
	AppointmentStatusApproved    AppointmentStatus = "approved"
	AppointmentStatusRejected    AppointmentStatus = "rejected"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
)

// PaymentStatus represents how far payment for an appointment has progressed
type PaymentStatus string

const (
	PaymentStatusPending         PaymentStatus = "pending"
	PaymentStatusDownPaymentPaid PaymentStatus = "down_payment_paid"
	PaymentStatusFullyPaid       PaymentStatus = "fully_paid"
)

// Appointment represents a booked clinic visit. Date and Time are stored as
// canonical zero-padded strings (YYYY-MM-DD / HH:MM); the slot resolver
// compares them with exact string equality.
type Appointment struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code    string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	OwnerID *uuid.UUID `gorm:"type:uuid;index" json:"owner_id,omitempty"`

	PetName   string `gorm:"type:varchar(100);not null" json:"pet_name"`
	OwnerName string `gorm:"type:varchar(255);not null" json:"owner_name"`
	Phone     string `gorm:"type:varchar(20);not null" json:"phone"`
	Email     string `gorm:"type:varchar(255);not null" json:"email"`

	Date string `gorm:"type:char(10);not null;uniqueIndex:uq_appointments_slot" json:"date"`
	Time string `gorm:"type:char(5);not null;uniqueIndex:uq_appointments_slot" json:"time"`
	Vet  string `gorm:"type:varchar(100);not null;index" json:"vet"`

	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Reason      string            `gorm:"type:text" json:"reason,omitempty"`
	Notes       string            `gorm:"type:text" json:"notes,omitempty"`
	ServiceType string            `gorm:"type:varchar(100)" json:"service_type,omitempty"`

	Price         decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"price"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	PaymentData   JSON            `gorm:"type:jsonb" json:"payment_data,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// CanTransitionTo reports whether the status state machine allows moving
// from the appointment's current status to target.
//
//	pending  -> approved | rejected | cancelled | rescheduled
//	approved -> cancelled | rescheduled
//
// rejected and cancelled are terminal; rescheduled keeps the appointment
// live under its new date/time and may still be cancelled or moved again.
func (a *Appointment) CanTransitionTo(target AppointmentStatus) bool {
	switch a.Status {
	case AppointmentStatusPending:
		return target == AppointmentStatusApproved ||
			target == AppointmentStatusRejected ||
			target == AppointmentStatusCancelled ||
			target == AppointmentStatusRescheduled
	case AppointmentStatusApproved, AppointmentStatusRescheduled:
		return target == AppointmentStatusCancelled || target == AppointmentStatusRescheduled
	default:
		return false
	}
}

// CanAdvancePaymentTo allows forward-only payment progress:
// pending -> down_payment_paid -> fully_paid (skipping the down payment is allowed).
func (a *Appointment) CanAdvancePaymentTo(target PaymentStatus) bool {
	switch a.PaymentStatus {
	case PaymentStatusPending:
		return target == PaymentStatusDownPaymentPaid || target == PaymentStatusFullyPaid
	case PaymentStatusDownPaymentPaid:
		return target == PaymentStatusFullyPaid
	default:
		return false
	}
}

// IsValidAppointmentStatus reports whether s is a known status value.
func IsValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusApproved, AppointmentStatusRejected,
		AppointmentStatusCancelled, AppointmentStatusRescheduled:
		return true
	}
	return false
}
