package entity

import "testing"

func TestAppointmentCanTransitionTo(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{AppointmentStatusPending, AppointmentStatusApproved, true},
		{AppointmentStatusPending, AppointmentStatusRejected, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusRescheduled, true},
		{AppointmentStatusApproved, AppointmentStatusCancelled, true},
		{AppointmentStatusApproved, AppointmentStatusRescheduled, true},
		{AppointmentStatusApproved, AppointmentStatusApproved, false},
		{AppointmentStatusApproved, AppointmentStatusPending, false},
		{AppointmentStatusRejected, AppointmentStatusApproved, false},
		{AppointmentStatusRejected, AppointmentStatusPending, false},
		{AppointmentStatusCancelled, AppointmentStatusRescheduled, false},
		{AppointmentStatusRescheduled, AppointmentStatusCancelled, true},
		{AppointmentStatusRescheduled, AppointmentStatusRescheduled, true},
		{AppointmentStatusRescheduled, AppointmentStatusApproved, false},
	}

	for _, tt := range tests {
		a := Appointment{Status: tt.from}
		if got := a.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestAppointmentCanAdvancePaymentTo(t *testing.T) {
	tests := []struct {
		from PaymentStatus
		to   PaymentStatus
		want bool
	}{
		{PaymentStatusPending, PaymentStatusDownPaymentPaid, true},
		{PaymentStatusPending, PaymentStatusFullyPaid, true},
		{PaymentStatusDownPaymentPaid, PaymentStatusFullyPaid, true},
		{PaymentStatusDownPaymentPaid, PaymentStatusPending, false},
		{PaymentStatusFullyPaid, PaymentStatusDownPaymentPaid, false},
		{PaymentStatusFullyPaid, PaymentStatusFullyPaid, false},
	}

	for _, tt := range tests {
		a := Appointment{PaymentStatus: tt.from}
		if got := a.CanAdvancePaymentTo(tt.to); got != tt.want {
			t.Errorf("CanAdvancePaymentTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
