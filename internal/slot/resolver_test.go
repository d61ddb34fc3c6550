package slot

import (
	"reflect"
	"testing"

	"vet-clinic-management/internal/domain/entity"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9:30", 0, true},
		{"0930", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMinutes(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMinutes(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIsBooked(t *testing.T) {
	appointments := []entity.Appointment{
		{Date: "2025-03-10", Time: "09:00", Status: entity.AppointmentStatusCancelled},
	}

	if !IsBooked(appointments, "2025-03-10", "09:00") {
		t.Error("expected 09:00 to be booked")
	}
	// Status-blind: a cancelled appointment still occupies the slot.
	if !IsBooked(appointments, "2025-03-10", "09:00") {
		t.Error("cancelled appointment should still block the slot")
	}
	if IsBooked(appointments, "2025-03-10", "09:30") {
		t.Error("09:30 should be free")
	}
	if IsBooked(appointments, "2025-03-11", "09:00") {
		t.Error("other date should be free")
	}
	// Exact string equality, no normalization.
	if IsBooked(appointments, "2025-03-10", "9:00") {
		t.Error("non-canonical time must not match")
	}
}

func TestInScheduleHalfOpenInterval(t *testing.T) {
	schedules := []entity.Schedule{
		{Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00", Veterinarians: entity.StringList{"Dr. A"}},
	}

	tests := []struct {
		time string
		want bool
	}{
		{"09:00", true},  // start is included
		{"09:30", true},
		{"10:00", false}, // end is excluded
		{"08:59", false},
		{"bogus", false}, // malformed input fails closed
	}
	for _, tt := range tests {
		if got := InSchedule(schedules, "2025-03-10", tt.time); got != tt.want {
			t.Errorf("InSchedule(%q) = %v, want %v", tt.time, got, tt.want)
		}
	}

	if InSchedule(schedules, "2025-03-11", "09:30") {
		t.Error("different date should not match")
	}
}

func TestAvailableVeterinarians(t *testing.T) {
	schedules := []entity.Schedule{
		{Date: "2025-03-10", StartTime: "08:00", EndTime: "12:00", Veterinarians: entity.StringList{"Dr. B", "Dr. A"}},
		{Date: "2025-03-10", StartTime: "09:00", EndTime: "17:00", Veterinarians: entity.StringList{"Dr. C", "Dr. A"}},
	}

	got := AvailableVeterinarians(schedules, "2025-03-10", "09:30")
	want := []string{"Dr. A", "Dr. B", "Dr. C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("union of overlapping windows = %v, want %v", got, want)
	}

	got = AvailableVeterinarians(schedules, "2025-03-10", "13:00")
	want = []string{"Dr. A", "Dr. C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("single window = %v, want %v", got, want)
	}

	// No window covers the slot on another date: fixed fallback roster.
	got = AvailableVeterinarians(schedules, "2025-03-11", "09:00")
	if !reflect.DeepEqual(got, DefaultVeterinarians) {
		t.Errorf("fallback = %v, want %v", got, DefaultVeterinarians)
	}
	if len(got) != 4 {
		t.Errorf("fallback roster must have 4 names, got %d", len(got))
	}
}

func TestAvailableVeterinariansIdempotent(t *testing.T) {
	schedules := []entity.Schedule{
		{Date: "2025-03-10", StartTime: "08:00", EndTime: "12:00", Veterinarians: entity.StringList{"Dr. Smith"}},
	}
	first := AvailableVeterinarians(schedules, "2025-03-10", "09:00")
	second := AvailableVeterinarians(schedules, "2025-03-10", "09:00")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
}

func TestSelectable(t *testing.T) {
	appointments := []entity.Appointment{
		{Date: "2025-03-10", Time: "09:00", Vet: "Dr. Smith"},
	}
	schedules := []entity.Schedule{
		{Date: "2025-03-10", StartTime: "08:00", EndTime: "12:00", Veterinarians: entity.StringList{"Dr. Smith"}},
	}

	if Selectable(appointments, schedules, "2025-03-10", "09:00", false) {
		t.Error("booked slot must not be selectable")
	}
	if !Selectable(appointments, schedules, "2025-03-10", "09:30", false) {
		t.Error("open in-schedule slot should be selectable")
	}
	if Selectable(appointments, schedules, "2025-03-10", "13:00", false) {
		t.Error("slot outside every window should not be selectable for owners")
	}
	// Privileged callers bypass the schedule check but not the booked check.
	if !Selectable(appointments, schedules, "2025-03-10", "13:00", true) {
		t.Error("staff should be able to select out-of-schedule slots")
	}
	if Selectable(appointments, schedules, "2025-03-10", "09:00", true) {
		t.Error("staff must still respect the booked check")
	}
}

func TestBookingScenario(t *testing.T) {
	schedules := []entity.Schedule{
		{Date: "2025-03-10", StartTime: "08:00", EndTime: "12:00", Veterinarians: entity.StringList{"Dr. Smith"}},
	}
	appointments := []entity.Appointment{
		{Date: "2025-03-10", Time: "09:00", Vet: "Dr. Smith"},
	}

	if !IsBooked(appointments, "2025-03-10", "09:00") {
		t.Error("09:00 should be booked")
	}
	if IsBooked(appointments, "2025-03-10", "09:30") {
		t.Error("09:30 should be free")
	}
	if !InSchedule(schedules, "2025-03-10", "09:30") {
		t.Error("09:30 should be open on the schedule")
	}
}
