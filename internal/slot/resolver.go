// Package slot answers the three questions the booking flow asks about a
// calendar date and a time of day: is the slot already taken, does any
// clinic schedule cover it, and which veterinarians are rostered for it.
// All functions are pure and operate on in-memory snapshots; callers load
// the day's appointments and schedules first.
package slot

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"vet-clinic-management/internal/domain/entity"
)

// DefaultVeterinarians is the house roster shown when no schedule window
// covers the requested slot. Order is fixed.
var DefaultVeterinarians = []string{"Dr. Smith", "Dr. Johnson", "Dr. Williams", "Dr. Brown"}

// ErrInvalidTime is returned by ParseMinutes for anything that is not a
// canonical zero-padded 24-hour HH:MM string.
var ErrInvalidTime = errors.New("invalid time, expected HH:MM")

// ParseMinutes converts a canonical HH:MM string to minutes since midnight.
func ParseMinutes(hhmm string) (int, error) {
	hh, mm, ok := strings.Cut(hhmm, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, ErrInvalidTime
	}
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, ErrInvalidTime
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, ErrInvalidTime
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, ErrInvalidTime
	}
	return hours*60 + minutes, nil
}

// IsBooked reports whether any appointment occupies the slot. The check is
// exact string equality on date and time, and deliberately status-blind: a
// cancelled or rejected appointment still blocks the slot.
func IsBooked(appointments []entity.Appointment, date, timeOfDay string) bool {
	for _, apt := range appointments {
		if apt.Date == date && apt.Time == timeOfDay {
			return true
		}
	}
	return false
}

// InSchedule reports whether at least one schedule window on the date
// contains the time. Containment uses the half-open interval [start, end):
// a slot equal to the start time is in the window, one equal to the end
// time is not. Malformed times fail closed.
func InSchedule(schedules []entity.Schedule, date, timeOfDay string) bool {
	requested, err := ParseMinutes(timeOfDay)
	if err != nil {
		return false
	}
	for _, s := range schedules {
		if s.Date != date {
			continue
		}
		start, err := ParseMinutes(s.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseMinutes(s.EndTime)
		if err != nil {
			continue
		}
		if requested >= start && requested < end {
			return true
		}
	}
	return false
}

// AvailableVeterinarians unions the rosters of every schedule window on the
// date whose half-open interval contains the time, sorted alphabetically.
// When no window matches it falls back to DefaultVeterinarians in their
// fixed order: an unconfigured slot shows the whole house roster rather
// than nobody.
func AvailableVeterinarians(schedules []entity.Schedule, date, timeOfDay string) []string {
	requested, err := ParseMinutes(timeOfDay)
	if err != nil {
		return append([]string(nil), DefaultVeterinarians...)
	}

	seen := make(map[string]struct{})
	for _, s := range schedules {
		if s.Date != date {
			continue
		}
		start, err := ParseMinutes(s.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseMinutes(s.EndTime)
		if err != nil {
			continue
		}
		if requested < start || requested >= end {
			continue
		}
		for _, vet := range s.Veterinarians {
			seen[vet] = struct{}{}
		}
	}

	if len(seen) == 0 {
		return append([]string(nil), DefaultVeterinarians...)
	}

	vets := make([]string, 0, len(seen))
	for vet := range seen {
		vets = append(vets, vet)
	}
	sort.Strings(vets)
	return vets
}

// Selectable is the combined predicate the booking UI uses: the slot must
// not be booked, and for unprivileged callers it must also fall inside a
// schedule window. Privileged callers (clinic staff) bypass the schedule
// check but still respect the booked check.
func Selectable(appointments []entity.Appointment, schedules []entity.Schedule, date, timeOfDay string, privileged bool) bool {
	if IsBooked(appointments, date, timeOfDay) {
		return false
	}
	if privileged {
		return true
	}
	return InSchedule(schedules, date, timeOfDay)
}
