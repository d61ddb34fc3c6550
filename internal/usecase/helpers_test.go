package usecase

import (
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestValidateSlotDate(t *testing.T) {
	assert.NoError(t, validateSlotDate("2026-03-15"))
	assert.NoError(t, validateSlotDate("2026-12-01"))

	assert.ErrorIs(t, validateSlotDate("2026-3-15"), ErrInvalidDateFormat)
	assert.ErrorIs(t, validateSlotDate("15-03-2026"), ErrInvalidDateFormat)
	assert.ErrorIs(t, validateSlotDate("2026-02-30"), ErrInvalidDateFormat)
	assert.ErrorIs(t, validateSlotDate(""), ErrInvalidDateFormat)
	assert.ErrorIs(t, validateSlotDate("tomorrow"), ErrInvalidDateFormat)
}

func TestIsPastSlot(t *testing.T) {
	assert.True(t, isPastSlot("2020-01-01", "09:00"))
	assert.False(t, isPastSlot("2099-01-01", "09:00"))

	// Unparseable slots are treated as past so they can never be booked.
	assert.True(t, isPastSlot("2099-01-01", "9am"))
}

func TestGenerateAppointmentCode(t *testing.T) {
	code := generateAppointmentCode("2026-03-15")
	assert.Regexp(t, regexp.MustCompile(`^APT-20260315-[0-9A-F]{6}$`), code)

	other := generateAppointmentCode("2026-03-15")
	assert.NotEqual(t, code, other)
}

func TestValidateTimeWindow(t *testing.T) {
	assert.NoError(t, validateTimeWindow("08:00", "17:00"))

	assert.ErrorIs(t, validateTimeWindow("17:00", "08:00"), ErrInvalidTimeWindow)
	assert.ErrorIs(t, validateTimeWindow("09:00", "09:00"), ErrInvalidTimeWindow)
	assert.ErrorIs(t, validateTimeWindow("8am", "17:00"), ErrInvalidScheduleTime)
	assert.ErrorIs(t, validateTimeWindow("08:00", "25:00"), ErrInvalidScheduleTime)
}

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
	assert.True(t, isDuplicateKeyError(dup, "email"))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("create user: %w", dup), "email"))

	assert.False(t, isDuplicateKeyError(dup, "license"))
	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23503", ConstraintName: "idx_users_email"}, "email"))
	assert.False(t, isDuplicateKeyError(errors.New("connection refused"), "email"))
}

func TestIsForeignKeyError(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "users_role_id_fkey"}
	assert.True(t, isForeignKeyError(fk, "role_id"))
	assert.True(t, isForeignKeyError(fmt.Errorf("create user: %w", fk), "role_id"))

	assert.False(t, isForeignKeyError(fk, "owner_id"))
	assert.False(t, isForeignKeyError(&pgconn.PgError{Code: "23505", ConstraintName: "users_role_id_fkey"}, "role_id"))
	assert.False(t, isForeignKeyError(errors.New("connection refused"), "role_id"))
}

func TestContainsString(t *testing.T) {
	vets := []string{"Dr. Smith", "Dr. Johnson"}
	assert.True(t, containsString(vets, "Dr. Smith"))
	assert.False(t, containsString(vets, "Dr. Brown"))
	assert.False(t, containsString(nil, "Dr. Smith"))
}
