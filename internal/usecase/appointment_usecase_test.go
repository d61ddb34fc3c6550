package usecase

import (
	"context"
	"testing"
	"time"

	"vet-clinic-management/internal/delivery/dto"
	"vet-clinic-management/internal/delivery/http/middleware"
	"vet-clinic-management/internal/domain/entity"
	"vet-clinic-management/internal/repository"
	"vet-clinic-management/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newBookingTestUsecase(t *testing.T) (AppointmentUsecase, sqlmock.Sqlmock, *miniredis.Miniredis, *service.SlotHoldService) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	log := logrus.New()
	slotHoldService := service.NewSlotHoldService(redisClient, log, 30*time.Second)
	auditService := service.NewAuditService(gdb, log, repository.NewAuditLogRepository())

	uc := NewAppointmentUsecase(
		gdb,
		log,
		repository.NewAppointmentRepository(),
		repository.NewScheduleRepository(),
		slotHoldService,
		auditService,
	)
	return uc, mock, mr, slotHoldService
}

// staffContext mimics what the auth middleware puts on the request context
// for a logged-in staff member.
func staffContext() context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, uuid.New())
	return context.WithValue(ctx, middleware.RoleIDKey, entity.RoleIDStaff)
}

func bookRequest() *dto.BookAppointmentRequest {
	return &dto.BookAppointmentRequest{
		PetName:   "Bella",
		OwnerName: "Jane Doe",
		Phone:     "081234567890",
		Email:     "jane@example.com",
		Date:      "2099-06-15",
		Time:      "09:30",
		Vet:       "Dr. Smith",
	}
}

func TestBookHeldSlotMapsToSlotTaken(t *testing.T) {
	uc, mock, mr, slotHoldService := newBookingTestUsecase(t)

	// Another booking is mid-flight for the same slot.
	_, err := slotHoldService.Acquire(context.Background(), "2099-06-15", "09:30")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "schedules"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = uc.Book(staffContext(), bookRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)

	// The competing hold is left untouched and no insert was attempted.
	assert.True(t, mr.Exists("appointment:hold:2099-06-15:09:30"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookReleasesHoldOnInsertConflict(t *testing.T) {
	uc, mock, mr, _ := newBookingTestUsecase(t)

	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "schedules"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	// A concurrent booking slipped past the advisory checks and the unique
	// index on (date, time) rejects the insert.
	mock.ExpectQuery(`INSERT INTO "appointments"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_appointments_slot"})
	mock.ExpectRollback()

	_, err := uc.Book(staffContext(), bookRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)

	// The hold was dropped so the slot is not blocked until the TTL expires.
	assert.False(t, mr.Exists("appointment:hold:2099-06-15:09:30"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
