package usecase

import (
	"context"
	"errors"
	"time"

	"vet-clinic-management/internal/converter"
	"vet-clinic-management/internal/delivery/dto"
	"vet-clinic-management/internal/delivery/http/middleware"
	"vet-clinic-management/internal/domain/entity"
	"vet-clinic-management/internal/domain/repository"
	"vet-clinic-management/internal/service"
	"vet-clinic-management/internal/slot"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrAvailabilityNotFound = errors.New("availability not found")

type AvailabilityUsecase interface {
	Upsert(ctx context.Context, req *dto.UpsertAvailabilityRequest) (*dto.AvailabilityResponse, error)
	List(ctx context.Context) (*dto.AvailabilityListResponse, error)
	GetByVeterinarian(ctx context.Context, name string) (*dto.AvailabilityResponse, error)
	Delete(ctx context.Context, name string) error
	// VetDaySlots derives one veterinarian's open slots on a date from their
	// recurring template, minus slots already booked.
	VetDaySlots(ctx context.Context, name, date string) (*dto.VetDaySlotsResponse, error)
}

type availabilityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	availabilityRepo repository.AvailabilityRepository
	appointmentRepo  repository.AppointmentRepository
	auditService     service.AuditService
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	availabilityRepo repository.AvailabilityRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:               db,
		log:              log,
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		auditService:     auditService,
	}
}

// Upsert creates or replaces the template for one veterinarian. One row per
// veterinarian name; repeated saves overwrite.
func (u *availabilityUsecase) Upsert(ctx context.Context, req *dto.UpsertAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	if err := validateTimeWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	availability := &entity.Availability{
		VeterinarianName:    req.VeterinarianName,
		WorkingDays:         entity.StringList(req.WorkingDays),
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		AppointmentDuration: req.AppointmentDuration,
		BreakTime:           req.BreakTime,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.availabilityRepo.Upsert(tx, availability); err != nil {
		u.log.Warnf("Failed to upsert availability for %s: %+v", req.VeterinarianName, err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAvailabilityUpsert, "availability", availability.VeterinarianName, nil, map[string]interface{}{
		"working_days":         []string(availability.WorkingDays),
		"start_time":           availability.StartTime,
		"end_time":             availability.EndTime,
		"appointment_duration": availability.AppointmentDuration,
		"break_time":           availability.BreakTime,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AvailabilityToResponse(availability), nil
}

func (u *availabilityUsecase) List(ctx context.Context) (*dto.AvailabilityListResponse, error) {
	availability, err := u.availabilityRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list availability: %+v", err)
		return nil, err
	}

	return &dto.AvailabilityListResponse{
		Availability: converter.AvailabilitiesToResponses(availability),
		Total:        len(availability),
	}, nil
}

func (u *availabilityUsecase) GetByVeterinarian(ctx context.Context, name string) (*dto.AvailabilityResponse, error) {
	availability, err := u.availabilityRepo.FindByVeterinarian(u.db.WithContext(ctx), name)
	if err != nil {
		u.log.Warnf("Failed to find availability for %s: %+v", name, err)
		return nil, err
	}
	if availability == nil {
		return nil, ErrAvailabilityNotFound
	}

	return converter.AvailabilityToResponse(availability), nil
}

func (u *availabilityUsecase) Delete(ctx context.Context, name string) error {
	rows, err := u.availabilityRepo.Delete(u.db.WithContext(ctx), name)
	if err != nil {
		u.log.Warnf("Failed to delete availability for %s: %+v", name, err)
		return err
	}
	if rows == 0 {
		return ErrAvailabilityNotFound
	}
	return nil
}

func (u *availabilityUsecase) VetDaySlots(ctx context.Context, name, date string) (*dto.VetDaySlotsResponse, error) {
	if err := validateSlotDate(date); err != nil {
		return nil, err
	}

	availability, err := u.availabilityRepo.FindByVeterinarian(u.db.WithContext(ctx), name)
	if err != nil {
		u.log.Warnf("Failed to find availability for %s: %+v", name, err)
		return nil, err
	}
	if availability == nil {
		return nil, ErrAvailabilityNotFound
	}

	// The date parses; validateSlotDate already checked it.
	parsed, _ := time.Parse("2006-01-02", date)
	if !availability.WorksOn(parsed.Weekday().String()) {
		return &dto.VetDaySlotsResponse{
			VeterinarianName: name,
			Date:             date,
			Working:          false,
			Slots:            []string{},
		}, nil
	}

	appointments, err := u.appointmentRepo.FindByDate(u.db.WithContext(ctx), date)
	if err != nil {
		u.log.Warnf("Failed to load appointments for %s: %+v", date, err)
		return nil, err
	}

	grid := slot.TemplateGrid(availability.StartTime, availability.EndTime, availability.AppointmentDuration, availability.BreakTime)
	open := make([]string, 0, len(grid))
	for _, timeOfDay := range grid {
		if !slot.IsBooked(appointments, date, timeOfDay) {
			open = append(open, timeOfDay)
		}
	}

	return &dto.VetDaySlotsResponse{
		VeterinarianName: name,
		Date:             date,
		Working:          true,
		Slots:            open,
	}, nil
}
