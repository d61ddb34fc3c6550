package usecase

import (
	"context"
	"errors"
	"strconv"

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

var (
	ErrScheduleNotFound    = errors.New("schedule not found")
	ErrInvalidTimeWindow   = errors.New("start time must be before end time")
	ErrInvalidScheduleTime = errors.New("invalid time format, use HH:MM")
)

type ScheduleUsecase interface {
	Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	Get(ctx context.Context, id int) (*dto.ScheduleResponse, error)
	List(ctx context.Context) (*dto.ScheduleListResponse, error)
	ListByDate(ctx context.Context, date string) (*dto.ScheduleListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, id int) error
}

type scheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.ScheduleRepository
	auditService service.AuditService
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	auditService service.AuditService,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		auditService: auditService,
	}
}

func (u *scheduleUsecase) Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	if err := validateSlotDate(req.Date); err != nil {
		return nil, err
	}
	if err := validateTimeWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	schedule := &entity.Schedule{
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Veterinarians: entity.StringList(req.Veterinarians),
		Notes:         req.Notes,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.scheduleRepo.Create(tx, schedule); err != nil {
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionScheduleCreate, "schedule", strconv.Itoa(schedule.ID), map[string]interface{}{
		"date":          schedule.Date,
		"start_time":    schedule.StartTime,
		"end_time":      schedule.EndTime,
		"veterinarians": []string(schedule.Veterinarians),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) Get(ctx context.Context, id int) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find schedule %d: %+v", id, err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) List(ctx context.Context) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list schedules: %+v", err)
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

func (u *scheduleUsecase) ListByDate(ctx context.Context, date string) (*dto.ScheduleListResponse, error) {
	if err := validateSlotDate(date); err != nil {
		return nil, err
	}

	schedules, err := u.scheduleRepo.FindByDate(u.db.WithContext(ctx), date)
	if err != nil {
		u.log.Warnf("Failed to list schedules for %s: %+v", date, err)
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

func (u *scheduleUsecase) Update(ctx context.Context, id int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find schedule %d: %+v", id, err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	oldValue := map[string]interface{}{
		"date":          schedule.Date,
		"start_time":    schedule.StartTime,
		"end_time":      schedule.EndTime,
		"veterinarians": []string(schedule.Veterinarians),
	}

	if req.Date != "" {
		if err := validateSlotDate(req.Date); err != nil {
			return nil, err
		}
		schedule.Date = req.Date
	}
	if req.StartTime != "" {
		schedule.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		schedule.EndTime = req.EndTime
	}
	if err := validateTimeWindow(schedule.StartTime, schedule.EndTime); err != nil {
		return nil, err
	}
	if req.Veterinarians != nil {
		schedule.Veterinarians = entity.StringList(req.Veterinarians)
	}
	if req.Notes != nil {
		schedule.Notes = *req.Notes
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.scheduleRepo.Update(tx, schedule); err != nil {
		u.log.Warnf("Failed to update schedule %d: %+v", id, err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionScheduleUpdate, "schedule", strconv.Itoa(id), oldValue, map[string]interface{}{
		"date":          schedule.Date,
		"start_time":    schedule.StartTime,
		"end_time":      schedule.EndTime,
		"veterinarians": []string(schedule.Veterinarians),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) Delete(ctx context.Context, id int) error {
	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find schedule %d: %+v", id, err)
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.scheduleRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete schedule %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrScheduleNotFound
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionScheduleDelete, "schedule", strconv.Itoa(id), map[string]interface{}{
		"date":          schedule.Date,
		"start_time":    schedule.StartTime,
		"end_time":      schedule.EndTime,
		"veterinarians": []string(schedule.Veterinarians),
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// validateTimeWindow checks both bounds parse and start is strictly before end.
func validateTimeWindow(startTime, endTime string) error {
	start, err := slot.ParseMinutes(startTime)
	if err != nil {
		return ErrInvalidScheduleTime
	}
	end, err := slot.ParseMinutes(endTime)
	if err != nil {
		return ErrInvalidScheduleTime
	}
	if start >= end {
		return ErrInvalidTimeWindow
	}
	return nil
}
