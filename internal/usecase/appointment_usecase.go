package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"vet-clinic-management/internal/converter"
	"vet-clinic-management/internal/delivery/dto"
	"vet-clinic-management/internal/delivery/http/middleware"
	"vet-clinic-management/internal/domain/entity"
	"vet-clinic-management/internal/domain/repository"
	"vet-clinic-management/internal/service"
	"vet-clinic-management/internal/slot"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrAppointmentNotOwned    = errors.New("appointment does not belong to you")
	ErrSlotTaken              = errors.New("time slot is already booked")
	ErrSlotOffGrid            = errors.New("time is not a valid booking slot")
	ErrSlotOutsideSchedule    = errors.New("no clinic schedule covers the requested slot")
	ErrVetNotAvailable        = errors.New("veterinarian is not available at the requested slot")
	ErrDatePast               = errors.New("cannot book a slot in the past")
	ErrInvalidDateFormat      = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidStatusChange    = errors.New("status transition not allowed")
	ErrInvalidPaymentChange   = errors.New("payment status can only move forward")
	ErrInvalidPrice           = errors.New("invalid price")
	ErrRescheduleSlotRequired = errors.New("rescheduling requires a new date and time")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	List(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error)
	ListMine(ctx context.Context) (*dto.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	UpdatePayment(ctx context.Context, id uuid.UUID, req *dto.UpdatePaymentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DaySlots(ctx context.Context, date string) (*dto.DaySlotsResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	scheduleRepo    repository.ScheduleRepository
	slotHoldService *service.SlotHoldService
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	scheduleRepo repository.ScheduleRepository,
	slotHoldService *service.SlotHoldService,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		slotHoldService: slotHoldService,
		auditService:    auditService,
	}
}

// Book creates a new appointment.
//
// Flow:
// 1. Validate the slot shape (date format, time on the booking grid, not past)
// 2. Load the day's appointments and schedules, run the slot checks
// 3. Acquire the Redis slot hold (serializes concurrent bookings of one slot)
// 4. Insert appointment in a transaction, audit log in the same transaction
// 5. The unique index on (date, time) is the last line of defense; a
//    duplicate key on it surfaces as ErrSlotTaken
func (u *appointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := validateSlotDate(req.Date); err != nil {
		return nil, err
	}
	if _, err := slot.ParseMinutes(req.Time); err != nil {
		return nil, ErrSlotOffGrid
	}
	if !slot.OnDefaultGrid(req.Time) {
		return nil, ErrSlotOffGrid
	}
	if isPastSlot(req.Date, req.Time) {
		return nil, ErrDatePast
	}

	price := decimal.Zero
	if req.Price != "" {
		parsed, err := decimal.NewFromString(req.Price)
		if err != nil || parsed.IsNegative() {
			return nil, ErrInvalidPrice
		}
		price = parsed
	}

	// Clinic staff and vets may book outside schedule windows
	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	privileged := roleID == entity.RoleIDStaff || roleID == entity.RoleIDVet

	appointments, err := u.appointmentRepo.FindByDate(u.db.WithContext(ctx), req.Date)
	if err != nil {
		u.log.Warnf("Failed to load appointments for %s: %+v", req.Date, err)
		return nil, err
	}
	if slot.IsBooked(appointments, req.Date, req.Time) {
		return nil, ErrSlotTaken
	}

	schedules, err := u.scheduleRepo.FindByDate(u.db.WithContext(ctx), req.Date)
	if err != nil {
		u.log.Warnf("Failed to load schedules for %s: %+v", req.Date, err)
		return nil, err
	}
	if !privileged && !slot.InSchedule(schedules, req.Date, req.Time) {
		return nil, ErrSlotOutsideSchedule
	}
	if !privileged {
		vets := slot.AvailableVeterinarians(schedules, req.Date, req.Time)
		if !containsString(vets, req.Vet) {
			return nil, ErrVetNotAvailable
		}
	}

	// Critical section between the conflict check above and the DB insert
	holdToken, err := u.slotHoldService.Acquire(ctx, req.Date, req.Time)
	if err != nil {
		if errors.Is(err, service.ErrSlotHeld) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		u.slotHoldService.Release(releaseCtx, req.Date, req.Time, holdToken)
	}()

	appointment := &entity.Appointment{
		Code:        generateAppointmentCode(req.Date),
		PetName:     req.PetName,
		OwnerName:   req.OwnerName,
		Phone:       req.Phone,
		Email:       req.Email,
		Date:        req.Date,
		Time:        req.Time,
		Vet:         req.Vet,
		Status:      entity.AppointmentStatusPending,
		Reason:      req.Reason,
		ServiceType: req.ServiceType,
		Price:       price,
	}

	// Bookings by a logged-in owner are linked to their account; walk-in
	// bookings taken over the phone by staff stay unlinked.
	userID, authenticated := middleware.GetUserIDFromContext(ctx)
	if authenticated && roleID == entity.RoleIDOwner {
		appointment.OwnerID = &userID
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "uq_appointments_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	var actorID *uuid.UUID
	if authenticated {
		actorID = &userID
	}
	if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionAppointmentBook, "appointment", appointment.ID.String(), map[string]interface{}{
		"code": appointment.Code,
		"date": appointment.Date,
		"time": appointment.Time,
		"vet":  appointment.Vet,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%s, code=%s, slot=%s %s, vet=%s", appointment.ID, appointment.Code, appointment.Date, appointment.Time, appointment.Vet)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.findOwned(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error) {
	filter := &entity.AppointmentFilter{
		Date:   query.Date,
		Vet:    query.Vet,
		Status: query.Status,
	}

	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// ListMine returns the appointments linked to the logged-in owner.
func (u *appointmentUsecase) ListMine(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByOwnerID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for owner %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateStatus moves the appointment through its status state machine. A
// reschedule carries a new slot which is re-checked the same way a fresh
// booking is.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	target := entity.AppointmentStatus(req.Status)
	if !entity.IsValidAppointmentStatus(target) {
		return nil, ErrInvalidStatusChange
	}

	appointment, err := u.findOwned(ctx, id)
	if err != nil {
		return nil, err
	}

	if !appointment.CanTransitionTo(target) {
		return nil, ErrInvalidStatusChange
	}

	oldValue := map[string]interface{}{
		"status": string(appointment.Status),
		"date":   appointment.Date,
		"time":   appointment.Time,
	}

	var holdToken string
	if target == entity.AppointmentStatusRescheduled {
		if req.Date == "" || req.Time == "" {
			return nil, ErrRescheduleSlotRequired
		}
		if req.Date == appointment.Date && req.Time == appointment.Time {
			return nil, ErrSlotTaken
		}
		if err := validateSlotDate(req.Date); err != nil {
			return nil, err
		}
		if !slot.OnDefaultGrid(req.Time) {
			return nil, ErrSlotOffGrid
		}
		if isPastSlot(req.Date, req.Time) {
			return nil, ErrDatePast
		}

		appointments, err := u.appointmentRepo.FindByDate(u.db.WithContext(ctx), req.Date)
		if err != nil {
			u.log.Warnf("Failed to load appointments for %s: %+v", req.Date, err)
			return nil, err
		}
		if slot.IsBooked(appointments, req.Date, req.Time) {
			return nil, ErrSlotTaken
		}

		holdToken, err = u.slotHoldService.Acquire(ctx, req.Date, req.Time)
		if err != nil {
			if errors.Is(err, service.ErrSlotHeld) {
				return nil, ErrSlotTaken
			}
			return nil, err
		}
		defer func() {
			releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			u.slotHoldService.Release(releaseCtx, req.Date, req.Time, holdToken)
		}()

		appointment.Date = req.Date
		appointment.Time = req.Time
	}

	appointment.Status = target
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "uq_appointments_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAppointmentStatus, "appointment", id.String(), oldValue, map[string]interface{}{
		"status": string(appointment.Status),
		"date":   appointment.Date,
		"time":   appointment.Time,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) UpdatePayment(ctx context.Context, id uuid.UUID, req *dto.UpdatePaymentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	target := entity.PaymentStatus(req.PaymentStatus)
	if !appointment.CanAdvancePaymentTo(target) {
		return nil, ErrInvalidPaymentChange
	}

	oldStatus := string(appointment.PaymentStatus)
	appointment.PaymentStatus = target
	if req.PaymentData != nil {
		appointment.PaymentData = entity.JSON(req.PaymentData)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment payment %s: %+v", id, err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAppointmentPayment, "appointment", id.String(),
		map[string]interface{}{"payment_status": oldStatus},
		map[string]interface{}{"payment_status": string(target)},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// Delete removes the appointment entirely, which also frees its slot.
func (u *appointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	appointment, err := u.findByID(ctx, id)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.appointmentRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionAppointmentDelete, "appointment", id.String(), map[string]interface{}{
		"code": appointment.Code,
		"date": appointment.Date,
		"time": appointment.Time,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// DaySlots renders the whole booking grid for one date as the booking form
// needs it. The selectable flag respects the caller's role: clinic staff and
// vets see slots outside schedule windows as selectable.
func (u *appointmentUsecase) DaySlots(ctx context.Context, date string) (*dto.DaySlotsResponse, error) {
	if err := validateSlotDate(date); err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByDate(u.db.WithContext(ctx), date)
	if err != nil {
		u.log.Warnf("Failed to load appointments for %s: %+v", date, err)
		return nil, err
	}

	schedules, err := u.scheduleRepo.FindByDate(u.db.WithContext(ctx), date)
	if err != nil {
		u.log.Warnf("Failed to load schedules for %s: %+v", date, err)
		return nil, err
	}

	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	privileged := roleID == entity.RoleIDStaff || roleID == entity.RoleIDVet

	grid := slot.DefaultGrid()
	slots := make([]dto.SlotResponse, len(grid))
	for i, timeOfDay := range grid {
		slots[i] = dto.SlotResponse{
			Time:          timeOfDay,
			Booked:        slot.IsBooked(appointments, date, timeOfDay),
			Selectable:    slot.Selectable(appointments, schedules, date, timeOfDay, privileged),
			Veterinarians: slot.AvailableVeterinarians(schedules, date, timeOfDay),
		}
	}

	return &dto.DaySlotsResponse{
		Date:  date,
		Slots: slots,
	}, nil
}

// findByID loads the appointment without ownership checks; for staff paths.
func (u *appointmentUsecase) findByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

// findOwned loads the appointment and enforces that an owner only touches
// their own appointments. Staff and vets may touch any.
func (u *appointmentUsecase) findOwned(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	if roleID == entity.RoleIDOwner {
		userID, ok := middleware.GetUserIDFromContext(ctx)
		if !ok || appointment.OwnerID == nil || *appointment.OwnerID != userID {
			return nil, ErrAppointmentNotOwned
		}
	}

	return appointment, nil
}

// validateSlotDate accepts only canonical zero-padded ISO dates.
func validateSlotDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil || len(date) != 10 {
		return ErrInvalidDateFormat
	}
	return nil
}

// isPastSlot reports whether the slot start is before now (UTC).
func isPastSlot(date, timeOfDay string) bool {
	slotStart, err := time.Parse("2006-01-02 15:04", date+" "+timeOfDay)
	if err != nil {
		return true
	}
	return slotStart.Before(time.Now().UTC())
}

// generateAppointmentCode generates a unique appointment code: APT-YYYYMMDD-XXXXXX
func generateAppointmentCode(date string) string {
	compact := date[:4] + date[5:7] + date[8:10]
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("APT-%s-%06X", compact, randomBytes)
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
