package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vet-clinic-management/internal/delivery/dto"
	"vet-clinic-management/internal/usecase"
	"vet-clinic-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppointmentUsecase struct {
	bookFn     func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	getFn      func(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	daySlotsFn func(ctx context.Context, date string) (*dto.DaySlotsResponse, error)
}

func (s *stubAppointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.bookFn(ctx, req)
}

func (s *stubAppointmentUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return s.getFn(ctx, id)
}

func (s *stubAppointmentUsecase) List(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}}, nil
}

func (s *stubAppointmentUsecase) ListMine(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}}, nil
}

func (s *stubAppointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	return nil, usecase.ErrAppointmentNotFound
}

func (s *stubAppointmentUsecase) UpdatePayment(ctx context.Context, id uuid.UUID, req *dto.UpdatePaymentRequest) (*dto.AppointmentResponse, error) {
	return nil, usecase.ErrAppointmentNotFound
}

func (s *stubAppointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (s *stubAppointmentUsecase) DaySlots(ctx context.Context, date string) (*dto.DaySlotsResponse, error) {
	return s.daySlotsFn(ctx, date)
}

func bookRequestBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"pet_name":   "Bella",
		"owner_name": "Jane Doe",
		"phone":      "081234567890",
		"email":      "jane@example.com",
		"date":       "2099-06-15",
		"time":       "09:30",
		"vet":        "Dr. Smith",
	})
	require.NoError(t, err)
	return body
}

func TestAppointmentHandlerBook(t *testing.T) {
	stub := &stubAppointmentUsecase{
		bookFn: func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
			return &dto.AppointmentResponse{
				ID:      uuid.New(),
				Code:    "APT-20990615-0A1B2C",
				PetName: req.PetName,
				Date:    req.Date,
				Time:    req.Time,
				Vet:     req.Vet,
				Status:  "pending",
			}, nil
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(bookRequestBody(t)))
	rec := httptest.NewRecorder()
	h.Book(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool                    `json:"success"`
		Data    dto.AppointmentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "Bella", envelope.Data.PetName)
	assert.Equal(t, "pending", envelope.Data.Status)
}

func TestAppointmentHandlerBookSlotTaken(t *testing.T) {
	stub := &stubAppointmentUsecase{
		bookFn: func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrSlotTaken
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(bookRequestBody(t)))
	rec := httptest.NewRecorder()
	h.Book(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAppointmentHandlerBookValidation(t *testing.T) {
	stub := &stubAppointmentUsecase{
		bookFn: func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
			t.Fatal("usecase should not be reached on invalid input")
			return nil, nil
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	body, err := json.Marshal(map[string]string{
		"pet_name": "Bella",
		"date":     "15-06-2099",
		"time":     "9am",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Book(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAppointmentHandlerGetNotFound(t *testing.T) {
	stub := &stubAppointmentUsecase{
		getFn: func(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrAppointmentNotFound
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+uuid.NewString(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAppointmentHandlerDaySlots(t *testing.T) {
	stub := &stubAppointmentUsecase{
		daySlotsFn: func(ctx context.Context, date string) (*dto.DaySlotsResponse, error) {
			return &dto.DaySlotsResponse{
				Date: date,
				Slots: []dto.SlotResponse{
					{Time: "08:00", Booked: true, Selectable: false, Veterinarians: []string{}},
					{Time: "08:30", Booked: false, Selectable: true, Veterinarians: []string{"Dr. Smith"}},
				},
			}, nil
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/slots/2099-06-15", nil)
	req = mux.SetURLVars(req, map[string]string{"date": "2099-06-15"})
	rec := httptest.NewRecorder()
	h.DaySlots(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data dto.DaySlotsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "2099-06-15", envelope.Data.Date)
	require.Len(t, envelope.Data.Slots, 2)
	assert.True(t, envelope.Data.Slots[0].Booked)
	assert.True(t, envelope.Data.Slots[1].Selectable)
}
