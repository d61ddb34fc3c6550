package handler

import (
	"encoding/json"
	"net/http"

	"vet-clinic-management/internal/delivery/dto"
	"vet-clinic-management/internal/usecase"
	"vet-clinic-management/pkg/response"
	"vet-clinic-management/pkg/validator"

	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

func (h *AvailabilityHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	availability, err := h.availabilityUsecase.Upsert(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidScheduleTime:
			response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
		case usecase.ErrInvalidTimeWindow:
			response.Error(w, http.StatusBadRequest, "Start time must be before end time", nil)
		default:
			response.InternalServerError(w, "Failed to save availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability saved successfully", availability)
}

func (h *AvailabilityHandler) List(w http.ResponseWriter, r *http.Request) {
	availability, err := h.availabilityUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}

func (h *AvailabilityHandler) GetByVeterinarian(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	availability, err := h.availabilityUsecase.GetByVeterinarian(r.Context(), name)
	if err != nil {
		if err == usecase.ErrAvailabilityNotFound {
			response.NotFound(w, "Availability not found")
			return
		}
		response.InternalServerError(w, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}

func (h *AvailabilityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	if err := h.availabilityUsecase.Delete(r.Context(), name); err != nil {
		if err == usecase.ErrAvailabilityNotFound {
			response.NotFound(w, "Availability not found")
			return
		}
		response.InternalServerError(w, "Failed to delete availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability deleted successfully", nil)
}

func (h *AvailabilityHandler) VetDaySlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]
	date := vars["date"]

	slots, err := h.availabilityUsecase.VetDaySlots(r.Context(), name, date)
	if err != nil {
		switch err {
		case usecase.ErrAvailabilityNotFound:
			response.NotFound(w, "Availability not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to get slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}
