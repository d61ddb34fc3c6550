package handler

import (
	"encoding/json"
	"net/http"

	"vet-clinic-management/internal/delivery/dto"
	"vet-clinic-management/internal/usecase"
	"vet-clinic-management/pkg/response"
	"vet-clinic-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PetRecordHandler struct {
	petRecordUsecase usecase.PetRecordUsecase
	validator        *validator.CustomValidator
}

func NewPetRecordHandler(petRecordUsecase usecase.PetRecordUsecase, validator *validator.CustomValidator) *PetRecordHandler {
	return &PetRecordHandler{
		petRecordUsecase: petRecordUsecase,
		validator:        validator,
	}
}

func (h *PetRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePetRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.petRecordUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create pet record")
		return
	}

	response.Success(w, http.StatusCreated, "Pet record created successfully", record)
}

func (h *PetRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	record, err := h.petRecordUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPetRecordNotFound:
			response.NotFound(w, "Pet record not found")
		case usecase.ErrPetRecordNotOwned:
			response.Forbidden(w, "Pet record does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get pet record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet record retrieved successfully", record)
}

func (h *PetRecordHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	records, err := h.petRecordUsecase.ListMine(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list pet records")
		return
	}

	response.Success(w, http.StatusOK, "Pet records retrieved successfully", records)
}

func (h *PetRecordHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.petRecordUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list pet records")
		return
	}

	response.Success(w, http.StatusOK, "Pet records retrieved successfully", records)
}

func (h *PetRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	var req dto.UpdatePetRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.petRecordUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPetRecordNotFound:
			response.NotFound(w, "Pet record not found")
		case usecase.ErrPetRecordNotOwned:
			response.Forbidden(w, "Pet record does not belong to you")
		default:
			response.InternalServerError(w, "Failed to update pet record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet record updated successfully", record)
}

func (h *PetRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	if err := h.petRecordUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrPetRecordNotFound:
			response.NotFound(w, "Pet record not found")
		case usecase.ErrPetRecordNotOwned:
			response.Forbidden(w, "Pet record does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete pet record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet record deleted successfully", nil)
}
