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

type VetHandler struct {
	vetUsecase usecase.VetUsecase
	validator  *validator.CustomValidator
}

func NewVetHandler(vetUsecase usecase.VetUsecase, validator *validator.CustomValidator) *VetHandler {
	return &VetHandler{
		vetUsecase: vetUsecase,
		validator:  validator,
	}
}

func (h *VetHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterVetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vet, err := h.vetUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists")
		case usecase.ErrLicenseAlreadyExists:
			response.Conflict(w, "License number already exists")
		default:
			response.InternalServerError(w, "Failed to register veterinarian")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Veterinarian registered successfully", vet)
}

func (h *VetHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid veterinarian ID", nil)
		return
	}

	vet, err := h.vetUsecase.Get(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrVetNotFound {
			response.NotFound(w, "Veterinarian not found")
			return
		}
		response.InternalServerError(w, "Failed to get veterinarian")
		return
	}

	response.Success(w, http.StatusOK, "Veterinarian retrieved successfully", vet)
}

func (h *VetHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	vets, err := h.vetUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get veterinarians")
		return
	}

	response.Success(w, http.StatusOK, "Veterinarians retrieved successfully", vets)
}

// ActiveNames is public; it feeds the vet picker on the booking form.
func (h *VetHandler) ActiveNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.vetUsecase.ActiveNames(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get veterinarian names")
		return
	}

	response.Success(w, http.StatusOK, "Veterinarian names retrieved successfully", names)
}

func (h *VetHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid veterinarian ID", nil)
		return
	}

	var req dto.UpdateVetProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vet, err := h.vetUsecase.Update(r.Context(), userID, &req)
	if err != nil {
		if err == usecase.ErrVetNotFound {
			response.NotFound(w, "Veterinarian not found")
			return
		}
		response.InternalServerError(w, "Failed to update veterinarian")
		return
	}

	response.Success(w, http.StatusOK, "Veterinarian updated successfully", vet)
}

func (h *VetHandler) UpdateSelf(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateVetProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vet, err := h.vetUsecase.UpdateSelf(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrVetNotFound {
			response.NotFound(w, "Veterinarian not found")
			return
		}
		response.InternalServerError(w, "Failed to update profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", vet)
}

func (h *VetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid veterinarian ID", nil)
		return
	}

	if err := h.vetUsecase.Delete(r.Context(), userID); err != nil {
		if err == usecase.ErrVetNotFound {
			response.NotFound(w, "Veterinarian not found")
			return
		}
		response.InternalServerError(w, "Failed to delete veterinarian")
		return
	}

	response.Success(w, http.StatusOK, "Veterinarian deactivated successfully", nil)
}
