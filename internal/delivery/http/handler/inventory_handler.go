package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"vet-clinic-management/internal/delivery/dto"
	"vet-clinic-management/internal/usecase"
	"vet-clinic-management/pkg/response"
	"vet-clinic-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type InventoryHandler struct {
	inventoryUsecase usecase.InventoryUsecase
	validator        *validator.CustomValidator
}

func NewInventoryHandler(inventoryUsecase usecase.InventoryUsecase, validator *validator.CustomValidator) *InventoryHandler {
	return &InventoryHandler{
		inventoryUsecase: inventoryUsecase,
		validator:        validator,
	}
}

func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.inventoryUsecase.Create(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrInvalidPrice {
			response.Error(w, http.StatusBadRequest, "Invalid price", nil)
			return
		}
		response.InternalServerError(w, "Failed to create inventory item")
		return
	}

	response.Success(w, http.StatusCreated, "Inventory item created successfully", item)
}

func (h *InventoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	items, total, err := h.inventoryUsecase.GetAll(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get inventory")
		return
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	response.SuccessWithMeta(w, http.StatusOK, "Inventory retrieved successfully", items, &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	})
}

func (h *InventoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid item ID", nil)
		return
	}

	item, err := h.inventoryUsecase.GetByID(r.Context(), id)
	if err != nil {
		if err == usecase.ErrInventoryItemNotFound {
			response.NotFound(w, "Inventory item not found")
			return
		}
		response.InternalServerError(w, "Failed to get inventory item")
		return
	}

	response.Success(w, http.StatusOK, "Inventory item retrieved successfully", item)
}

func (h *InventoryHandler) GetLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryUsecase.GetLowStock(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get low stock items")
		return
	}

	response.Success(w, http.StatusOK, "Low stock items retrieved successfully", items)
}

func (h *InventoryHandler) GetExpired(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryUsecase.GetExpired(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get expired items")
		return
	}

	response.Success(w, http.StatusOK, "Expired items retrieved successfully", items)
}

func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid item ID", nil)
		return
	}

	var req dto.UpdateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.inventoryUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrInventoryItemNotFound:
			response.NotFound(w, "Inventory item not found")
		case usecase.ErrInvalidPrice:
			response.Error(w, http.StatusBadRequest, "Invalid price", nil)
		default:
			response.InternalServerError(w, "Failed to update inventory item")
		}
		return
	}

	response.Success(w, http.StatusOK, "Inventory item updated successfully", item)
}

func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid item ID", nil)
		return
	}

	if err := h.inventoryUsecase.Delete(r.Context(), id); err != nil {
		if err == usecase.ErrInventoryItemNotFound {
			response.NotFound(w, "Inventory item not found")
			return
		}
		response.InternalServerError(w, "Failed to delete inventory item")
		return
	}

	response.Success(w, http.StatusOK, "Inventory item deleted successfully", nil)
}
