package converter

import (
	"vet-clinic-management/internal/delivery/dto"
	"vet-clinic-management/internal/domain/entity"
)

// InventoryItemToResponse converts an InventoryItem entity to InventoryItemResponse DTO.
// The low-stock threshold and today's date are evaluated at conversion time so
// the flags reflect the caller's view of the catalog.
func InventoryItemToResponse(item *entity.InventoryItem, lowStockThreshold int, today string) *dto.InventoryItemResponse {
	if item == nil {
		return nil
	}

	return &dto.InventoryItemResponse{
		ID:         item.ID,
		Name:       item.Name,
		Category:   item.Category,
		Stock:      item.Stock,
		Price:      item.Price,
		ExpiryDate: item.ExpiryDate,
		LowStock:   item.IsLowStock(lowStockThreshold),
		Expired:    item.IsExpired(today),
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}

// InventoryItemsToResponses converts a slice of InventoryItem entities to slice of InventoryItemResponse DTOs
func InventoryItemsToResponses(items []entity.InventoryItem, lowStockThreshold int, today string) []dto.InventoryItemResponse {
	responses := make([]dto.InventoryItemResponse, len(items))
	for i, item := range items {
		resp := InventoryItemToResponse(&item, lowStockThreshold, today)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
