package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateInventoryItemRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=255"`
	Category   string `json:"category" validate:"required,min=2,max=100"`
	Stock      int    `json:"stock" validate:"required,min=0"`
	Price      string `json:"price" validate:"required"`
	ExpiryDate string `json:"expiry_date" validate:"required,datetime=2006-01-02"`
}

type UpdateInventoryItemRequest struct {
	Name       string `json:"name" validate:"omitempty,min=2,max=255"`
	Category   string `json:"category" validate:"omitempty,min=2,max=100"`
	Stock      *int   `json:"stock" validate:"omitempty,min=0"`
	Price      string `json:"price" validate:"omitempty"`
	ExpiryDate string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type InventoryItemResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Stock      int             `json:"stock"`
	Price      decimal.Decimal `json:"price"`
	ExpiryDate string          `json:"expiry_date"`
	LowStock   bool            `json:"low_stock"`
	Expired    bool            `json:"expired"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Total int64                   `json:"total"`
}
