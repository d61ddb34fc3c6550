package repository

import (
	"context"

	"vet-clinic-management/internal/domain/entity"

	"github.com/google/uuid"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	FindAll(ctx context.Context, limit, offset int) ([]entity.InventoryItem, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)
	FindLowStock(ctx context.Context, threshold int) ([]entity.InventoryItem, error)
	FindExpired(ctx context.Context, today string) ([]entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}
