package usecase

import (
	"context"
	"errors"
	"time"

	"vet-clinic-management/internal/converter"
	"vet-clinic-management/internal/delivery/dto"
	"vet-clinic-management/internal/delivery/http/middleware"
	"vet-clinic-management/internal/domain/entity"
	"vet-clinic-management/internal/domain/repository"
	"vet-clinic-management/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInventoryItemNotFound = errors.New("inventory item not found")

type InventoryUsecase interface {
	Create(ctx context.Context, req *dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]dto.InventoryItemResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.InventoryItemResponse, error)
	GetLowStock(ctx context.Context) (*dto.InventoryListResponse, error)
	GetExpired(ctx context.Context) (*dto.InventoryListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type inventoryUsecase struct {
	db                *gorm.DB
	inventoryRepo     repository.InventoryRepository
	auditService      service.AuditService
	lowStockThreshold int
}

func NewInventoryUsecase(db *gorm.DB, inventoryRepo repository.InventoryRepository, auditService service.AuditService, lowStockThreshold int) InventoryUsecase {
	return &inventoryUsecase{
		db:                db,
		inventoryRepo:     inventoryRepo,
		auditService:      auditService,
		lowStockThreshold: lowStockThreshold,
	}
}

// actorID pulls the acting user from the request context. Inventory routes
// sit behind auth middleware so the ID is normally present.
func (u *inventoryUsecase) actorID(ctx context.Context) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}

func (u *inventoryUsecase) Create(ctx context.Context, req *dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	item := &entity.InventoryItem{
		Name:       req.Name,
		Category:   req.Category,
		Stock:      req.Stock,
		Price:      price,
		ExpiryDate: req.ExpiryDate,
	}

	if err := u.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db, u.actorID(ctx), entity.AuditActionInventoryCreate, "inventory_item", item.ID.String(), map[string]interface{}{
		"name":     item.Name,
		"category": item.Category,
		"stock":    item.Stock,
	}); err != nil {
		return nil, err
	}

	return converter.InventoryItemToResponse(item, u.lowStockThreshold, today()), nil
}

func (u *inventoryUsecase) GetAll(ctx context.Context, page, limit int) ([]dto.InventoryItemResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	items, total, err := u.inventoryRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return converter.InventoryItemsToResponses(items, u.lowStockThreshold, today()), total, nil
}

func (u *inventoryUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.InventoryItemResponse, error) {
	item, err := u.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrInventoryItemNotFound
	}

	return converter.InventoryItemToResponse(item, u.lowStockThreshold, today()), nil
}

func (u *inventoryUsecase) GetLowStock(ctx context.Context) (*dto.InventoryListResponse, error) {
	items, err := u.inventoryRepo.FindLowStock(ctx, u.lowStockThreshold)
	if err != nil {
		return nil, err
	}

	return &dto.InventoryListResponse{
		Items: converter.InventoryItemsToResponses(items, u.lowStockThreshold, today()),
		Total: int64(len(items)),
	}, nil
}

func (u *inventoryUsecase) GetExpired(ctx context.Context) (*dto.InventoryListResponse, error) {
	items, err := u.inventoryRepo.FindExpired(ctx, today())
	if err != nil {
		return nil, err
	}

	return &dto.InventoryListResponse{
		Items: converter.InventoryItemsToResponses(items, u.lowStockThreshold, today()),
		Total: int64(len(items)),
	}, nil
}

func (u *inventoryUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := u.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrInventoryItemNotFound
	}

	oldValue := map[string]interface{}{
		"name":        item.Name,
		"category":    item.Category,
		"stock":       item.Stock,
		"price":       item.Price,
		"expiry_date": item.ExpiryDate,
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Stock != nil {
		item.Stock = *req.Stock
	}
	if req.Price != "" {
		price, err := decimal.NewFromString(req.Price)
		if err != nil || price.IsNegative() {
			return nil, ErrInvalidPrice
		}
		item.Price = price
	}
	if req.ExpiryDate != "" {
		item.ExpiryDate = req.ExpiryDate
	}

	if err := u.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, u.db, u.actorID(ctx), entity.AuditActionInventoryUpdate, "inventory_item", item.ID.String(), oldValue, map[string]interface{}{
		"name":        item.Name,
		"category":    item.Category,
		"stock":       item.Stock,
		"price":       item.Price,
		"expiry_date": item.ExpiryDate,
	}); err != nil {
		return nil, err
	}

	return converter.InventoryItemToResponse(item, u.lowStockThreshold, today()), nil
}

func (u *inventoryUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := u.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrInventoryItemNotFound
	}

	if err := u.inventoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	return u.auditService.LogDelete(ctx, u.db, u.actorID(ctx), entity.AuditActionInventoryDelete, "inventory_item", id.String(), map[string]interface{}{
		"name":     item.Name,
		"category": item.Category,
	})
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}
