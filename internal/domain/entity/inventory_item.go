package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem is a stocked clinic supply (medication, equipment, etc.)
type InventoryItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string          `gorm:"type:varchar(255);not null" json:"name"`
	Category   string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Stock      int             `gorm:"not null;default:0" json:"stock"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ExpiryDate string          `gorm:"type:char(10);not null" json:"expiry_date"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

// IsExpired compares the ISO expiry date against today (YYYY-MM-DD).
// Lexicographic comparison is safe for zero-padded ISO dates.
func (i *InventoryItem) IsExpired(today string) bool {
	return i.ExpiryDate < today
}

// IsLowStock reports whether stock is at or below the threshold.
func (i *InventoryItem) IsLowStock(threshold int) bool {
	return i.Stock <= threshold
}
