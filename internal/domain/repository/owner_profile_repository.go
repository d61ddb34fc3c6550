package repository

import (
	"vet-clinic-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OwnerProfileRepository interface {
	Create(db *gorm.DB, profile *entity.OwnerProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.OwnerProfile, error)
	Update(db *gorm.DB, profile *entity.OwnerProfile) error
}
