package repository

import (
	"vet-clinic-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VetProfileRepository interface {
	Create(db *gorm.DB, profile *entity.VetProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.VetProfile, error)
	FindAll(db *gorm.DB) ([]entity.VetProfile, error)
	// FindActiveNames returns the full names of veterinarians whose user
	// account is active, sorted alphabetically.
	FindActiveNames(db *gorm.DB) ([]string, error)
	Update(db *gorm.DB, profile *entity.VetProfile) error
}
