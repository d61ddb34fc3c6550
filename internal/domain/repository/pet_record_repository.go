package repository

import (
	"vet-clinic-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PetRecordRepository interface {
	Create(db *gorm.DB, record *entity.PetRecord) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.PetRecord, error)
	FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.PetRecord, error)
	FindAll(db *gorm.DB) ([]entity.PetRecord, error)
	Update(db *gorm.DB, record *entity.PetRecord) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
