package repository

import (
	"vet-clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	Upsert(db *gorm.DB, availability *entity.Availability) error
	FindByVeterinarian(db *gorm.DB, name string) (*entity.Availability, error)
	FindAll(db *gorm.DB) ([]entity.Availability, error)
	Delete(db *gorm.DB, name string) (int64, error)
}
