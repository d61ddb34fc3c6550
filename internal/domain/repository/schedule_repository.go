package repository

import (
	"vet-clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(db *gorm.DB, schedule *entity.Schedule) error
	FindByID(db *gorm.DB, id int) (*entity.Schedule, error)
	FindByDate(db *gorm.DB, date string) ([]entity.Schedule, error)
	FindAll(db *gorm.DB) ([]entity.Schedule, error)
	Update(db *gorm.DB, schedule *entity.Schedule) error
	Delete(db *gorm.DB, id int) (int64, error)
}
