package repository

import (
	"errors"

	"vet-clinic-management/internal/domain/entity"
	domainRepo "vet-clinic-management/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type availabilityRepository struct{}

func NewAvailabilityRepository() domainRepo.AvailabilityRepository {
	return &availabilityRepository{}
}

// Upsert inserts or replaces the template for a veterinarian. One row per
// veterinarian name.
func (r *availabilityRepository) Upsert(db *gorm.DB, availability *entity.Availability) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "veterinarian_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"working_days", "start_time", "end_time",
			"appointment_duration", "break_time", "updated_at",
		}),
	}).Create(availability).Error
}

func (r *availabilityRepository) FindByVeterinarian(db *gorm.DB, name string) (*entity.Availability, error) {
	var availability entity.Availability
	err := db.Where("veterinarian_name = ?", name).First(&availability).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &availability, nil
}

func (r *availabilityRepository) FindAll(db *gorm.DB) ([]entity.Availability, error) {
	var availabilities []entity.Availability
	err := db.Order("veterinarian_name ASC").Find(&availabilities).Error
	if err != nil {
		return nil, err
	}
	return availabilities, nil
}

func (r *availabilityRepository) Delete(db *gorm.DB, name string) (int64, error) {
	affected := db.Where("veterinarian_name = ?", name).Delete(&entity.Availability{})
	return affected.RowsAffected, affected.Error
}
