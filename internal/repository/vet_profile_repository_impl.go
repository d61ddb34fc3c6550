package repository

import (
	"errors"

	"vet-clinic-management/internal/domain/entity"
	domainRepo "vet-clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vetProfileRepository struct{}

func NewVetProfileRepository() domainRepo.VetProfileRepository {
	return &vetProfileRepository{}
}

func (r *vetProfileRepository) Create(db *gorm.DB, profile *entity.VetProfile) error {
	return db.Create(profile).Error
}

func (r *vetProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.VetProfile, error) {
	var profile entity.VetProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *vetProfileRepository) FindAll(db *gorm.DB) ([]entity.VetProfile, error) {
	var profiles []entity.VetProfile
	err := db.Preload("User").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *vetProfileRepository) FindActiveNames(db *gorm.DB) ([]string, error) {
	var names []string
	err := db.Model(&entity.VetProfile{}).
		Joins("JOIN users ON users.id = vet_profiles.user_id").
		Where("users.is_active = ?", true).
		Order("users.full_name ASC").
		Pluck("users.full_name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *vetProfileRepository) Update(db *gorm.DB, profile *entity.VetProfile) error {
	if err := db.Save(&profile.User).Error; err != nil {
		return err
	}
	return db.Save(profile).Error
}
