package repository

import (
	"errors"

	"vet-clinic-management/internal/domain/entity"
	domainRepo "vet-clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ownerProfileRepository struct{}

func NewOwnerProfileRepository() domainRepo.OwnerProfileRepository {
	return &ownerProfileRepository{}
}

func (r *ownerProfileRepository) Create(db *gorm.DB, profile *entity.OwnerProfile) error {
	return db.Create(profile).Error
}

func (r *ownerProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.OwnerProfile, error) {
	var profile entity.OwnerProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ownerProfileRepository) Update(db *gorm.DB, profile *entity.OwnerProfile) error {
	return db.Save(profile).Error
}
