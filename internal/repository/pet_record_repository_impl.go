package repository

import (
	"errors"

	"vet-clinic-management/internal/domain/entity"
	domainRepo "vet-clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type petRecordRepository struct{}

func NewPetRecordRepository() domainRepo.PetRecordRepository {
	return &petRecordRepository{}
}

func (r *petRecordRepository) Create(db *gorm.DB, record *entity.PetRecord) error {
	return db.Create(record).Error
}

func (r *petRecordRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.PetRecord, error) {
	var record entity.PetRecord
	err := db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *petRecordRepository) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.PetRecord, error) {
	var records []entity.PetRecord
	err := db.Where("owner_id = ?", ownerID).Order("pet_name ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *petRecordRepository) FindAll(db *gorm.DB) ([]entity.PetRecord, error) {
	var records []entity.PetRecord
	err := db.Order("pet_name ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *petRecordRepository) Update(db *gorm.DB, record *entity.PetRecord) error {
	return db.Omit("Owner").Save(record).Error
}

func (r *petRecordRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.PetRecord{})
	return affected.RowsAffected, affected.Error
}
