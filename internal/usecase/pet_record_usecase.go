package usecase

import (
	"context"
	"errors"

	"vet-clinic-management/internal/converter"
	"vet-clinic-management/internal/delivery/dto"
	"vet-clinic-management/internal/delivery/http/middleware"
	"vet-clinic-management/internal/domain/entity"
	"vet-clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPetRecordNotFound = errors.New("pet record not found")
	ErrPetRecordNotOwned = errors.New("pet record does not belong to you")
)

type PetRecordUsecase interface {
	Create(ctx context.Context, req *dto.CreatePetRecordRequest) (*dto.PetRecordResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PetRecordResponse, error)
	ListMine(ctx context.Context) (*dto.PetRecordListResponse, error)
	ListAll(ctx context.Context) (*dto.PetRecordListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePetRecordRequest) (*dto.PetRecordResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type petRecordUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	petRecordRepo repository.PetRecordRepository
}

func NewPetRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	petRecordRepo repository.PetRecordRepository,
) PetRecordUsecase {
	return &petRecordUsecase{
		db:            db,
		log:           log,
		petRecordRepo: petRecordRepo,
	}
}

func (u *petRecordUsecase) Create(ctx context.Context, req *dto.CreatePetRecordRequest) (*dto.PetRecordResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	record := &entity.PetRecord{
		OwnerID:       userID,
		PetName:       req.PetName,
		Breed:         req.Breed,
		Age:           req.Age,
		Weight:        req.Weight,
		Gender:        req.Gender,
		Color:         req.Color,
		RecentIllness: req.RecentIllness,
		Vaccinations:  vaccinationsFromRequests(req.Vaccinations),
		Allergies:     entity.StringList(req.Allergies),
		Notes:         req.Notes,
	}

	if err := u.petRecordRepo.Create(u.db.WithContext(ctx), record); err != nil {
		u.log.Warnf("Failed to create pet record: %+v", err)
		return nil, err
	}

	return converter.PetRecordToResponse(record), nil
}

func (u *petRecordUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PetRecordResponse, error) {
	record, err := u.findAccessible(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.PetRecordToResponse(record), nil
}

func (u *petRecordUsecase) ListMine(ctx context.Context) (*dto.PetRecordListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	records, err := u.petRecordRepo.FindByOwnerID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find pet records for owner %s: %+v", userID, err)
		return nil, err
	}

	return &dto.PetRecordListResponse{
		Records: converter.PetRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

// ListAll is for clinic staff and vets reviewing patient histories.
func (u *petRecordUsecase) ListAll(ctx context.Context) (*dto.PetRecordListResponse, error) {
	records, err := u.petRecordRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list pet records: %+v", err)
		return nil, err
	}

	return &dto.PetRecordListResponse{
		Records: converter.PetRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

func (u *petRecordUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePetRecordRequest) (*dto.PetRecordResponse, error) {
	record, err := u.findAccessible(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PetName != "" {
		record.PetName = req.PetName
	}
	if req.Breed != "" {
		record.Breed = req.Breed
	}
	if req.Age != nil {
		record.Age = *req.Age
	}
	if req.Weight != nil {
		record.Weight = *req.Weight
	}
	if req.Gender != "" {
		record.Gender = req.Gender
	}
	if req.Color != "" {
		record.Color = req.Color
	}
	if req.RecentIllness != nil {
		record.RecentIllness = *req.RecentIllness
	}
	if req.Vaccinations != nil {
		record.Vaccinations = vaccinationsFromRequests(req.Vaccinations)
	}
	if req.Allergies != nil {
		record.Allergies = entity.StringList(req.Allergies)
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}

	if err := u.petRecordRepo.Update(u.db.WithContext(ctx), record); err != nil {
		u.log.Warnf("Failed to update pet record %s: %+v", id, err)
		return nil, err
	}

	return converter.PetRecordToResponse(record), nil
}

func (u *petRecordUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := u.findAccessible(ctx, id); err != nil {
		return err
	}

	rows, err := u.petRecordRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete pet record %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrPetRecordNotFound
	}

	return nil
}

// findAccessible loads the record and enforces owner scoping. Clinic staff
// and vets may read any record.
func (u *petRecordUsecase) findAccessible(ctx context.Context, id uuid.UUID) (*entity.PetRecord, error) {
	record, err := u.petRecordRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find pet record %s: %+v", id, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrPetRecordNotFound
	}

	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	if roleID == entity.RoleIDOwner {
		userID, ok := middleware.GetUserIDFromContext(ctx)
		if !ok || record.OwnerID != userID {
			return nil, ErrPetRecordNotOwned
		}
	}

	return record, nil
}

func vaccinationsFromRequests(requests []dto.VaccinationRequest) entity.VaccinationList {
	if requests == nil {
		return nil
	}
	vaccinations := make(entity.VaccinationList, len(requests))
	for i, v := range requests {
		vaccinations[i] = entity.Vaccination{
			Name: v.Name,
			Date: v.Date,
		}
	}
	return vaccinations
}
