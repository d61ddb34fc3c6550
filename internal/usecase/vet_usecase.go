package usecase

import (
	"context"
	"errors"

	"vet-clinic-management/internal/converter"
	"vet-clinic-management/internal/delivery/dto"
	"vet-clinic-management/internal/delivery/http/middleware"
	"vet-clinic-management/internal/domain/entity"
	"vet-clinic-management/internal/domain/repository"
	"vet-clinic-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrVetNotFound          = errors.New("veterinarian not found")
	ErrLicenseAlreadyExists = errors.New("license number already exists")
)

type VetUsecase interface {
	Register(ctx context.Context, req *dto.RegisterVetRequest) (*dto.VetResponse, error)
	Get(ctx context.Context, userID uuid.UUID) (*dto.VetResponse, error)
	GetAll(ctx context.Context) (*dto.VetListResponse, error)
	// ActiveNames feeds the vet picker on the booking form.
	ActiveNames(ctx context.Context) (*dto.VetNamesResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateVetProfileRequest) (*dto.VetResponse, error)
	UpdateSelf(ctx context.Context, req *dto.UpdateVetProfileRequest) (*dto.VetResponse, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type vetUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	userRepo       repository.UserRepository
	roleRepo       repository.RoleRepository
	vetProfileRepo repository.VetProfileRepository
	auditService   service.AuditService
}

func NewVetUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	vetProfileRepo repository.VetProfileRepository,
	auditService service.AuditService,
) VetUsecase {
	return &vetUsecase{
		db:             db,
		log:            log,
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		vetProfileRepo: vetProfileRepo,
		auditService:   auditService,
	}
}

// Register creates a veterinarian account. Staff only; vets do not
// self-register.
func (u *vetUsecase) Register(ctx context.Context, req *dto.RegisterVetRequest) (*dto.VetResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	role, err := u.roleRepo.FindByName(ctx, tx, entity.RoleVet)
	if err != nil {
		u.log.Warnf("Failed to find vet role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		RoleID:   role.ID,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isForeignKeyError(err, "role_id") {
			return nil, ErrRoleNotFound
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.VetProfile{
		UserID:         user.ID,
		LicenseNumber:  req.LicenseNumber,
		Specialization: req.Specialization,
		Biography:      req.Biography,
	}

	if err := u.vetProfileRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to create vet profile: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionVetCreate, "vet_profile", user.ID.String(), map[string]interface{}{
		"email":          user.Email,
		"license_number": profile.LicenseNumber,
		"specialization": profile.Specialization,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.User = *user
	return converter.VetProfileToResponse(profile), nil
}

func (u *vetUsecase) Get(ctx context.Context, userID uuid.UUID) (*dto.VetResponse, error) {
	profile, err := u.vetProfileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find vet profile %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrVetNotFound
	}

	return converter.VetProfileToResponse(profile), nil
}

func (u *vetUsecase) GetAll(ctx context.Context) (*dto.VetListResponse, error) {
	profiles, err := u.vetProfileRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list vet profiles: %+v", err)
		return nil, err
	}

	return &dto.VetListResponse{
		Vets:  converter.VetProfilesToResponses(profiles),
		Total: len(profiles),
	}, nil
}

func (u *vetUsecase) ActiveNames(ctx context.Context) (*dto.VetNamesResponse, error) {
	names, err := u.vetProfileRepo.FindActiveNames(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list active vet names: %+v", err)
		return nil, err
	}

	return &dto.VetNamesResponse{Names: names}, nil
}

func (u *vetUsecase) Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateVetProfileRequest) (*dto.VetResponse, error) {
	return u.update(ctx, userID, req, true)
}

// UpdateSelf lets a vet edit their own profile; account activation stays a
// staff decision.
func (u *vetUsecase) UpdateSelf(ctx context.Context, req *dto.UpdateVetProfileRequest) (*dto.VetResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	return u.update(ctx, userID, req, false)
}

func (u *vetUsecase) update(ctx context.Context, userID uuid.UUID, req *dto.UpdateVetProfileRequest, allowActivation bool) (*dto.VetResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.vetProfileRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find vet profile %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrVetNotFound
	}

	oldValue := map[string]interface{}{
		"full_name":      profile.User.FullName,
		"specialization": profile.Specialization,
	}

	if req.FullName != "" {
		profile.User.FullName = req.FullName
	}
	if req.Specialization != "" {
		profile.Specialization = req.Specialization
	}
	if req.Biography != nil {
		profile.Biography = *req.Biography
	}
	if allowActivation && req.IsActive != nil {
		profile.User.IsActive = req.IsActive
	}

	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		u.log.Warnf("Failed to update user %s: %+v", userID, err)
		return nil, err
	}
	if err := u.vetProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update vet profile %s: %+v", userID, err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionVetUpdate, "vet_profile", userID.String(), oldValue, map[string]interface{}{
		"full_name":      profile.User.FullName,
		"specialization": profile.Specialization,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VetProfileToResponse(profile), nil
}

// Delete deactivates the vet account rather than removing rows; appointments
// reference vets by name and history must stay intact.
func (u *vetUsecase) Delete(ctx context.Context, userID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.vetProfileRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find vet profile %s: %+v", userID, err)
		return err
	}
	if profile == nil {
		return ErrVetNotFound
	}

	inactive := false
	profile.User.IsActive = &inactive
	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		u.log.Warnf("Failed to deactivate vet %s: %+v", userID, err)
		return err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionVetDelete, "vet_profile", userID.String(), map[string]interface{}{
		"full_name":      profile.User.FullName,
		"license_number": profile.LicenseNumber,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
