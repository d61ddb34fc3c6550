package converter

import (
	"vet-clinic-management/internal/delivery/dto"
	"vet-clinic-management/internal/domain/entity"
)

// VetProfileToResponse converts a VetProfile entity to VetResponse DTO.
// The associated user must be preloaded.
func VetProfileToResponse(profile *entity.VetProfile) *dto.VetResponse {
	if profile == nil {
		return nil
	}

	isActive := false
	if profile.User.IsActive != nil {
		isActive = *profile.User.IsActive
	}

	return &dto.VetResponse{
		UserID:         profile.UserID,
		FullName:       profile.User.FullName,
		Email:          profile.User.Email,
		LicenseNumber:  profile.LicenseNumber,
		Specialization: profile.Specialization,
		Biography:      profile.Biography,
		IsActive:       isActive,
		CreatedAt:      profile.User.CreatedAt,
		UpdatedAt:      profile.User.UpdatedAt,
	}
}

// VetProfilesToResponses converts a slice of VetProfile entities to slice of VetResponse DTOs
func VetProfilesToResponses(profiles []entity.VetProfile) []dto.VetResponse {
	responses := make([]dto.VetResponse, len(profiles))
	for i, profile := range profiles {
		resp := VetProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
