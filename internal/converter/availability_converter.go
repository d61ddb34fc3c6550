package converter

import (
	"vet-clinic-management/internal/delivery/dto"
	"vet-clinic-management/internal/domain/entity"
)

// AvailabilityToResponse converts an Availability entity to AvailabilityResponse DTO
func AvailabilityToResponse(a *entity.Availability) *dto.AvailabilityResponse {
	if a == nil {
		return nil
	}

	return &dto.AvailabilityResponse{
		ID:                  a.ID,
		VeterinarianName:    a.VeterinarianName,
		WorkingDays:         []string(a.WorkingDays),
		StartTime:           a.StartTime,
		EndTime:             a.EndTime,
		AppointmentDuration: a.AppointmentDuration,
		BreakTime:           a.BreakTime,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

// AvailabilitiesToResponses converts a slice of Availability entities to slice of AvailabilityResponse DTOs
func AvailabilitiesToResponses(availability []entity.Availability) []dto.AvailabilityResponse {
	responses := make([]dto.AvailabilityResponse, len(availability))
	for i, a := range availability {
		resp := AvailabilityToResponse(&a)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
