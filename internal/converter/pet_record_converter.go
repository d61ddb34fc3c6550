package converter

import (
	"vet-clinic-management/internal/delivery/dto"
	"vet-clinic-management/internal/domain/entity"
)

// PetRecordToResponse converts a PetRecord entity to PetRecordResponse DTO
func PetRecordToResponse(record *entity.PetRecord) *dto.PetRecordResponse {
	if record == nil {
		return nil
	}

	vaccinations := make([]dto.VaccinationResponse, len(record.Vaccinations))
	for i, v := range record.Vaccinations {
		vaccinations[i] = dto.VaccinationResponse{
			Name: v.Name,
			Date: v.Date,
		}
	}

	return &dto.PetRecordResponse{
		ID:            record.ID,
		OwnerID:       record.OwnerID,
		PetName:       record.PetName,
		Breed:         record.Breed,
		Age:           record.Age,
		Weight:        record.Weight,
		Gender:        record.Gender,
		Color:         record.Color,
		RecentIllness: record.RecentIllness,
		Vaccinations:  vaccinations,
		Allergies:     []string(record.Allergies),
		Notes:         record.Notes,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}

// PetRecordsToResponses converts a slice of PetRecord entities to slice of PetRecordResponse DTOs
func PetRecordsToResponses(records []entity.PetRecord) []dto.PetRecordResponse {
	responses := make([]dto.PetRecordResponse, len(records))
	for i, record := range records {
		resp := PetRecordToResponse(&record)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
