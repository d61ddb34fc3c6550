package converter

import (
	"vet-clinic-management/internal/delivery/dto"
	"vet-clinic-management/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(apt *entity.Appointment) *dto.AppointmentResponse {
	if apt == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:            apt.ID,
		Code:          apt.Code,
		OwnerID:       apt.OwnerID,
		PetName:       apt.PetName,
		OwnerName:     apt.OwnerName,
		Phone:         apt.Phone,
		Email:         apt.Email,
		Date:          apt.Date,
		Time:          apt.Time,
		Vet:           apt.Vet,
		Status:        string(apt.Status),
		Reason:        apt.Reason,
		Notes:         apt.Notes,
		ServiceType:   apt.ServiceType,
		Price:         apt.Price,
		PaymentStatus: string(apt.PaymentStatus),
		PaymentData:   map[string]interface{}(apt.PaymentData),
		CreatedAt:     apt.CreatedAt,
		UpdatedAt:     apt.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, apt := range appointments {
		resp := AppointmentToResponse(&apt)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
