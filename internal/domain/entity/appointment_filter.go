package entity

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	Date   string // Format: YYYY-MM-DD
	Vet    string // Filter by assigned veterinarian name (exact)
	Status string // Filter by appointment status
}
