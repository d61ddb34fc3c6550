package entity

import (
	"time"

	"github.com/google/uuid"
)

// Availability is a recurring, weekday-based working-hours template for one
// veterinarian, used to derive that veterinarian's bookable slot grid
// independently of per-date schedules. One row per veterinarian (upsert).
type Availability struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VeterinarianName    string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"veterinarian_name"`
	WorkingDays         StringList `gorm:"type:jsonb;not null" json:"working_days"`
	StartTime           string     `gorm:"type:char(5);not null" json:"start_time"`
	EndTime             string     `gorm:"type:char(5);not null" json:"end_time"`
	AppointmentDuration int        `gorm:"not null" json:"appointment_duration"`
	BreakTime           int        `gorm:"not null;default:0" json:"break_time"`
	CreatedAt           time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Availability) TableName() string {
	return "availability"
}

// WorksOn reports whether the template covers the given weekday name
// ("Monday" ... "Sunday").
func (a *Availability) WorksOn(weekday string) bool {
	return a.WorkingDays.Contains(weekday)
}
