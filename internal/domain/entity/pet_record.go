package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Vaccination is one administered vaccine entry in a pet record.
type Vaccination struct {
	Name string `json:"name"`
	Date string `json:"date"` // YYYY-MM-DD
}

// VaccinationList type for GORM JSONB support
type VaccinationList []Vaccination

func (l VaccinationList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]Vaccination{})
	}
	return json.Marshal([]Vaccination(l))
}

func (l *VaccinationList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []Vaccination
	err := json.Unmarshal(bytes, &result)
	*l = VaccinationList(result)
	return err
}

// PetRecord is the medical profile of one pet, owned by a pet owner account.
type PetRecord struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	PetName       string          `gorm:"type:varchar(100);not null" json:"pet_name"`
	Breed         string          `gorm:"type:varchar(100)" json:"breed,omitempty"`
	Age           int             `gorm:"not null;default:0" json:"age"`
	Weight        float64         `gorm:"not null;default:0" json:"weight"`
	Gender        string          `gorm:"type:varchar(10);not null" json:"gender"`
	Color         string          `gorm:"type:varchar(50)" json:"color,omitempty"`
	RecentIllness string          `gorm:"type:text" json:"recent_illness,omitempty"`
	Vaccinations  VaccinationList `gorm:"type:jsonb" json:"vaccinations,omitempty"`
	Allergies     StringList      `gorm:"type:jsonb" json:"allergies,omitempty"`
	Notes         string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owner User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (PetRecord) TableName() string {
	return "pet_records"
}

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
)
