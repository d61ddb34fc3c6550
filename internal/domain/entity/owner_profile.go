package entity

import "github.com/google/uuid"

// OwnerProfile represents pet-owner-specific profile data
type OwnerProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	PhoneNumber string    `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`

	// Relationships
	User       User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PetRecords []PetRecord `gorm:"foreignKey:OwnerID" json:"pet_records,omitempty"`
}

func (OwnerProfile) TableName() string {
	return "owner_profiles"
}
