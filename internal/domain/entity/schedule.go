package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Schedule is a date-scoped working window listing which veterinarians are
// rostered. Multiple windows with different rosters may exist for one date.
type Schedule struct {
	ID            int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Date          string     `gorm:"type:char(10);not null;index" json:"date"`
	StartTime     string     `gorm:"type:char(5);not null" json:"start_time"`
	EndTime       string     `gorm:"type:char(5);not null" json:"end_time"`
	Veterinarians StringList `gorm:"type:jsonb;not null" json:"veterinarians"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Schedule) TableName() string {
	return "schedules"
}

// StringList type for GORM JSONB support
type StringList []string

// Value returns json value, implement driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(l))
}

// Scan scans value into the list, implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
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

	var result []string
	err := json.Unmarshal(bytes, &result)
	*l = StringList(result)
	return err
}

// Contains reports whether name is in the list.
func (l StringList) Contains(name string) bool {
	for _, v := range l {
		if v == name {
			return true
		}
	}
	return false
}
