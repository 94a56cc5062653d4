package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityWindow is a recurring weekly time range during which a business
// offers bookings. Weekday follows the 0=Sunday convention. Start and end are
// minutes since midnight; multiple windows may exist for the same weekday
// (split shifts).
type AvailabilityWindow struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`

	Weekday      int  `gorm:"not null"` // 0 = Sunday .. 6 = Saturday
	StartMinutes int  `gorm:"not null"`
	EndMinutes   int  `gorm:"not null"`
	IsActive     bool `gorm:"default:true"`

	gorm.Model
}

func (AvailabilityWindow) TableName() string {
	return "availability_windows"
}

func (w *AvailabilityWindow) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return
}
