package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Business struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name        string `gorm:"not null"`
	Category    string `gorm:"index;default:'General'"` // salon, trainer, clinic, ...
	City        string `gorm:"index"`
	Address     string
	Phone       string
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"default:true"`

	Services            []Service            `gorm:"foreignKey:BusinessID"`
	AvailabilityWindows []AvailabilityWindow `gorm:"foreignKey:BusinessID"`
	Appointments        []Appointment        `gorm:"foreignKey:BusinessID"`

	gorm.Model
}

func (b *Business) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
