package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Appointment is a client booking for one service at one business. The time
// field is the start time as a zero-padded HH:MM:SS string; the duration is
// looked up from the service at read time, not captured on the row.
type Appointment struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID  `gorm:"type:uuid;index;not null;uniqueIndex:idx_business_date_time,priority:1"`
	ServiceID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	ClientID   *uuid.UUID `gorm:"type:uuid;index"` // nil for guest bookings

	AppointmentDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_business_date_time,priority:2"`
	AppointmentTime string    `gorm:"type:varchar(8);not null;uniqueIndex:idx_business_date_time,priority:3,where:status = 'pending' OR status = 'confirmed'"` // HH:MM:SS

	Status string `gorm:"type:varchar(20);default:'pending';index"`

	ClientName  string `gorm:"not null"`
	ClientEmail string `gorm:"not null"`
	ClientPhone string `gorm:"not null"`
	Notes       string `gorm:"type:text"`

	Service Service `gorm:"foreignKey:ServiceID"`

	gorm.Model
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// statusTransitions encodes the appointment lifecycle: pending can be
// confirmed or cancelled, confirmed can be completed or cancelled,
// cancelled and completed are terminal.
var statusTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
}

// CanTransition reports whether an appointment may move from its current
// status to the target status.
func CanTransition(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// BlockingStatuses are the statuses under which an appointment still
// occupies its start time. Cancelled and completed bookings do not block
// new slots.
var BlockingStatuses = []string{StatusPending, StatusConfirmed}

// BlocksSlot reports whether an appointment in this status still occupies
// its start time.
func BlocksSlot(status string) bool {
	for _, s := range BlockingStatuses {
		if s == status {
			return true
		}
	}
	return false
}
