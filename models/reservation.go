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
)

// IsValidStatus reports whether s is one of the three reservation statuses.
func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

type Reservation struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"not null" json:"name"`
	Phone string    `gorm:"not null" json:"phone"`
	Email *string   `json:"email"`

	// Weak reference to the booked service. No foreign-key constraint:
	// deleting a service must not touch its past reservations.
	ServiceID uuid.UUID `gorm:"type:uuid;index" json:"service_id"`

	AppointmentDate time.Time `gorm:"index" json:"appointment_date"`
	AppointmentTime string    `gorm:"type:varchar(5);not null" json:"appointment_time"` // "HH:MM" slot label
	Notes           *string   `json:"notes"`
	Status          string    `gorm:"type:varchar(20);default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Initialize UUID before creating
func (r *Reservation) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
