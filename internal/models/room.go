package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room — одна сессия планирования: хост предлагает окно доступности,
// участники присылают диапазоны, хост один раз подтверждает фактическое время.
type Room struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title             string    `gorm:"not null"`
	Secret            string    `gorm:"uniqueIndex;not null"`
	PasscodeHash      string
	AvailableStartUTC time.Time `gorm:"column:available_start_utc;not null"`
	AvailableEndUTC   time.Time `gorm:"column:available_end_utc;not null"`
	TimeZone          string    `gorm:"not null;default:'UTC'"`
	MaxAttendees      int       `gorm:"default:10"`
	ActualStartUTC    *time.Time `gorm:"column:actual_start_utc"`
	ActualEndUTC      *time.Time `gorm:"column:actual_end_utc"`
	CreatedAt         time.Time

	// Связи
	Attendees []Attendee `gorm:"foreignKey:RoomID"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
