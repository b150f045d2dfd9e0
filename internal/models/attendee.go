package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Attendee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoomID    uuid.UUID `gorm:"not null;index"`
	Name      string    `gorm:"not null"`
	IsHost    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time

	// Связи
	Room   Room        `gorm:"foreignKey:RoomID"`
	Ranges []TimeRange `gorm:"foreignKey:AttendeeID"`
}

func (a *Attendee) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
