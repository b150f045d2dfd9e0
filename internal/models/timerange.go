package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeRange — одна заявка участника о занятости/доступности.
// Записи только добавляются, пересечения допустимы и не склеиваются.
type TimeRange struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	AttendeeID uuid.UUID `gorm:"not null;index"`
	StartUTC   time.Time `gorm:"not null"`
	EndUTC     time.Time `gorm:"not null"`
	Mode       string    `gorm:"not null;check:mode IN ('FREE','BUSY')"`
	CreatedAt  time.Time

	// Связи
	Attendee Attendee `gorm:"foreignKey:AttendeeID"`
}

func (t *TimeRange) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
