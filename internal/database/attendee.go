package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mkravets/meetsync/internal/models"
	"github.com/mkravets/meetsync/internal/scheduler"
)

func (d *Database) CreateAttendee(ctx context.Context, attendee *models.Attendee) error {
	return translate(d.db.WithContext(ctx).Create(attendee).Error)
}

// AddAttendee — условная вставка: участник добавляется, только если занято
// меньше лимита. Одна инструкция вместо count-then-insert, чтобы
// параллельные входы не перешагивали вместимость комнаты.
func (d *Database) AddAttendee(ctx context.Context, attendee *models.Attendee, maxAttendees int) error {
	if attendee.ID == uuid.Nil {
		attendee.ID = uuid.New()
	}

	res := d.db.WithContext(ctx).Exec(
		`INSERT INTO attendees (id, room_id, name, is_host, created_at)
		 SELECT ?, ?, ?, ?, ?
		 WHERE (SELECT COUNT(*) FROM attendees WHERE room_id = ?) < ?`,
		attendee.ID, attendee.RoomID, attendee.Name, attendee.IsHost, attendee.CreatedAt,
		attendee.RoomID, maxAttendees,
	)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return scheduler.ErrRoomFull
	}
	return nil
}

func (d *Database) GetAttendee(ctx context.Context, id uuid.UUID) (*models.Attendee, error) {
	var attendee models.Attendee
	if err := d.db.WithContext(ctx).First(&attendee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduler.ErrAttendeeNotFound
		}
		return nil, translate(err)
	}
	return &attendee, nil
}

func (d *Database) CountRoomAttendees(ctx context.Context, roomID uuid.UUID) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&models.Attendee{}).
		Where("room_id = ?", roomID).
		Count(&count).Error
	if err != nil {
		return 0, translate(err)
	}
	return count, nil
}
