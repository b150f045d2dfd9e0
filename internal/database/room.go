package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mkravets/meetsync/internal/models"
	"github.com/mkravets/meetsync/internal/scheduler"
)

func (d *Database) CreateRoom(ctx context.Context, room *models.Room) error {
	return translate(d.db.WithContext(ctx).Create(room).Error)
}

// CreateRoomWithHost создаёт комнату вместе с её хостом в одной транзакции:
// комната без единственного хоста существовать не должна, а её секрет
// после неудачного создания никто бы уже не узнал.
func (d *Database) CreateRoomWithHost(ctx context.Context, room *models.Room, host *models.Attendee) error {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return err
		}
		host.RoomID = room.ID
		return tx.Create(host).Error
	})
	return translate(err)
}

// GetRoom загружает комнату вместе с участниками и их диапазонами.
func (d *Database) GetRoom(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	var room models.Room
	err := d.db.WithContext(ctx).
		Preload("Attendees", func(db *gorm.DB) *gorm.DB {
			return db.Order("attendees.created_at ASC")
		}).
		Preload("Attendees.Ranges", func(db *gorm.DB) *gorm.DB {
			return db.Order("time_ranges.created_at ASC")
		}).
		First(&room, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduler.ErrRoomNotFound
		}
		return nil, translate(err)
	}
	return &room, nil
}

// FindRoomBySecret — вход по коду приглашения.
func (d *Database) FindRoomBySecret(ctx context.Context, secret string) (*models.Room, error) {
	var room models.Room
	err := d.db.WithContext(ctx).
		Preload("Attendees").
		Where("secret = ?", secret).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduler.ErrRoomNotFound
		}
		return nil, translate(err)
	}
	return &room, nil
}

// ConfirmRoom выставляет фактическое окно встречи ровно один раз.
// Условный UPDATE вместо read-then-write: при гонке подтверждений
// выигрывает ровно одно, остальные получают ErrAlreadyConfirmed.
func (d *Database) ConfirmRoom(ctx context.Context, roomID uuid.UUID, start, end time.Time) (*models.Room, error) {
	res := d.db.WithContext(ctx).Model(&models.Room{}).
		Where("id = ? AND actual_start_utc IS NULL", roomID).
		Updates(map[string]interface{}{
			"actual_start_utc": start,
			"actual_end_utc":   end,
		})
	if res.Error != nil {
		return nil, translate(res.Error)
	}

	if res.RowsAffected == 0 {
		// Либо комнаты нет, либо окно уже выставлено
		var room models.Room
		if err := d.db.WithContext(ctx).First(&room, "id = ?", roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, scheduler.ErrRoomNotFound
			}
			return nil, translate(err)
		}
		return nil, scheduler.ErrAlreadyConfirmed
	}

	return d.GetRoom(ctx, roomID)
}

// DeleteRoom удаляет комнату каскадно: диапазоны, участники, сама комната —
// в одной транзакции.
func (d *Database) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var attendeeIDs []uuid.UUID
		if err := tx.Model(&models.Attendee{}).Where("room_id = ?", id).Pluck("id", &attendeeIDs).Error; err != nil {
			return err
		}

		if len(attendeeIDs) > 0 {
			if err := tx.Delete(&models.TimeRange{}, "attendee_id IN ?", attendeeIDs).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&models.Attendee{}, "room_id = ?", id).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Room{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return scheduler.ErrRoomNotFound
		}
		return nil
	})
	return translate(err)
}
