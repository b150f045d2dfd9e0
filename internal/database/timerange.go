package database

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkravets/meetsync/internal/models"
)

func (d *Database) CreateTimeRange(ctx context.Context, tr *models.TimeRange) error {
	return translate(d.db.WithContext(ctx).Create(tr).Error)
}

// GetAttendeeRanges возвращает диапазоны участника в порядке добавления.
func (d *Database) GetAttendeeRanges(ctx context.Context, attendeeID uuid.UUID) ([]models.TimeRange, error) {
	var ranges []models.TimeRange
	err := d.db.WithContext(ctx).
		Where("attendee_id = ?", attendeeID).
		Order("created_at ASC").
		Find(&ranges).Error
	if err != nil {
		return nil, translate(err)
	}
	return ranges, nil
}

// GetRoomRanges возвращает все диапазоны комнаты для построения таймлайна.
func (d *Database) GetRoomRanges(ctx context.Context, roomID uuid.UUID) ([]models.TimeRange, error) {
	var ranges []models.TimeRange
	err := d.db.WithContext(ctx).
		Joins("JOIN attendees ON attendees.id = time_ranges.attendee_id").
		Where("attendees.room_id = ?", roomID).
		Order("time_ranges.created_at ASC").
		Find(&ranges).Error
	if err != nil {
		return nil, translate(err)
	}
	return ranges, nil
}
