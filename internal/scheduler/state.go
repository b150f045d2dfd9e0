package scheduler

import (
	"time"

	"github.com/mkravets/meetsync/internal/models"
)

// RoomState — состояние комнаты. CANCELLED не представлено значением:
// отменённая комната удаляется из хранилища целиком.
type RoomState string

const (
	RoomOpen      RoomState = "OPEN"
	RoomConfirmed RoomState = "CONFIRMED"
)

// StateOf вычисляет состояние один раз на запрос, вместо разбросанных
// проверок nullable-полей по месту использования.
func StateOf(room *models.Room) RoomState {
	if room.ActualStartUTC != nil && room.ActualEndUTC != nil {
		return RoomConfirmed
	}
	return RoomOpen
}

// ValidateRange — общая проверка для заявок и подтверждения: start < end.
func ValidateRange(start, end time.Time) error {
	if !start.Before(end) {
		return ErrInvalidRange
	}
	return nil
}
