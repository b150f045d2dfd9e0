package scheduler

import "errors"

var (
	ErrInvalidRange     = errors.New("start must be before end")
	ErrNotHost          = errors.New("only the room host can do this")
	ErrAlreadyConfirmed = errors.New("room is already confirmed")
	ErrRoomNotFound     = errors.New("room not found")
	ErrAttendeeNotFound = errors.New("attendee not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrRoomFull         = errors.New("room is full")
	ErrUnknownMode      = errors.New("unknown datetime mode")

	// ErrTransientStore — единственная повторяемая ошибка: таймаут или
	// недоступность хранилища. Всё остальное исправляет пользователь.
	ErrTransientStore = errors.New("store temporarily unavailable")
)

// IsRetryable сообщает вызывающему, имеет ли смысл повторить операцию.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransientStore)
}
