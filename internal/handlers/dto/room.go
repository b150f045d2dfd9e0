package dto

import "time"

type CreateRoomRequest struct {
	Title        string    `json:"title" binding:"required,min=1,max=100"`
	HostName     string    `json:"host_name" binding:"required,min=1,max=50"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
	TimeZone     string    `json:"time_zone"`
	MaxAttendees int       `json:"max_attendees"`
	Passcode     string    `json:"passcode"`
}

type JoinRoomRequest struct {
	Secret   string `json:"secret" binding:"required"`
	Name     string `json:"name" binding:"required,min=1,max=50"`
	Passcode string `json:"passcode"`
}

// SessionResponse — ответ на создание комнаты и на вход по коду
type SessionResponse struct {
	Token      string `json:"token"`
	RoomID     string `json:"room_id"`
	AttendeeID string `json:"attendee_id"`
	Secret     string `json:"secret,omitempty"` // только для хоста при создании
	IsHost     bool   `json:"is_host"`
}
