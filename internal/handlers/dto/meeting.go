package dto

import "time"

type SubmitAvailabilityRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Mode      string    `json:"mode" binding:"required,oneof=FREE BUSY"`
}

type ConfirmMeetingRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}
