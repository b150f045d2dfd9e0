package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkravets/meetsync/internal/scheduler"
)

// respondError переводит ошибку движка в HTTP-статус. Повторяемость
// отдаётся клиенту отдельным полем, чтобы он сам решал про ретраи.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, scheduler.ErrInvalidRange):
		status = http.StatusBadRequest
	case errors.Is(err, scheduler.ErrNotHost):
		status = http.StatusForbidden
	case errors.Is(err, scheduler.ErrAlreadyConfirmed), errors.Is(err, scheduler.ErrRoomFull):
		status = http.StatusConflict
	case errors.Is(err, scheduler.ErrRoomNotFound), errors.Is(err, scheduler.ErrAttendeeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, scheduler.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, scheduler.ErrTransientStore):
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"error":     err.Error(),
		"retryable": scheduler.IsRetryable(err),
	})
}
