package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mkravets/meetsync/internal/database"
	"github.com/mkravets/meetsync/internal/handlers/dto"
	"github.com/mkravets/meetsync/internal/middleware"
	"github.com/mkravets/meetsync/internal/models"
	"github.com/mkravets/meetsync/internal/scheduler"
)

type MeetingHandler struct {
	db *database.Database
}

func NewMeetingHandler(db *database.Database) *MeetingHandler {
	return &MeetingHandler{db: db}
}

// GetRoomState возвращает комнату, участников, их диапазоны и таймлайн
func (h *MeetingHandler) GetRoomState(c *gin.Context) {
	attendeeID := c.MustGet(middleware.AttendeeIDKey).(uuid.UUID)
	roomID := c.MustGet(middleware.RoomIDKey).(uuid.UUID)

	room, err := h.db.GetRoom(c.Request.Context(), roomID)
	if err != nil {
		respondError(c, err)
		return
	}

	ranges, err := h.db.GetRoomRanges(c.Request.Context(), roomID)
	if err != nil {
		respondError(c, err)
		return
	}

	timeline, err := scheduler.BuildTimeline(room, room.Attendees, ranges)
	if err != nil {
		respondError(c, err)
		return
	}

	attendees := make([]gin.H, len(room.Attendees))
	for i, attendee := range room.Attendees {
		attendees[i] = formatAttendeeResponse(&attendee)
	}

	rangesResponse := make([]gin.H, len(ranges))
	for i, tr := range ranges {
		rangesResponse[i] = formatRangeResponse(&tr)
	}

	c.JSON(http.StatusOK, gin.H{
		"room":            formatRoomResponse(room),
		"attendees":       attendees,
		"ranges":          rangesResponse,
		"timeline":        timeline,
		"current_user_id": attendeeID,
		"state":           scheduler.StateOf(room),
	})
}

// SubmitAvailability добавляет диапазон FREE/BUSY текущего участника.
// Диапазоны только добавляются, существующие не изменяются.
func (h *MeetingHandler) SubmitAvailability(c *gin.Context) {
	attendeeID := c.MustGet(middleware.AttendeeIDKey).(uuid.UUID)
	roomID := c.MustGet(middleware.RoomIDKey).(uuid.UUID)

	var req dto.SubmitAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := scheduler.ValidateRange(req.StartTime.UTC(), req.EndTime.UTC()); err != nil {
		respondError(c, err)
		return
	}

	mode, err := scheduler.ParseMode(req.Mode)
	if err != nil {
		respondError(c, err)
		return
	}

	room, err := h.db.GetRoom(c.Request.Context(), roomID)
	if err != nil {
		respondError(c, err)
		return
	}

	// По подтверждённой комнате заявки больше не принимаются
	if scheduler.StateOf(room) == scheduler.RoomConfirmed {
		respondError(c, scheduler.ErrAlreadyConfirmed)
		return
	}

	tr := &models.TimeRange{
		AttendeeID: attendeeID,
		StartUTC:   req.StartTime.UTC(),
		EndUTC:     req.EndTime.UTC(),
		Mode:       string(mode),
		CreatedAt:  time.Now().UTC(),
	}

	if err := h.db.CreateTimeRange(c.Request.Context(), tr); err != nil {
		respondError(c, err)
		return
	}

	// Отдаём обновлённый набор диапазонов участника
	ranges, err := h.db.GetAttendeeRanges(c.Request.Context(), attendeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	result := make([]gin.H, len(ranges))
	for i, r := range ranges {
		result[i] = formatRangeResponse(&r)
	}

	c.JSON(http.StatusCreated, gin.H{"ranges": result})
}

// ConfirmMeeting выставляет фактическое окно встречи. Только хост, ровно
// один раз: повторный вызов получает конфликт, а не перезапись.
// Попадание окна в предложенный интервал и занятость участников намеренно
// не проверяются — последнее слово за хостом.
func (h *MeetingHandler) ConfirmMeeting(c *gin.Context) {
	roomID := c.MustGet(middleware.RoomIDKey).(uuid.UUID)
	isHost := c.MustGet(middleware.IsHostKey).(bool)

	if !isHost {
		respondError(c, scheduler.ErrNotHost)
		return
	}

	var req dto.ConfirmMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := scheduler.ValidateRange(req.StartTime.UTC(), req.EndTime.UTC()); err != nil {
		respondError(c, err)
		return
	}

	room, err := h.db.ConfirmRoom(c.Request.Context(), roomID, req.StartTime.UTC(), req.EndTime.UTC())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room":  formatRoomResponse(room),
		"state": scheduler.StateOf(room),
	})
}

// CancelMeeting удаляет комнату вместе с участниками и диапазонами
func (h *MeetingHandler) CancelMeeting(c *gin.Context) {
	roomID := c.MustGet(middleware.RoomIDKey).(uuid.UUID)
	isHost := c.MustGet(middleware.IsHostKey).(bool)

	if !isHost {
		respondError(c, scheduler.ErrNotHost)
		return
	}

	if err := h.db.DeleteRoom(c.Request.Context(), roomID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// formatRoomResponse форматирует ответ для комнаты
func formatRoomResponse(room *models.Room) gin.H {
	response := gin.H{
		"id":              room.ID,
		"title":           room.Title,
		"available_start": room.AvailableStartUTC,
		"available_end":   room.AvailableEndUTC,
		"time_zone":       room.TimeZone,
		"max_attendees":   room.MaxAttendees,
		"created_at":      room.CreatedAt,
	}

	if room.ActualStartUTC != nil && room.ActualEndUTC != nil {
		response["actual_start"] = room.ActualStartUTC
		response["actual_end"] = room.ActualEndUTC
	}

	return response
}

func formatAttendeeResponse(attendee *models.Attendee) gin.H {
	return gin.H{
		"id":         attendee.ID,
		"name":       attendee.Name,
		"is_host":    attendee.IsHost,
		"created_at": attendee.CreatedAt,
	}
}

func formatRangeResponse(tr *models.TimeRange) gin.H {
	return gin.H{
		"id":          tr.ID,
		"attendee_id": tr.AttendeeID,
		"start":       tr.StartUTC,
		"end":         tr.EndUTC,
		"mode":        tr.Mode,
	}
}
