package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkravets/meetsync/internal/database"
	"github.com/mkravets/meetsync/internal/handlers/dto"
	"github.com/mkravets/meetsync/internal/models"
	"github.com/mkravets/meetsync/internal/scheduler"
	"github.com/mkravets/meetsync/pkg/auth"
)

type RoomHandler struct {
	db         *database.Database
	jwtManager *auth.JWTManager
}

func NewRoomHandler(db *database.Database, jwtMgr *auth.JWTManager) *RoomHandler {
	return &RoomHandler{db: db, jwtManager: jwtMgr}
}

// CreateRoom создает комнату и участника-хоста, возвращает код приглашения
// и токен сессии хоста
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := scheduler.ValidateRange(req.StartTime.UTC(), req.EndTime.UTC()); err != nil {
		respondError(c, err)
		return
	}

	maxAttendees := req.MaxAttendees
	if maxAttendees <= 0 {
		maxAttendees = 10
	}

	timeZone := req.TimeZone
	if timeZone == "" {
		timeZone = "UTC"
	}

	room := &models.Room{
		Title:             req.Title,
		Secret:            uuid.NewString(),
		AvailableStartUTC: req.StartTime.UTC(),
		AvailableEndUTC:   req.EndTime.UTC(),
		TimeZone:          timeZone,
		MaxAttendees:      maxAttendees,
		CreatedAt:         time.Now().UTC(),
	}

	// Пароль комнаты опционален
	if req.Passcode != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Passcode), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot hash passcode"})
			return
		}
		room.PasscodeHash = string(hash)
	}

	// Создатель комнаты — единственный хост; комната и хост появляются
	// в одной транзакции, либо не появляются вовсе
	host := &models.Attendee{
		Name:      req.HostName,
		IsHost:    true,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.db.CreateRoomWithHost(c.Request.Context(), room, host); err != nil {
		respondError(c, err)
		return
	}

	token, err := h.jwtManager.Generate(host.ID.String(), room.ID.String(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, dto.SessionResponse{
		Token:      token,
		RoomID:     room.ID.String(),
		AttendeeID: host.ID.String(),
		Secret:     room.Secret,
		IsHost:     true,
	})
}

// JoinRoom добавляет участника по коду приглашения
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	var req dto.JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.db.FindRoomBySecret(c.Request.Context(), req.Secret)
	if err != nil {
		respondError(c, err)
		return
	}

	if room.PasscodeHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(room.PasscodeHash), []byte(req.Passcode)); err != nil {
			respondError(c, scheduler.ErrUnauthorized)
			return
		}
	}

	// В подтверждённую комнату входить поздно
	if scheduler.StateOf(room) == scheduler.RoomConfirmed {
		respondError(c, scheduler.ErrAlreadyConfirmed)
		return
	}

	attendee := &models.Attendee{
		RoomID:    room.ID,
		Name:      req.Name,
		IsHost:    false,
		CreatedAt: time.Now().UTC(),
	}

	// Вместимость проверяется самой вставкой, а не отдельным count
	if err := h.db.AddAttendee(c.Request.Context(), attendee, room.MaxAttendees); err != nil {
		respondError(c, err)
		return
	}

	token, err := h.jwtManager.Generate(attendee.ID.String(), room.ID.String(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		Token:      token,
		RoomID:     room.ID.String(),
		AttendeeID: attendee.ID.String(),
		IsHost:     false,
	})
}
