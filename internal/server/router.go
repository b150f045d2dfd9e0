package server

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/mkravets/meetsync/internal/handlers"
	"github.com/mkravets/meetsync/internal/middleware"
	"github.com/mkravets/meetsync/pkg/auth"
)

func APIEndpoints(
	r *gin.Engine,
	roomH *handlers.RoomHandler,
	meetingH *handlers.MeetingHandler,
	sessionH *handlers.SessionHandler,
	jwtMgr *auth.JWTManager,
	rdb *redis.Client,
) {
	// Вход: создание комнаты и присоединение по коду
	rooms := r.Group("/rooms")
	{
		rooms.POST("", roomH.CreateRoom)
		rooms.POST("/join", roomH.JoinRoom)
	}

	// API под токеном сессии
	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtMgr, rdb))
	{
		api.GET("/room", meetingH.GetRoomState)
		api.POST("/room/availability", meetingH.SubmitAvailability)
		api.POST("/room/confirm", meetingH.ConfirmMeeting)
		api.DELETE("/room", meetingH.CancelMeeting)

		api.POST("/session/logout", sessionH.Logout)
		api.GET("/session/first-visit", sessionH.FirstVisit)
	}
}
