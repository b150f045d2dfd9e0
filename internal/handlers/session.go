package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/mkravets/meetsync/pkg/auth"
)

type SessionHandler struct {
	jwtManager *auth.JWTManager
	redis      *redis.Client
}

func NewSessionHandler(jwtMgr *auth.JWTManager, rdb *redis.Client) *SessionHandler {
	return &SessionHandler{jwtManager: jwtMgr, redis: rdb}
}

// Logout ставит токен в черный список в Redis до истечения
func (h *SessionHandler) Logout(c *gin.Context) {
	rawToken, err := auth.ExtractTokenFromHeader(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exp, err := h.jwtManager.Expiry(rawToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	ttl := time.Until(exp)
	if err := h.redis.Set(context.Background(), "blacklist:"+rawToken, 1, ttl).Err(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session store unavailable", "retryable": true})
		return
	}

	c.Status(http.StatusOK)
}

// FirstVisit отвечает true ровно один раз на токен сессии. Флаг живёт в
// Redis столько же, сколько сам токен, а не в состоянии процесса.
func (h *SessionHandler) FirstVisit(c *gin.Context) {
	rawToken, err := auth.ExtractTokenFromHeader(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exp, err := h.jwtManager.Expiry(rawToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	first, err := h.redis.SetNX(c.Request.Context(), "seen:"+rawToken, 1, time.Until(exp)).Result()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session store unavailable", "retryable": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"first_visit": first})
}
