package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/mkravets/meetsync/pkg/auth"
)

const (
	AttendeeIDKey = "attendeeID"
	RoomIDKey     = "roomID"
	IsHostKey     = "isHost"
)

// AuthMiddleware проверяет JWT сессии и кладёт в контекст attendeeID,
// roomID и признак хоста. Признак хоста дальше нигде не перевычисляется.
func AuthMiddleware(jwtManager *auth.JWTManager, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			c.Abort()
			return
		}

		// Проверяем, не в черном списке ли токен. Недоступный Redis —
		// повторяемый сбой, а не отказ в доступе
		exists, err := redisClient.Exists(context.Background(), "blacklist:"+token).Result()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session store unavailable", "retryable": true})
			c.Abort()
			return
		}
		if exists > 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is blacklisted"})
			c.Abort()
			return
		}

		claims, err := jwtManager.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		attendeeID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid attendee id"})
			c.Abort()
			return
		}

		roomID, err := uuid.Parse(claims.RoomID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid room id"})
			c.Abort()
			return
		}

		c.Set(AttendeeIDKey, attendeeID)
		c.Set(RoomIDKey, roomID)
		c.Set(IsHostKey, claims.IsHost)
		c.Next()
	}
}
