package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mkravets/meetsync/internal/database"
	"github.com/mkravets/meetsync/internal/handlers"
	"github.com/mkravets/meetsync/internal/handlers/dto"
	"github.com/mkravets/meetsync/internal/models"
	"github.com/mkravets/meetsync/internal/server"
	"github.com/mkravets/meetsync/pkg/auth"
)

type testEnv struct {
	router *gin.Engine
	db     *database.Database
	jwtMgr *auth.JWTManager
	redis  *redis.Client
	mini   *miniredis.Miniredis
}

// newTestEnv собирает полный роутер на in-memory sqlite и miniredis
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(&models.Room{}, &models.Attendee{}, &models.TimeRange{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	db := database.NewDatabase(gdb)
	jwtMgr := auth.NewJWTManager("test-secret", time.Hour)

	router := gin.New()
	server.APIEndpoints(
		router,
		handlers.NewRoomHandler(db, jwtMgr),
		handlers.NewMeetingHandler(db),
		handlers.NewSessionHandler(jwtMgr, rdb),
		jwtMgr,
		rdb,
	)

	return &testEnv{router: router, db: db, jwtMgr: jwtMgr, redis: rdb, mini: mr}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// createRoom создаёт комнату с хостом и возвращает сессию хоста
func (e *testEnv) createRoom(t *testing.T, passcode string) dto.SessionResponse {
	t.Helper()

	w := e.do(t, http.MethodPost, "/rooms", "", dto.CreateRoomRequest{
		Title:        "sprint planning",
		HostName:     "host",
		StartTime:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC),
		TimeZone:     "UTC",
		MaxAttendees: 3,
		Passcode:     passcode,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create room: status %d, body %s", w.Code, w.Body.String())
	}

	var resp dto.SessionResponse
	decode(t, w, &resp)
	return resp
}

// joinRoom присоединяет участника по коду и возвращает его сессию
func (e *testEnv) joinRoom(t *testing.T, secret, name, passcode string) dto.SessionResponse {
	t.Helper()

	w := e.do(t, http.MethodPost, "/rooms/join", "", dto.JoinRoomRequest{
		Secret:   secret,
		Name:     name,
		Passcode: passcode,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("join room: status %d, body %s", w.Code, w.Body.String())
	}

	var resp dto.SessionResponse
	decode(t, w, &resp)
	return resp
}
