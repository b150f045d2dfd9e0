package database

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mkravets/meetsync/internal/models"
)

// newTestDB поднимает in-memory sqlite с той же схемой, что и прод.
// Одно соединение, чтобы гонки сериализовались так же, как в postgres.
func newTestDB(t *testing.T) *Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Room{}, &models.Attendee{}, &models.TimeRange{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return NewDatabase(db)
}

func seedRoom(t *testing.T, d *Database) *models.Room {
	t.Helper()

	room := &models.Room{
		Title:             "planning",
		Secret:            uuid.NewString(),
		AvailableStartUTC: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		AvailableEndUTC:   time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC),
		TimeZone:          "UTC",
		MaxAttendees:      5,
		CreatedAt:         time.Now().UTC(),
	}
	if err := d.CreateRoom(context.Background(), room); err != nil {
		t.Fatalf("seed room: %v", err)
	}
	return room
}

func seedAttendee(t *testing.T, d *Database, roomID uuid.UUID, name string, isHost bool) *models.Attendee {
	t.Helper()

	attendee := &models.Attendee{
		RoomID:    roomID,
		Name:      name,
		IsHost:    isHost,
		CreatedAt: time.Now().UTC(),
	}
	if err := d.CreateAttendee(context.Background(), attendee); err != nil {
		t.Fatalf("seed attendee: %v", err)
	}
	return attendee
}
