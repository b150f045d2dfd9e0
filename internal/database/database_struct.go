package database

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"

	"gorm.io/gorm"

	"github.com/mkravets/meetsync/internal/scheduler"
)

type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

// translate отделяет повторяемые сбои хранилища от всего остального.
// Таймаут, отменённый контекст или отвалившееся соединение — повод для
// ретрая, ошибка валидации — нет.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", scheduler.ErrTransientStore, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", scheduler.ErrTransientStore, err)
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) {
		return fmt.Errorf("%w: %v", scheduler.ErrTransientStore, err)
	}

	return err
}
