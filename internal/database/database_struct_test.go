package database

import (
	"context"
	"errors"
	"net"
	"syscall"
	"testing"

	"github.com/mkravets/meetsync/internal/scheduler"
)

func TestTranslate_Classification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil", nil, false},
		{"deadline", context.DeadlineExceeded, true},
		{"canceled", context.Canceled, true},
		{"net timeout", &net.OpError{Op: "dial", Err: &timeoutError{}}, true},
		{"connection refused", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, true},
		{"connection reset", syscall.ECONNRESET, true},
		{"plain error", errors.New("duplicate key"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.err)
			if tt.err == nil {
				if got != nil {
					t.Fatalf("translate(nil) = %v", got)
				}
				return
			}
			if scheduler.IsRetryable(got) != tt.retryable {
				t.Errorf("translate(%v) retryable = %v, want %v", tt.err, !tt.retryable, tt.retryable)
			}
			if !tt.retryable && !errors.Is(got, tt.err) {
				t.Errorf("non-transient error must pass through unchanged, got %v", got)
			}
		})
	}
}

type timeoutError struct{}

func (*timeoutError) Error() string   { return "i/o timeout" }
func (*timeoutError) Timeout() bool   { return true }
func (*timeoutError) Temporary() bool { return true }
