package handlers_test

import (
	"net/http"
	"testing"
)

func TestFirstVisit_TrueExactlyOnce(t *testing.T) {
	env := newTestEnv(t)
	host := env.createRoom(t, "")

	var resp struct {
		FirstVisit bool `json:"first_visit"`
	}

	w := env.do(t, http.MethodGet, "/api/v1/session/first-visit", host.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("first call: status %d", w.Code)
	}
	decode(t, w, &resp)
	if !resp.FirstVisit {
		t.Error("first call must report first_visit = true")
	}

	w = env.do(t, http.MethodGet, "/api/v1/session/first-visit", host.Token, nil)
	decode(t, w, &resp)
	if resp.FirstVisit {
		t.Error("second call must report first_visit = false")
	}

	// Другая сессия того же участника комнаты — свой собственный флаг
	guest := env.joinRoom(t, host.Secret, "guest", "")
	w = env.do(t, http.MethodGet, "/api/v1/session/first-visit", guest.Token, nil)
	decode(t, w, &resp)
	if !resp.FirstVisit {
		t.Error("flag must be per session token, not per process")
	}
}

func TestLogout_BlacklistsToken(t *testing.T) {
	env := newTestEnv(t)
	host := env.createRoom(t, "")

	w := env.do(t, http.MethodPost, "/api/v1/session/logout", host.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logout: status %d", w.Code)
	}

	w = env.do(t, http.MethodGet, "/api/v1/room", host.Token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("blacklisted token still accepted: status %d", w.Code)
	}
}

func TestLogout_StoreDownIsNotSilentSuccess(t *testing.T) {
	env := newTestEnv(t)
	host := env.createRoom(t, "")

	// Redis недоступен: logout обязан сообщить об этом, а не вернуть 200
	// с так и не отозванным токеном
	env.mini.Close()

	w := env.do(t, http.MethodPost, "/api/v1/session/logout", host.Token, nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("logout with store down: status %d, want 503", w.Code)
	}
}

func TestAPIRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/room", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing token: status %d, want 401", w.Code)
	}

	w = env.do(t, http.MethodGet, "/api/v1/room", "not-a-jwt", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status %d, want 401", w.Code)
	}
}
