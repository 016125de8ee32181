package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/forestgump22/tutorgo-frontend/internal/api"
	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/jackc/pgx/v5"
)

type memorySessions struct {
	sessions map[string]*models.AuthSession
	deleted  []string
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: make(map[string]*models.AuthSession)}
}

func (m *memorySessions) Create(_ context.Context, id, token string, user *models.User, ttl time.Duration) (*models.AuthSession, error) {
	session := &models.AuthSession{
		ID:        id,
		Token:     token,
		User:      user,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}
	m.sessions[id] = session
	return session, nil
}

func (m *memorySessions) GetByID(_ context.Context, id string) (*models.AuthSession, error) {
	session, ok := m.sessions[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *session
	return &copied, nil
}

func (m *memorySessions) UpdateUser(_ context.Context, id string, user *models.User) error {
	session, ok := m.sessions[id]
	if !ok {
		return pgx.ErrNoRows
	}
	session.User = user
	return nil
}

func (m *memorySessions) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func TestLoginMintsLocalSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Email != "ana@example.com" {
			t.Errorf("unexpected email %q", req.Email)
		}
		_, _ = w.Write([]byte(`{"accessToken":"jwt-abc","user":{"id":1,"nombre":"Ana","email":"ana@example.com","rol":"ESTUDIANTE"}}`))
	}))
	defer srv.Close()

	store := newMemorySessions()
	service := NewAuthService(api.NewClient(srv.URL), store)

	session, err := service.Login(context.Background(), "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.Token != "jwt-abc" {
		t.Fatalf("expected upstream token stored, got %q", session.Token)
	}
	if session.User == nil || session.User.Rol != models.RoleStudent {
		t.Fatalf("expected user snapshot, got %+v", session.User)
	}
	if len(store.sessions) != 1 {
		t.Fatalf("expected one persisted session")
	}
	if remaining := time.Until(session.ExpiresAt); remaining > SessionTTL || remaining < SessionTTL-time.Minute {
		t.Fatalf("expected ~24h expiry, got %v", remaining)
	}
}

func TestLoginSurfacesBadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"Credenciales inválidas"}`))
	}))
	defer srv.Close()

	service := NewAuthService(api.NewClient(srv.URL), newMemorySessions())
	_, err := service.Login(context.Background(), "ana@example.com", "wrong")

	var uErr *UpstreamError
	if !errors.As(err, &uErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if uErr.Message != "Credenciales inválidas" {
		t.Fatalf("unexpected message %q", uErr.Message)
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	service := NewAuthService(api.NewClient("http://unused"), newMemorySessions())

	_, err := service.Login(context.Background(), " ", "")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHydrateExpiredSessionIsAbsent(t *testing.T) {
	store := newMemorySessions()
	store.sessions["sid"] = &models.AuthSession{
		ID:        "sid",
		Token:     "jwt",
		User:      &models.User{ID: 1},
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	service := NewAuthService(api.NewClient("http://unused"), store)

	_, err := service.Hydrate(context.Background(), "sid")
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if _, ok := store.sessions["sid"]; ok {
		t.Fatalf("expired sessions must be deleted on hydration")
	}
}

func TestHydrateUnknownSessionIsAbsent(t *testing.T) {
	service := NewAuthService(api.NewClient("http://unused"), newMemorySessions())

	_, err := service.Hydrate(context.Background(), "missing")
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestRegisterTutorRequiresRateAndField(t *testing.T) {
	service := NewAuthService(api.NewClient("http://unused"), newMemorySessions())

	_, _, err := service.Register(context.Background(), models.RegisterRequest{
		Nombre:   "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Rol:      models.RoleTutor,
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Message != "Para tutores, la tarifa por hora y el rubro son obligatorios." {
		t.Fatalf("unexpected message %q", vErr.Message)
	}
}

func TestRegisterStudentRequiresStudyCenter(t *testing.T) {
	service := NewAuthService(api.NewClient("http://unused"), newMemorySessions())

	_, _, err := service.Register(context.Background(), models.RegisterRequest{
		Nombre:   "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Rol:      models.RoleStudent,
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdatePasswordChecksMatchAndLength(t *testing.T) {
	service := NewAuthService(api.NewClient("http://unused"), newMemorySessions())

	_, err := service.UpdatePassword(context.Background(), "tkn", models.UpdatePasswordRequest{
		CurrentPassword:    "old",
		NewPassword:        "abcdefgh",
		ConfirmNewPassword: "different",
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected mismatch rejection, got %v", err)
	}

	_, err = service.UpdatePassword(context.Background(), "tkn", models.UpdatePasswordRequest{
		CurrentPassword:    "old",
		NewPassword:        "short",
		ConfirmNewPassword: "short",
	})
	if !errors.As(err, &vErr) {
		t.Fatalf("expected length rejection, got %v", err)
	}
}

func TestDeleteAccountRequiresConfirmationThenDropsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"message":"Cuenta eliminada"}`))
	}))
	defer srv.Close()

	store := newMemorySessions()
	session, _ := store.Create(context.Background(), "sid", "jwt", &models.User{ID: 1}, SessionTTL)
	service := NewAuthService(api.NewClient(srv.URL), store)

	if _, err := service.DeleteAccount(context.Background(), session, false); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}

	message, err := service.DeleteAccount(context.Background(), session, true)
	if err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}
	if message != "Cuenta eliminada" {
		t.Fatalf("unexpected message %q", message)
	}
	if _, ok := store.sessions["sid"]; ok {
		t.Fatalf("local session must be dropped with the account")
	}
}
