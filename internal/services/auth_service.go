package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/forestgump22/tutorgo-frontend/internal/api"
	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/forestgump22/tutorgo-frontend/pkg/utils"
	"github.com/jackc/pgx/v5"
)

// SessionTTL is the credential cookie lifetime.
const SessionTTL = 24 * time.Hour

type sessionStore interface {
	Create(ctx context.Context, id, token string, user *models.User, ttl time.Duration) (*models.AuthSession, error)
	GetByID(ctx context.Context, id string) (*models.AuthSession, error)
	UpdateUser(ctx context.Context, id string, user *models.User) error
	Delete(ctx context.Context, id string) error
}

type AuthService struct {
	client   *api.Client
	sessions sessionStore
}

func NewAuthService(client *api.Client, sessions sessionStore) *AuthService {
	return &AuthService{client: client, sessions: sessions}
}

// Login exchanges credentials for an upstream bearer token and mints the
// local session the credential cookie points at.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.AuthSession, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, validationErr("El correo y la contraseña son obligatorios.")
	}

	var auth models.AuthResponse
	err := s.client.Post(ctx, "", "/auth/login", models.LoginRequest{Email: email, Password: password}, &auth)
	if err != nil {
		return nil, upstreamErr(err, "Error al iniciar sesión")
	}
	if auth.AccessToken == "" {
		return nil, upstreamErr(errors.New("login response without token"), "Error al iniciar sesión")
	}

	user := auth.User
	return s.sessions.Create(ctx, utils.NewSessionID(), auth.AccessToken, &user, SessionTTL)
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// Hydrate resolves a credential cookie into the live session. Expired or
// unknown sessions count as absent. A session persisted without a user
// snapshot is rebuilt from the bearer token's claims.
func (s *AuthService) Hydrate(ctx context.Context, sessionID string) (*models.AuthSession, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	if session.Expired(time.Now()) {
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, ErrNoSession
	}

	if session.User == nil {
		user, err := utils.UserFromToken(session.Token)
		if err != nil {
			_ = s.sessions.Delete(ctx, sessionID)
			return nil, ErrNoSession
		}
		session.User = user
		if err := s.sessions.UpdateUser(ctx, sessionID, user); err != nil {
			return nil, err
		}
	}

	return session, nil
}

// Register forwards a signup after role-specific client-side validation.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, string, error) {
	if strings.TrimSpace(req.Nombre) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Password) == "" {
		return nil, "", validationErr("Por favor, completa todos los campos obligatorios.")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return nil, "", validationErr("El correo electrónico no es válido.")
	}
	switch req.Rol {
	case models.RoleTutor:
		if req.TarifaHora == nil || *req.TarifaHora <= 0 || strings.TrimSpace(req.Rubro) == "" {
			return nil, "", validationErr("Para tutores, la tarifa por hora y el rubro son obligatorios.")
		}
	case models.RoleStudent:
		if req.CentroEstudioID == nil || *req.CentroEstudioID <= 0 {
			return nil, "", validationErr("Por favor, selecciona tu centro de estudio.")
		}
	default:
		return nil, "", validationErr("El rol seleccionado no es válido.")
	}

	var user models.User
	message, err := s.client.PostEnvelope(ctx, "", "/auth/register", req, &user)
	if err != nil {
		return nil, "", upstreamErr(err, "Error desconocido en el registro.")
	}
	return &user, message, nil
}

func (s *AuthService) GetMe(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := s.client.Get(ctx, token, "/users/me/profile-details", &user); err != nil {
		return nil, upstreamErr(err, "Error al obtener datos del usuario.")
	}
	return &user, nil
}

// UpdateProfile forwards the change and refreshes the cached user snapshot.
func (s *AuthService) UpdateProfile(
	ctx context.Context,
	session *models.AuthSession,
	req models.UpdateProfileRequest,
) (*models.User, error) {
	if strings.TrimSpace(req.Nombre) == "" {
		return nil, validationErr("El nombre no puede estar vacío.")
	}

	var user models.User
	if _, err := s.client.PutEnvelope(ctx, session.Token, "/users/me/profile", req, &user); err != nil {
		return nil, upstreamErr(err, "Error desconocido al actualizar el perfil.")
	}
	if err := s.sessions.UpdateUser(ctx, session.ID, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) UpdatePassword(ctx context.Context, token string, req models.UpdatePasswordRequest) (string, error) {
	if req.NewPassword != req.ConfirmNewPassword {
		return "", validationErr("La nueva contraseña y su confirmación no coinciden.")
	}
	if len(req.NewPassword) < 8 {
		return "", validationErr("La nueva contraseña debe tener al menos 8 caracteres.")
	}

	message, err := s.client.PutEnvelope(ctx, token, "/users/me/password", req, nil)
	if err != nil {
		return "", upstreamErr(err, "Error desconocido al actualizar la contraseña.")
	}
	return message, nil
}

// DeleteAccount is destructive: callers must pass an explicit confirmation.
func (s *AuthService) DeleteAccount(ctx context.Context, session *models.AuthSession, confirm bool) (string, error) {
	if !confirm {
		return "", ErrConfirmationRequired
	}

	message, err := s.client.DeleteEnvelope(ctx, session.Token, "/users/me", nil)
	if err != nil {
		return "", upstreamErr(err, "Error desconocido al eliminar el perfil.")
	}
	_ = s.sessions.Delete(ctx, session.ID)
	return message, nil
}

func (s *AuthService) StudyCenters(ctx context.Context) ([]models.CentroEstudio, error) {
	centros := make([]models.CentroEstudio, 0)
	if err := s.client.Get(ctx, "", "/centros-estudio", &centros); err != nil {
		if errors.Is(err, api.ErrNoContent) {
			return centros, nil
		}
		return nil, upstreamErr(err, "No se pudieron cargar los centros de estudio.")
	}
	return centros, nil
}
