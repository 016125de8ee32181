package services

import (
	"context"
	"errors"

	"github.com/forestgump22/tutorgo-frontend/internal/api"
	"github.com/forestgump22/tutorgo-frontend/internal/models"
)

type SessionService struct {
	client *api.Client
}

func NewSessionService(client *api.Client) *SessionService {
	return &SessionService{client: client}
}

// MisTutorias lists the sessions the caller booked as a student.
func (s *SessionService) MisTutorias(ctx context.Context, token string) ([]models.Sesion, error) {
	return s.list(ctx, token, "/sesiones/mis-solicitudes", "Error al obtener tus tutorías.")
}

// MisClases lists the sessions the caller teaches as a tutor.
func (s *SessionService) MisClases(ctx context.Context, token string) ([]models.Sesion, error) {
	return s.list(ctx, token, "/sesiones/mis-clases", "Error al obtener tus clases programadas.")
}

func (s *SessionService) list(ctx context.Context, token, path, fallback string) ([]models.Sesion, error) {
	sesiones := make([]models.Sesion, 0)
	if err := s.client.Get(ctx, token, path, &sesiones); err != nil {
		if errors.Is(err, api.ErrNoContent) {
			return sesiones, nil
		}
		return nil, upstreamErr(err, fallback)
	}
	return sesiones, nil
}
