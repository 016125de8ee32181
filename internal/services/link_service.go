package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/forestgump22/tutorgo-frontend/internal/api"
	"github.com/forestgump22/tutorgo-frontend/internal/models"
)

type classLister interface {
	MisClases(ctx context.Context, token string) ([]models.Sesion, error)
}

// LinkService manages the shared-material links of a session, holding the
// five-per-session cap before anything reaches the backend.
type LinkService struct {
	client  *api.Client
	classes classLister
}

func NewLinkService(client *api.Client, classes classLister) *LinkService {
	return &LinkService{client: client, classes: classes}
}

func (s *LinkService) AddEnlaces(
	ctx context.Context,
	token string,
	sesionID int64,
	enlaces []models.EnlaceRequest,
) ([]models.Enlace, error) {
	if sesionID <= 0 || len(enlaces) == 0 {
		return nil, ErrInvalidInput
	}
	for _, enlace := range enlaces {
		if strings.TrimSpace(enlace.Nombre) == "" {
			return nil, validationErr("Cada enlace necesita un nombre.")
		}
		parsed, err := url.ParseRequestURI(strings.TrimSpace(enlace.Enlace))
		if err != nil || parsed.Host == "" {
			return nil, validationErr("La URL del enlace no es válida.")
		}
	}

	sesion, err := s.findClass(ctx, token, sesionID)
	if err != nil {
		return nil, err
	}
	if len(sesion.Enlaces)+len(enlaces) > models.MaxEnlacesPorSesion {
		return nil, ErrTooManyLinks
	}

	created := make([]models.Enlace, 0, len(enlaces))
	path := fmt.Sprintf("/sesiones/%d/enlaces", sesionID)
	if err := s.client.Post(ctx, token, path, enlaces, &created); err != nil {
		return nil, upstreamErr(err, "No se pudieron añadir los enlaces.")
	}
	return created, nil
}

func (s *LinkService) DeleteEnlace(ctx context.Context, token string, sesionID, enlaceID int64) error {
	if sesionID <= 0 || enlaceID <= 0 {
		return ErrInvalidInput
	}
	path := fmt.Sprintf("/sesiones/%d/enlaces/%d", sesionID, enlaceID)
	if err := s.client.Delete(ctx, token, path, nil); err != nil {
		return upstreamErr(err, "No se pudo eliminar el enlace.")
	}
	return nil
}

func (s *LinkService) findClass(ctx context.Context, token string, sesionID int64) (*models.Sesion, error) {
	clases, err := s.classes.MisClases(ctx, token)
	if err != nil {
		return nil, err
	}
	for i := range clases {
		if clases[i].ID == sesionID {
			return &clases[i], nil
		}
	}
	return nil, ErrSessionNotFound
}
