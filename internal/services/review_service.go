package services

import (
	"context"
	"fmt"

	"github.com/forestgump22/tutorgo-frontend/internal/api"
	"github.com/forestgump22/tutorgo-frontend/internal/models"
)

type tutoriaLister interface {
	MisTutorias(ctx context.Context, token string) ([]models.Sesion, error)
}

type ReviewService struct {
	client   *api.Client
	sesiones tutoriaLister
}

func NewReviewService(client *api.Client, sesiones tutoriaLister) *ReviewService {
	return &ReviewService{client: client, sesiones: sesiones}
}

// Create submits a review for a past session. Reviewing is terminal and
// idempotent per session: a session already marked fueCalificada is
// rejected here, before any request is issued.
func (s *ReviewService) Create(
	ctx context.Context,
	token string,
	sesionID int64,
	req models.ResenaRequest,
) (*models.Resena, error) {
	if sesionID <= 0 {
		return nil, ErrInvalidInput
	}
	if req.Calificacion == 0 {
		return nil, validationErr("Por favor, selecciona una calificación.")
	}
	if req.Calificacion < 1 || req.Calificacion > 5 {
		return nil, validationErr("La calificación debe estar entre 1 y 5.")
	}

	sesion, err := s.find(ctx, token, sesionID)
	if err != nil {
		return nil, err
	}
	if sesion.FueCalificada {
		return nil, ErrAlreadyReviewed
	}

	var resena models.Resena
	path := fmt.Sprintf("/resenas/sesion/%d", sesionID)
	if err := s.client.Post(ctx, token, path, req, &resena); err != nil {
		return nil, upstreamErr(err, "No se pudo enviar la reseña.")
	}
	return &resena, nil
}

func (s *ReviewService) find(ctx context.Context, token string, sesionID int64) (*models.Sesion, error) {
	tutorias, err := s.sesiones.MisTutorias(ctx, token)
	if err != nil {
		return nil, err
	}
	for i := range tutorias {
		if tutorias[i].ID == sesionID {
			return &tutorias[i], nil
		}
	}
	return nil, ErrSessionNotFound
}
