package services

import (
	"context"
	"errors"

	"github.com/forestgump22/tutorgo-frontend/internal/api"
	"github.com/forestgump22/tutorgo-frontend/internal/models"
)

type NotificationService struct {
	client *api.Client
}

func NewNotificationService(client *api.Client) *NotificationService {
	return &NotificationService{client: client}
}

func (s *NotificationService) List(ctx context.Context, token string) ([]models.Notificacion, error) {
	notificaciones := make([]models.Notificacion, 0)
	if err := s.client.Get(ctx, token, "/notificaciones/mis-notificaciones", &notificaciones); err != nil {
		if errors.Is(err, api.ErrNoContent) {
			return notificaciones, nil
		}
		return nil, upstreamErr(err, "No se pudieron cargar tus notificaciones.")
	}
	return notificaciones, nil
}
