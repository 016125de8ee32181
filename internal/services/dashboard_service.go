package services

import (
	"context"

	"github.com/forestgump22/tutorgo-frontend/internal/api"
	"github.com/forestgump22/tutorgo-frontend/internal/models"
)

type DashboardService struct {
	client *api.Client
}

func NewDashboardService(client *api.Client) *DashboardService {
	return &DashboardService{client: client}
}

func (s *DashboardService) Stats(ctx context.Context, token string) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := s.client.Get(ctx, token, "/dashboard/stats", &stats); err != nil {
		return nil, upstreamErr(err, "No se pudieron cargar los datos del dashboard.")
	}
	return &stats, nil
}
