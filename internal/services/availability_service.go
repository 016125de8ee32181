package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/forestgump22/tutorgo-frontend/internal/api"
	"github.com/forestgump22/tutorgo-frontend/internal/models"
)

type AvailabilityService struct {
	client *api.Client
}

func NewAvailabilityService(client *api.Client) *AvailabilityService {
	return &AvailabilityService{client: client}
}

// ListMine returns the tutor's own blocks sorted by start time. A 204 from
// the backend means the tutor has none.
func (s *AvailabilityService) ListMine(ctx context.Context, token string) ([]models.Disponibilidad, error) {
	blocks := make([]models.Disponibilidad, 0)
	if err := s.client.Get(ctx, token, "/tutores/me/disponibilidades", &blocks); err != nil {
		if errors.Is(err, api.ErrNoContent) {
			return blocks, nil
		}
		return nil, upstreamErr(err, "Error al obtener mis disponibilidades.")
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].HoraInicial < blocks[j].HoraInicial
	})
	return blocks, nil
}

func (s *AvailabilityService) ListForTutor(ctx context.Context, token string, tutorID int64) ([]models.Disponibilidad, error) {
	if tutorID <= 0 {
		return nil, ErrInvalidInput
	}

	blocks := make([]models.Disponibilidad, 0)
	path := fmt.Sprintf("/tutores/%d/disponibilidades", tutorID)
	if err := s.client.Get(ctx, token, path, &blocks); err != nil {
		if errors.Is(err, api.ErrNoContent) {
			return blocks, nil
		}
		return nil, upstreamErr(err, "No se pudo cargar la disponibilidad del tutor.")
	}
	return blocks, nil
}

// Add validates the window locally before anything leaves the process: an
// end that does not come after the start is rejected with no request sent.
// Overlap constraints stay with the backend and its message is surfaced.
func (s *AvailabilityService) Add(ctx context.Context, token string, req models.DisponibilidadRequest) error {
	if _, err := time.Parse("2006-01-02", req.Fecha); err != nil {
		return validationErr("La fecha no es válida.")
	}

	inicio, err := parseHora(req.HoraInicio)
	if err != nil {
		return validationErr("La hora de inicio no es válida.")
	}
	final, err := parseHora(req.HoraFinal)
	if err != nil {
		return validationErr("La hora de finalización no es válida.")
	}
	if !final.After(inicio) {
		return validationErr("La hora de finalización debe ser posterior a la hora de inicio.")
	}

	req.HoraInicio = inicio.Format("15:04:05")
	req.HoraFinal = final.Format("15:04:05")
	if err := s.client.Post(ctx, token, "/tutores/me/disponibilidades", req, nil); err != nil {
		return upstreamErr(err, "No se pudo añadir la disponibilidad. Revisa si el horario se solapa con uno existente.")
	}
	return nil
}

// Delete forwards the removal once the caller confirmed it. A backend
// rejection (block already has booked sessions) is surfaced verbatim.
func (s *AvailabilityService) Delete(ctx context.Context, token string, id int64, confirm bool) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	if !confirm {
		return ErrConfirmationRequired
	}
	if err := s.client.Delete(ctx, token, fmt.Sprintf("/tutores/me/disponibilidades/%d", id), nil); err != nil {
		return upstreamErr(err, "No se pudo eliminar la disponibilidad. Es posible que ya tenga sesiones reservadas.")
	}
	return nil
}

// parseHora accepts "HH:mm" form inputs as well as "HH:mm:ss".
func parseHora(value string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", value); err == nil {
		return t, nil
	}
	return time.Parse("15:04", value)
}
