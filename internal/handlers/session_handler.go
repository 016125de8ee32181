package handlers

import (
	"context"
	"errors"

	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/forestgump22/tutorgo-frontend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type sessionLister interface {
	MisTutorias(ctx context.Context, token string) ([]models.Sesion, error)
	MisClases(ctx context.Context, token string) ([]models.Sesion, error)
}

type linkManager interface {
	AddEnlaces(ctx context.Context, token string, sesionID int64, enlaces []models.EnlaceRequest) ([]models.Enlace, error)
	DeleteEnlace(ctx context.Context, token string, sesionID, enlaceID int64) error
}

type SessionHandler struct {
	sessions sessionLister
	links    linkManager
}

func NewSessionHandler(sessions sessionLister, links linkManager) *SessionHandler {
	return &SessionHandler{sessions: sessions, links: links}
}

// MyTutoringsPage is the student's booked-sessions view; the ratable flag
// on each session drives the review prompt.
func (h *SessionHandler) MyTutoringsPage(c *fiber.Ctx) error {
	sesiones, err := h.sessions.MisTutorias(c.Context(), tokenFrom(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"page":     "mis-tutorias",
		"sesiones": sesiones,
	})
}

// MyClassesPage is the tutor's teaching schedule with material links.
func (h *SessionHandler) MyClassesPage(c *fiber.Ctx) error {
	sesiones, err := h.sessions.MisClases(c.Context(), tokenFrom(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"page":     "mis-clases",
		"sesiones": sesiones,
	})
}

type addEnlacesRequest struct {
	Enlaces []models.EnlaceRequest `json:"enlaces"`
}

func (h *SessionHandler) AddEnlaces(c *fiber.Ctx) error {
	sesionID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Identificador de sesión inválido"})
	}

	var req addEnlacesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Solicitud inválida"})
	}

	created, err := h.links.AddEnlaces(c.Context(), tokenFrom(c), sesionID, req.Enlaces)
	if err != nil {
		return mapLinkError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"enlaces": created})
}

func (h *SessionHandler) DeleteEnlace(c *fiber.Ctx) error {
	sesionID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Identificador de sesión inválido"})
	}
	enlaceID, err := parseIDParam(c, "enlaceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Identificador de enlace inválido"})
	}

	if err := h.links.DeleteEnlace(c.Context(), tokenFrom(c), sesionID, enlaceID); err != nil {
		return mapLinkError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Enlace eliminado."})
}

func mapLinkError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "La sesión no existe o no te pertenece."})
	case errors.Is(err, services.ErrTooManyLinks):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Has alcanzado el límite de enlaces para esta sesión.",
		})
	default:
		return mapServiceError(c, err)
	}
}
