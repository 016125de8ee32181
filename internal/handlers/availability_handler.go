package handlers

import (
	"context"

	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type scheduleManager interface {
	ListMine(ctx context.Context, token string) ([]models.Disponibilidad, error)
	Add(ctx context.Context, token string, req models.DisponibilidadRequest) error
	Delete(ctx context.Context, token string, id int64, confirm bool) error
}

type AvailabilityHandler struct {
	service scheduleManager
}

func NewAvailabilityHandler(service scheduleManager) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

func (h *AvailabilityHandler) MySchedulePage(c *fiber.Ctx) error {
	blocks, err := h.service.ListMine(c.Context(), tokenFrom(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"page":             "mi-disponibilidad",
		"disponibilidades": blocks,
	})
}

func (h *AvailabilityHandler) Add(c *fiber.Ctx) error {
	var req models.DisponibilidadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Solicitud inválida"})
	}

	if err := h.service.Add(c.Context(), tokenFrom(c), req); err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Disponibilidad añadida exitosamente."})
}

func (h *AvailabilityHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Identificador inválido"})
	}

	if err := h.service.Delete(c.Context(), tokenFrom(c), id, c.QueryBool("confirm")); err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Disponibilidad eliminada."})
}
