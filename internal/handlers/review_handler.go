package handlers

import (
	"context"
	"errors"

	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/forestgump22/tutorgo-frontend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type reviewCreator interface {
	Create(ctx context.Context, token string, sesionID int64, req models.ResenaRequest) (*models.Resena, error)
}

type ReviewHandler struct {
	service reviewCreator
}

func NewReviewHandler(service reviewCreator) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	sesionID, err := parseIDParam(c, "sesionId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Identificador de sesión inválido"})
	}

	var req models.ResenaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Solicitud inválida"})
	}

	resena, err := h.service.Create(c.Context(), tokenFrom(c), sesionID, req)
	if err != nil {
		return mapReviewError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"resena":  resena,
		"message": "¡Gracias por tu reseña!",
	})
}

func mapReviewError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrAlreadyReviewed):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Ya has calificado esta sesión."})
	case errors.Is(err, services.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "La sesión no existe o no te pertenece."})
	default:
		return mapServiceError(c, err)
	}
}
