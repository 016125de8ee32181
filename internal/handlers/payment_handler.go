package handlers

import (
	"context"

	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type paymentReader interface {
	History(ctx context.Context, token, query, estado string) ([]models.Pago, error)
	Details(ctx context.Context, token string, pagoID int64) (*models.Pago, error)
}

type PaymentHandler struct {
	service paymentReader
}

func NewPaymentHandler(service paymentReader) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) HistoryPage(c *fiber.Ctx) error {
	pagos, err := h.service.History(c.Context(), tokenFrom(c), c.Query("query"), c.Query("estado"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"page":  "historial-pagos",
		"pagos": pagos,
	})
}

func (h *PaymentHandler) Details(c *fiber.Ctx) error {
	pagoID, err := parseIDParam(c, "pagoId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Identificador de pago inválido"})
	}

	pago, err := h.service.Details(c.Context(), tokenFrom(c), pagoID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"pago": pago})
}
