package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/forestgump22/tutorgo-frontend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type bookingApplicationService interface {
	Reserve(ctx context.Context, token string, req models.ReservaTutoriaRequest) (*models.Pago, error)
	CheckoutDetails(ctx context.Context, token string, pagoID int64) (*models.Pago, error)
	ConfirmPayment(ctx context.Context, token string, pagoID int64) (*models.Pago, error)
}

type BookingHandler struct {
	service      bookingApplicationService
	availability tutorScheduleReader
}

func NewBookingHandler(service bookingApplicationService, availability tutorScheduleReader) *BookingHandler {
	return &BookingHandler{service: service, availability: availability}
}

type reserveRequest struct {
	TutorID          int64  `json:"tutorId"`
	DisponibilidadID int64  `json:"disponibilidadId"`
	HoraInicio       string `json:"horaInicio"`
	DuracionHoras    int    `json:"duracionHoras"`
}

// Reserve builds the reservation from the chosen block and start time and
// opens the pending payment. The client is pointed at the checkout page
// for it.
func (h *BookingHandler) Reserve(c *fiber.Ctx) error {
	var req reserveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if req.TutorID <= 0 || req.DisponibilidadID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Solicitud inválida"})
	}

	blocks, err := h.availability.ListForTutor(c.Context(), tokenFrom(c), req.TutorID)
	if err != nil {
		return mapServiceError(c, err)
	}
	var block *models.Disponibilidad
	for i := range blocks {
		if blocks[i].ID == req.DisponibilidadID {
			block = &blocks[i]
			break
		}
	}
	if block == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "El bloque de disponibilidad ya no existe."})
	}

	reservation, err := services.BuildReservation(req.TutorID, *block, req.HoraInicio, req.DuracionHoras)
	if err != nil {
		return mapServiceError(c, err)
	}

	pago, err := h.service.Reserve(c.Context(), tokenFrom(c), reservation)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"pagoId":   pago.ID,
		"redirect": fmt.Sprintf("/checkout/%d", pago.ID),
	})
}

// CheckoutPage guards against stale checkouts: a payment no longer
// pending renders blocked, with its details still shown.
func (h *BookingHandler) CheckoutPage(c *fiber.Ctx) error {
	pagoID, err := parseIDParam(c, "pagoId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Identificador de pago inválido"})
	}

	pago, err := h.service.CheckoutDetails(c.Context(), tokenFrom(c), pagoID)
	if err != nil {
		if errors.Is(err, services.ErrPaymentNotPending) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"page":    "checkout",
				"pago":    pago,
				"blocked": true,
				"error":   "Este pago ya ha sido procesado o ha caducado.",
			})
		}
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"page":    "checkout",
		"pago":    pago,
		"blocked": false,
	})
}

func (h *BookingHandler) ConfirmPayment(c *fiber.Ctx) error {
	pagoID, err := parseIDParam(c, "pagoId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Identificador de pago inválido"})
	}

	pago, err := h.service.ConfirmPayment(c.Context(), tokenFrom(c), pagoID)
	if err != nil {
		if errors.Is(err, services.ErrPaymentNotPending) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Este pago ya ha sido procesado o ha caducado."})
		}
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"pago":     pago,
		"message":  "¡Pago completado! Tu tutoría ha sido agendada.",
		"redirect": "/mis-tutorias",
	})
}
