package handlers

import (
	"context"

	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type notificationReader interface {
	List(ctx context.Context, token string) ([]models.Notificacion, error)
}

type NotificationHandler struct {
	service notificationReader
}

func NewNotificationHandler(service notificationReader) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) Page(c *fiber.Ctx) error {
	notificaciones, err := h.service.List(c.Context(), tokenFrom(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"page":           "mis-notificaciones",
		"notificaciones": notificaciones,
	})
}
