package handlers

import (
	"errors"
	"strconv"

	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/forestgump22/tutorgo-frontend/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func sessionFrom(c *fiber.Ctx) *models.AuthSession {
	session, _ := c.Locals("session").(*models.AuthSession)
	return session
}

func userFrom(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}

// tokenFrom returns the upstream bearer token of the current session, or
// "" for anonymous requests.
func tokenFrom(c *fiber.Ctx) string {
	if session := sessionFrom(c); session != nil {
		return session.Token
	}
	return ""
}

func chatOwnerFrom(c *fiber.Ctx) string {
	owner, _ := c.Locals("chat_owner").(string)
	return owner
}

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// mapServiceError is the shared tail of every handler's error switch:
// validation problems and the generic sentinels that do not need a
// handler-specific message.
func mapServiceError(c *fiber.Ctx, err error) error {
	var vErr *services.ValidationError
	var uErr *services.UpstreamError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErr.Message})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Solicitud inválida"})
	case errors.Is(err, services.ErrConfirmationRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Esta acción requiere confirmación explícita."})
	case errors.Is(err, services.ErrNoSession):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No autenticado"})
	case errors.As(err, &uErr):
		return c.Status(uErr.HTTPStatus()).JSON(fiber.Map{"error": uErr.Message})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo procesar la solicitud."})
	}
}
