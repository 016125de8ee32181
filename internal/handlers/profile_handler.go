package handlers

import (
	"context"

	"github.com/forestgump22/tutorgo-frontend/internal/middleware"
	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type profileApplicationService interface {
	GetMe(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, session *models.AuthSession, req models.UpdateProfileRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, token string, req models.UpdatePasswordRequest) (string, error)
	DeleteAccount(ctx context.Context, session *models.AuthSession, confirm bool) (string, error)
}

type bioUpdater interface {
	UpdateBio(ctx context.Context, token, bio string) error
}

type ProfileHandler struct {
	service profileApplicationService
	tutors  bioUpdater
}

func NewProfileHandler(service profileApplicationService, tutors bioUpdater) *ProfileHandler {
	return &ProfileHandler{service: service, tutors: tutors}
}

// ProfilePage always refetches; the cached session snapshot can lag behind
// profile edits made elsewhere.
func (h *ProfileHandler) ProfilePage(c *fiber.Ctx) error {
	user, err := h.service.GetMe(c.Context(), tokenFrom(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"page": "perfil",
		"user": user,
	})
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Solicitud inválida"})
	}

	user, err := h.service.UpdateProfile(c.Context(), sessionFrom(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"user":    user,
		"message": "Perfil actualizado exitosamente.",
	})
}

type updateBioRequest struct {
	Bio string `json:"bio" validate:"required"`
}

func (h *ProfileHandler) UpdateBio(c *fiber.Ctx) error {
	var req updateBioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Solicitud inválida"})
	}

	if err := h.tutors.UpdateBio(c.Context(), tokenFrom(c), req.Bio); err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Biografía actualizada exitosamente."})
}

func (h *ProfileHandler) ChangePasswordPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "cambiar-contrasena"})
}

func (h *ProfileHandler) UpdatePassword(c *fiber.Ctx) error {
	var req models.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Solicitud inválida"})
	}

	message, err := h.service.UpdatePassword(c.Context(), tokenFrom(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": message})
}

func (h *ProfileHandler) DeleteAccountPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page":    "eliminar-cuenta",
		"warning": "Esta acción es permanente y no se puede deshacer.",
	})
}

type deleteAccountRequest struct {
	Confirm bool `json:"confirm"`
}

func (h *ProfileHandler) DeleteAccount(c *fiber.Ctx) error {
	var req deleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Solicitud inválida"})
	}

	message, err := h.service.DeleteAccount(c.Context(), sessionFrom(c), req.Confirm)
	if err != nil {
		return mapServiceError(c, err)
	}

	c.Cookie(&fiber.Cookie{Name: middleware.CookieName, Value: "", MaxAge: -1, Path: "/", HTTPOnly: true})
	return c.JSON(fiber.Map{
		"message":  message,
		"redirect": "/login",
	})
}
