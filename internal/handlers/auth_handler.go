package handlers

import (
	"context"

	"github.com/forestgump22/tutorgo-frontend/internal/middleware"
	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/forestgump22/tutorgo-frontend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type authApplicationService interface {
	Login(ctx context.Context, email, password string) (*models.AuthSession, error)
	Logout(ctx context.Context, sessionID string) error
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, string, error)
	StudyCenters(ctx context.Context) ([]models.CentroEstudio, error)
}

type AuthHandler struct {
	service      authApplicationService
	cookieSecure bool
}

func NewAuthHandler(service authApplicationService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{service: service, cookieSecure: cookieSecure}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginPage is the anonymous-only login surface; signed-in visitors never
// reach it (see RedirectIfAuthed).
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "login"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "El correo y la contraseña son obligatorios."})
	}

	session, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return mapServiceError(c, err)
	}

	h.setSessionCookie(c, session.ID)
	return c.JSON(fiber.Map{
		"user":     session.User,
		"redirect": "/dashboard",
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if session := sessionFrom(c); session != nil {
		_ = h.service.Logout(c.Context(), session.ID)
	}
	h.clearSessionCookie(c)
	return c.JSON(fiber.Map{"redirect": "/login"})
}

// RegisterPage ships the study-center catalog the signup form needs.
func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	centros, err := h.service.StudyCenters(c.Context())
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"page":           "register",
		"centrosEstudio": centros,
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Solicitud inválida"})
	}

	user, message, err := h.service.Register(c.Context(), req)
	if err != nil {
		return mapServiceError(c, err)
	}

	// Signup does not sign in: the user lands on the login page.
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":     user,
		"message":  message,
		"redirect": "/login",
	})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, sessionID string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(services.SessionTTL.Seconds()),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
