package middleware

import (
	"context"
	"strings"

	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/forestgump22/tutorgo-frontend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// CookieName is the credential cookie; it carries the local session id,
// never the upstream bearer token.
const CookieName = "token"

// ChatCookieName identifies anonymous assistant transcripts.
const ChatCookieName = "chat-id"

type sessionResolver interface {
	Hydrate(ctx context.Context, sessionID string) (*models.AuthSession, error)
}

// Hydrate resolves the credential cookie into the live session and stashes
// it in Locals. It never blocks the request: public pages render for
// anonymous visitors, and the gates below decide what requires a session.
func Hydrate(auth sessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(CookieName)
		if sessionID == "" {
			return c.Next()
		}

		session, err := auth.Hydrate(c.Context(), sessionID)
		if err != nil {
			// A stale cookie is cleared rather than surfaced.
			c.Cookie(&fiber.Cookie{Name: CookieName, Value: "", MaxAge: -1, Path: "/", HTTPOnly: true})
			return c.Next()
		}

		c.Locals("session", session)
		c.Locals("user", session.User)
		return c.Next()
	}
}

// RequireAuth gates protected surfaces. Pages redirect to the login page
// the way an unauthenticated browser visit expects; API calls get a 401.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals("session").(*models.AuthSession); ok {
			return c.Next()
		}
		if isAPIPath(c.Path()) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No autenticado"})
		}
		return c.Redirect("/login", fiber.StatusFound)
	}
}

// RequireRole gates role-specific surfaces; a signed-in user of the wrong
// role lands back on the dashboard instead of an error page.
func RequireRole(rol string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok || user == nil {
			if isAPIPath(c.Path()) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No autenticado"})
			}
			return c.Redirect("/login", fiber.StatusFound)
		}
		if user.Rol != rol {
			if isAPIPath(c.Path()) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No autorizado"})
			}
			return c.Redirect("/dashboard", fiber.StatusFound)
		}
		return c.Next()
	}
}

// RedirectIfAuthed keeps signed-in users off the login and register pages.
func RedirectIfAuthed() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals("session").(*models.AuthSession); ok {
			return c.Redirect("/dashboard", fiber.StatusFound)
		}
		return c.Next()
	}
}

// ChatOwner assigns every visitor a stable transcript owner key: signed-in
// users share one transcript across devices, anonymous visitors get a
// cookie-scoped one.
func ChatOwner(secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("chat_owner", resolveChatOwner(c, secure))
		return c.Next()
	}
}

func resolveChatOwner(c *fiber.Ctx, secure bool) string {
	if session, ok := c.Locals("session").(*models.AuthSession); ok && session.User != nil {
		return utils.UserOwnerKey(session.User.ID)
	}

	chatID := c.Cookies(ChatCookieName)
	if chatID == "" {
		chatID = utils.NewSessionID()
		c.Cookie(&fiber.Cookie{
			Name:     ChatCookieName,
			Value:    chatID,
			Path:     "/",
			MaxAge:   365 * 24 * 60 * 60,
			HTTPOnly: true,
			Secure:   secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return utils.AnonOwnerKey(chatID)
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}
