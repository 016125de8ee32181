package handlers

import (
	"context"

	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type statsReader interface {
	Stats(ctx context.Context, token string) (*models.DashboardStats, error)
}

type DashboardHandler struct {
	stats  statsReader
	tutors tutorCatalog
}

func NewDashboardHandler(stats statsReader, tutors tutorCatalog) *DashboardHandler {
	return &DashboardHandler{stats: stats, tutors: tutors}
}

// Page renders the signed-in home. Students additionally get the featured
// tutors strip; the stats block is role-shaped by the backend.
func (h *DashboardHandler) Page(c *fiber.Ctx) error {
	user := userFrom(c)

	stats, err := h.stats.Stats(c.Context(), tokenFrom(c))
	if err != nil {
		return mapServiceError(c, err)
	}

	response := fiber.Map{
		"page":  "dashboard",
		"user":  user,
		"stats": stats,
	}
	if user != nil && user.Rol == models.RoleStudent {
		if featured, err := h.tutors.Featured(c.Context(), tokenFrom(c)); err == nil {
			response["tutoresDestacados"] = featured
		}
	}
	return c.JSON(response)
}
