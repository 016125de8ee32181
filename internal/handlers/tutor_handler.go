package handlers

import (
	"context"
	"net/url"

	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/forestgump22/tutorgo-frontend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type tutorCatalog interface {
	Search(ctx context.Context, token string, params url.Values) (*models.PagedResponse[models.TutorSummary], error)
	GetProfile(ctx context.Context, token string, tutorID int64) (*models.TutorProfile, error)
	Featured(ctx context.Context, token string) ([]models.TutorSummary, error)
}

type tutorScheduleReader interface {
	ListForTutor(ctx context.Context, token string, tutorID int64) ([]models.Disponibilidad, error)
}

type TutorHandler struct {
	tutors       tutorCatalog
	availability tutorScheduleReader
}

func NewTutorHandler(tutors tutorCatalog, availability tutorScheduleReader) *TutorHandler {
	return &TutorHandler{tutors: tutors, availability: availability}
}

// searchFilters are the query params the search page forwards verbatim.
var searchFilters = []string{
	"query", "cursoNombre", "puntuacion", "maxPrecio",
	"fechaInicio", "fechaFin", "horaInicio", "horaFin",
	"page", "size", "sortBy", "sortDir",
}

func (h *TutorHandler) SearchPage(c *fiber.Ctx) error {
	params := url.Values{}
	for _, key := range searchFilters {
		if value := c.Query(key); value != "" {
			params.Set(key, value)
		}
	}

	page, err := h.tutors.Search(c.Context(), tokenFrom(c), params)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"page":    "buscar-tutores",
		"tutores": page,
	})
}

// scheduleBlock is an availability block enriched with the bookable start
// times derived from it.
type scheduleBlock struct {
	models.Disponibilidad
	HorasInicio []string `json:"horasInicio"`
}

// DetailPage assembles the tutor profile together with its bookable
// schedule. Blocks whose timestamps do not parse are shown without start
// options rather than sinking the whole page.
func (h *TutorHandler) DetailPage(c *fiber.Ctx) error {
	tutorID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Identificador de tutor inválido"})
	}

	profile, err := h.tutors.GetProfile(c.Context(), tokenFrom(c), tutorID)
	if err != nil {
		return mapServiceError(c, err)
	}

	blocks, err := h.availability.ListForTutor(c.Context(), tokenFrom(c), tutorID)
	if err != nil {
		return mapServiceError(c, err)
	}

	schedule := make([]scheduleBlock, 0, len(blocks))
	for _, block := range blocks {
		starts, err := services.StartTimes(block)
		if err != nil {
			starts = nil
		}
		schedule = append(schedule, scheduleBlock{Disponibilidad: block, HorasInicio: starts})
	}

	return c.JSON(fiber.Map{
		"page":             "tutor-detalle",
		"tutor":            profile,
		"disponibilidades": schedule,
	})
}

// HomePage is the public landing surface with the featured tutors strip.
func (h *TutorHandler) HomePage(c *fiber.Ctx) error {
	featured, err := h.tutors.Featured(c.Context(), tokenFrom(c))
	if err != nil {
		// The landing page renders without the strip when the backend is down.
		featured = []models.TutorSummary{}
	}
	return c.JSON(fiber.Map{
		"page":              "home",
		"tutoresDestacados": featured,
	})
}
