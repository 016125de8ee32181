package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/forestgump22/tutorgo-frontend/internal/api"
	"github.com/forestgump22/tutorgo-frontend/internal/models"
)

type TutorService struct {
	client *api.Client
}

func NewTutorService(client *api.Client) *TutorService {
	return &TutorService{client: client}
}

// Search pages through tutors with the caller's filter params passed
// through verbatim. Defaults match the search page: page 0, size 9.
func (s *TutorService) Search(
	ctx context.Context,
	token string,
	params url.Values,
) (*models.PagedResponse[models.TutorSummary], error) {
	if params == nil {
		params = url.Values{}
	}
	if params.Get("page") == "" {
		params.Set("page", "0")
	}
	if params.Get("size") == "" {
		params.Set("size", "9")
	}

	var page models.PagedResponse[models.TutorSummary]
	if err := s.client.Get(ctx, token, "/tutores?"+params.Encode(), &page); err != nil {
		return nil, upstreamErr(err, "No se pudo cargar la lista de tutores.")
	}
	return &page, nil
}

func (s *TutorService) GetProfile(ctx context.Context, token string, tutorID int64) (*models.TutorProfile, error) {
	if tutorID <= 0 {
		return nil, ErrInvalidInput
	}

	var profile models.TutorProfile
	if err := s.client.Get(ctx, token, fmt.Sprintf("/tutores/%d", tutorID), &profile); err != nil {
		return nil, upstreamErr(err, "No se pudo cargar el perfil del tutor.")
	}
	return &profile, nil
}

// Featured returns the top-rated tutors shown on the landing page and
// the dashboard.
func (s *TutorService) Featured(ctx context.Context, token string) ([]models.TutorSummary, error) {
	params := url.Values{}
	params.Set("sortBy", "estrellasPromedio")
	params.Set("sortDir", "desc")
	params.Set("size", "4")

	var page models.PagedResponse[models.TutorSummary]
	if err := s.client.Get(ctx, token, "/tutores?"+params.Encode(), &page); err != nil {
		return nil, upstreamErr(err, "No se pudieron cargar los tutores destacados.")
	}
	return page.Content, nil
}

func (s *TutorService) UpdateBio(ctx context.Context, token, bio string) error {
	if strings.TrimSpace(bio) == "" {
		return validationErr("La biografía no puede estar vacía.")
	}
	if err := s.client.Put(ctx, token, "/tutores/me/bio", map[string]string{"bio": bio}, nil); err != nil {
		return upstreamErr(err, "No se pudo actualizar la biografía.")
	}
	return nil
}
