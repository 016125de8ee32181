package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/forestgump22/tutorgo-frontend/internal/api"
	"github.com/forestgump22/tutorgo-frontend/internal/models"
)

type PaymentService struct {
	client *api.Client
}

func NewPaymentService(client *api.Client) *PaymentService {
	return &PaymentService{client: client}
}

// History filters the caller's payments by free text and estado. An empty
// or "all" estado is omitted; anything else travels uppercased.
func (s *PaymentService) History(ctx context.Context, token, query, estado string) ([]models.Pago, error) {
	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}
	if estado != "" && !strings.EqualFold(estado, "all") {
		params.Set("estado", strings.ToUpper(estado))
	}

	path := "/pagos/historial"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	pagos := make([]models.Pago, 0)
	if err := s.client.Get(ctx, token, path, &pagos); err != nil {
		if errors.Is(err, api.ErrNoContent) {
			return pagos, nil
		}
		return nil, upstreamErr(err, "No se pudo cargar tu historial de pagos.")
	}
	return pagos, nil
}

func (s *PaymentService) Details(ctx context.Context, token string, pagoID int64) (*models.Pago, error) {
	if pagoID <= 0 {
		return nil, ErrInvalidInput
	}

	var pago models.Pago
	if err := s.client.Get(ctx, token, fmt.Sprintf("/pagos/%d/details", pagoID), &pago); err != nil {
		return nil, upstreamErr(err, "No se pudieron obtener los detalles del pago.")
	}
	return &pago, nil
}
