package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forestgump22/tutorgo-frontend/internal/api"
	"github.com/forestgump22/tutorgo-frontend/internal/models"
)

// BookingService drives the reservation flow: pick an availability block,
// derive a start time and duration, create the pending payment, then
// confirm it at checkout. The session only exists once the backend reports
// the payment COMPLETADO; nothing here is retried automatically.
type BookingService struct {
	client *api.Client
}

func NewBookingService(client *api.Client) *BookingService {
	return &BookingService{client: client}
}

// StartTimes derives the bookable start times of a block: one-hour steps
// from the block's start, strictly before its end.
func StartTimes(block models.Disponibilidad) ([]string, error) {
	start, err := parseBlockTime(block.HoraInicial)
	if err != nil {
		return nil, fmt.Errorf("parse block start: %w", err)
	}
	end, err := parseBlockTime(block.HoraFinal)
	if err != nil {
		return nil, fmt.Errorf("parse block end: %w", err)
	}

	options := make([]string, 0)
	for t := start; t.Before(end); t = t.Add(time.Hour) {
		options = append(options, t.Format("15:04:05"))
	}
	return options, nil
}

// Price is the display total: hourly rate times whole hours. It is never
// sent to the backend as an authoritative value.
func Price(tarifaHora float64, duracion int) float64 {
	return tarifaHora * float64(duracion)
}

// BuildReservation assembles the reservation payload from the selected
// block, start time and duration. The end time is start plus duration.
func BuildReservation(
	tutorID int64,
	block models.Disponibilidad,
	horaInicio string,
	duracion int,
) (models.ReservaTutoriaRequest, error) {
	var req models.ReservaTutoriaRequest
	if horaInicio == "" {
		return req, validationErr("Por favor, selecciona una hora de inicio.")
	}
	if duracion < 1 {
		return req, validationErr("La duración mínima es de una hora.")
	}

	start, err := time.Parse("15:04:05", horaInicio)
	if err != nil {
		return req, validationErr("La hora de inicio no es válida.")
	}

	return models.ReservaTutoriaRequest{
		TutorID:    tutorID,
		Fecha:      block.Fecha,
		HoraInicio: start.Format("15:04:05"),
		HoraFinal:  start.Add(time.Duration(duracion) * time.Hour).Format("15:04:05"),
	}, nil
}

// Reserve submits the reservation and returns the backend's pending
// payment, whose id keys the checkout view. A rejection (slot taken,
// overlapping session) comes back with the backend's reason.
func (s *BookingService) Reserve(ctx context.Context, token string, req models.ReservaTutoriaRequest) (*models.Pago, error) {
	if req.TutorID <= 0 {
		return nil, ErrInvalidInput
	}

	var pago models.Pago
	if _, err := s.client.PostEnvelope(ctx, token, "/reservas/iniciar-pago", req, &pago); err != nil {
		return nil, upstreamErr(err, "No se pudo iniciar la reserva.")
	}
	return &pago, nil
}

// CheckoutDetails loads the authoritative payment for the checkout view.
// A payment that is no longer PENDIENTE (stale link, back navigation,
// double submit) blocks the confirm path: the details are still returned
// for display alongside ErrPaymentNotPending.
func (s *BookingService) CheckoutDetails(ctx context.Context, token string, pagoID int64) (*models.Pago, error) {
	if pagoID <= 0 {
		return nil, ErrInvalidInput
	}

	var pago models.Pago
	if err := s.client.Get(ctx, token, fmt.Sprintf("/pagos/%d/details", pagoID), &pago); err != nil {
		return nil, upstreamErr(err, "No se pudieron obtener los detalles del pago.")
	}
	if pago.TipoEstado != models.PaymentPending {
		return &pago, ErrPaymentNotPending
	}
	return &pago, nil
}

// ConfirmPayment settles the pending payment; on success the backend has
// materialized the session. On failure the payment stays PENDIENTE and the
// user may retry explicitly.
func (s *BookingService) ConfirmPayment(ctx context.Context, token string, pagoID int64) (*models.Pago, error) {
	if pagoID <= 0 {
		return nil, ErrInvalidInput
	}

	pago, err := s.CheckoutDetails(ctx, token, pagoID)
	if err != nil {
		return pago, err
	}

	var settled models.Pago
	path := fmt.Sprintf("/reservas/confirmar-pago/%d", pagoID)
	if _, err := s.client.PostEnvelope(ctx, token, path, nil, &settled); err != nil {
		return nil, upstreamErr(err, "El pago no pudo ser confirmado.")
	}
	return &settled, nil
}

// parseBlockTime tolerates both timestamp layouts the backend emits for
// availability bounds.
func parseBlockTime(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
