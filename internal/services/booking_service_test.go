package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/forestgump22/tutorgo-frontend/internal/api"
	"github.com/forestgump22/tutorgo-frontend/internal/models"
)

func TestStartTimesStepsOneHourWithinBlock(t *testing.T) {
	block := models.Disponibilidad{
		ID:          1,
		Fecha:       "2025-03-10",
		HoraInicial: "2025-03-10T09:00:00",
		HoraFinal:   "2025-03-10T12:00:00",
	}

	options, err := StartTimes(block)
	if err != nil {
		t.Fatalf("StartTimes: %v", err)
	}

	expected := []string{"09:00:00", "10:00:00", "11:00:00"}
	if len(options) != len(expected) {
		t.Fatalf("expected %d options, got %d (%v)", len(expected), len(options), options)
	}
	for i, want := range expected {
		if options[i] != want {
			t.Fatalf("option %d: expected %s, got %s", i, want, options[i])
		}
	}
}

func TestStartTimesExcludesBlockEnd(t *testing.T) {
	block := models.Disponibilidad{
		Fecha:       "2025-03-10",
		HoraInicial: "2025-03-10 14:00:00",
		HoraFinal:   "2025-03-10 15:00:00",
	}

	options, err := StartTimes(block)
	if err != nil {
		t.Fatalf("StartTimes: %v", err)
	}
	if len(options) != 1 || options[0] != "14:00:00" {
		t.Fatalf("expected exactly the block start, got %v", options)
	}
}

func TestStartTimesPartialTrailingHour(t *testing.T) {
	block := models.Disponibilidad{
		Fecha:       "2025-03-10",
		HoraInicial: "2025-03-10T09:00:00",
		HoraFinal:   "2025-03-10T10:30:00",
	}

	options, err := StartTimes(block)
	if err != nil {
		t.Fatalf("StartTimes: %v", err)
	}
	// 10:00 still starts strictly before the block end.
	if len(options) != 2 || options[1] != "10:00:00" {
		t.Fatalf("expected [09:00:00 10:00:00], got %v", options)
	}
}

func TestPriceIsRateTimesHours(t *testing.T) {
	if got := Price(35.5, 2); got != 71.0 {
		t.Fatalf("expected 71.0, got %v", got)
	}
	if got := Price(20, 1); got != 20 {
		t.Fatalf("expected 20, got %v", got)
	}
}

func TestBuildReservationComputesEndTime(t *testing.T) {
	block := models.Disponibilidad{
		Fecha:       "2025-03-10",
		HoraInicial: "2025-03-10T09:00:00",
		HoraFinal:   "2025-03-10T12:00:00",
	}

	req, err := BuildReservation(7, block, "10:00:00", 2)
	if err != nil {
		t.Fatalf("BuildReservation: %v", err)
	}
	if req.TutorID != 7 {
		t.Fatalf("expected tutor 7, got %d", req.TutorID)
	}
	if req.Fecha != "2025-03-10" {
		t.Fatalf("expected fecha 2025-03-10, got %s", req.Fecha)
	}
	if req.HoraInicio != "10:00:00" {
		t.Fatalf("expected horaInicio 10:00:00, got %s", req.HoraInicio)
	}
	if req.HoraFinal != "12:00:00" {
		t.Fatalf("expected horaFinal 12:00:00, got %s", req.HoraFinal)
	}
}

func TestBuildReservationRequiresStartTime(t *testing.T) {
	block := models.Disponibilidad{Fecha: "2025-03-10"}

	_, err := BuildReservation(7, block, "", 1)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBuildReservationRequiresWholePositiveDuration(t *testing.T) {
	block := models.Disponibilidad{Fecha: "2025-03-10"}

	_, err := BuildReservation(7, block, "10:00:00", 0)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestReserveReturnsPendingPayment(t *testing.T) {
	var captured models.ReservaTutoriaRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reservas/iniciar-pago" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tkn" {
			t.Errorf("missing bearer token")
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode reservation: %v", err)
		}
		_, _ = w.Write([]byte(`{"success":true,"message":"ok","data":{"id":55,"tutorId":7,"monto":71,"tipoEstado":"PENDIENTE"}}`))
	}))
	defer srv.Close()

	service := NewBookingService(api.NewClient(srv.URL))
	pago, err := service.Reserve(context.Background(), "tkn", models.ReservaTutoriaRequest{
		TutorID:    7,
		Fecha:      "2025-03-10",
		HoraInicio: "10:00:00",
		HoraFinal:  "12:00:00",
	})
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if pago.ID != 55 || pago.TipoEstado != models.PaymentPending {
		t.Fatalf("unexpected pago %+v", pago)
	}
	if captured.HoraFinal != "12:00:00" {
		t.Fatalf("payload horaFinal: expected 12:00:00, got %s", captured.HoraFinal)
	}
}

func TestReserveSurfacesBackendRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"message":"El horario ya no está disponible."}`))
	}))
	defer srv.Close()

	service := NewBookingService(api.NewClient(srv.URL))
	_, err := service.Reserve(context.Background(), "tkn", models.ReservaTutoriaRequest{TutorID: 7})

	var uErr *UpstreamError
	if !errors.As(err, &uErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if uErr.Message != "El horario ya no está disponible." {
		t.Fatalf("expected backend reason, got %q", uErr.Message)
	}
	if uErr.HTTPStatus() != http.StatusConflict {
		t.Fatalf("expected mirrored 409, got %d", uErr.HTTPStatus())
	}
}

func TestCheckoutDetailsBlocksNonPendingPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pagos/55/details" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":55,"tipoEstado":"COMPLETADO","monto":71}`))
	}))
	defer srv.Close()

	service := NewBookingService(api.NewClient(srv.URL))
	pago, err := service.CheckoutDetails(context.Background(), "tkn", 55)
	if !errors.Is(err, ErrPaymentNotPending) {
		t.Fatalf("expected ErrPaymentNotPending, got %v", err)
	}
	if pago == nil || pago.ID != 55 {
		t.Fatalf("details must still be returned for display, got %+v", pago)
	}
}

func TestConfirmPaymentNeverFiresForSettledPayment(t *testing.T) {
	confirmCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pagos/55/details":
			_, _ = w.Write([]byte(`{"id":55,"tipoEstado":"COMPLETADO"}`))
		case "/reservas/confirmar-pago/55":
			confirmCalls++
			_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	service := NewBookingService(api.NewClient(srv.URL))
	if _, err := service.ConfirmPayment(context.Background(), "tkn", 55); !errors.Is(err, ErrPaymentNotPending) {
		t.Fatalf("expected ErrPaymentNotPending, got %v", err)
	}
	if confirmCalls != 0 {
		t.Fatalf("confirm endpoint must not be called for a settled payment")
	}
}

func TestConfirmPaymentSettlesPendingPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pagos/55/details":
			_, _ = w.Write([]byte(`{"id":55,"tipoEstado":"PENDIENTE","monto":71}`))
		case "/reservas/confirmar-pago/55":
			_, _ = w.Write([]byte(`{"success":true,"message":"Pago confirmado","data":{"id":55,"tipoEstado":"COMPLETADO","sesionId":901}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	service := NewBookingService(api.NewClient(srv.URL))
	pago, err := service.ConfirmPayment(context.Background(), "tkn", 55)
	if err != nil {
		t.Fatalf("ConfirmPayment: %v", err)
	}
	if pago.TipoEstado != models.PaymentCompleted {
		t.Fatalf("expected COMPLETADO, got %s", pago.TipoEstado)
	}
	if pago.SesionID == nil || *pago.SesionID != 901 {
		t.Fatalf("expected materialized session id, got %+v", pago.SesionID)
	}
}
