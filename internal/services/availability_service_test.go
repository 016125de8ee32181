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

func TestAddRejectsInvertedRangeWithoutRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer srv.Close()

	service := NewAvailabilityService(api.NewClient(srv.URL))
	err := service.Add(context.Background(), "tkn", models.DisponibilidadRequest{
		Fecha:       "2025-03-10",
		HoraInicio: "12:00",
		HoraFinal:  "10:00",
	})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Message != "La hora de finalización debe ser posterior a la hora de inicio." {
		t.Fatalf("unexpected message %q", vErr.Message)
	}
	if requests != 0 {
		t.Fatalf("invalid ranges must be rejected before reaching the backend")
	}
}

func TestAddRejectsZeroLengthRange(t *testing.T) {
	service := NewAvailabilityService(api.NewClient("http://unused"))
	err := service.Add(context.Background(), "tkn", models.DisponibilidadRequest{
		Fecha:       "2025-03-10",
		HoraInicio: "10:00",
		HoraFinal:  "10:00",
	})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddNormalizesTimesToSeconds(t *testing.T) {
	var captured models.DisponibilidadRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tutores/me/disponibilidades" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode: %v", err)
		}
		_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer srv.Close()

	service := NewAvailabilityService(api.NewClient(srv.URL))
	err := service.Add(context.Background(), "tkn", models.DisponibilidadRequest{
		Fecha:       "2025-03-10",
		HoraInicio: "09:00",
		HoraFinal:  "12:30",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if captured.HoraInicio != "09:00:00" || captured.HoraFinal != "12:30:00" {
		t.Fatalf("expected normalized HH:mm:ss, got %q / %q", captured.HoraInicio, captured.HoraFinal)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer srv.Close()

	service := NewAvailabilityService(api.NewClient(srv.URL))
	if err := service.Delete(context.Background(), "tkn", 3, false); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
	if requests != 0 {
		t.Fatalf("unconfirmed deletes must not reach the backend")
	}

	if err := service.Delete(context.Background(), "tkn", 3, true); err != nil {
		t.Fatalf("confirmed delete: %v", err)
	}
	if requests != 1 {
		t.Fatalf("expected one delete request, got %d", requests)
	}
}

func TestListMineSortsByStartAndToleratesEmpty(t *testing.T) {
	empty := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if empty {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(`[
			{"id":2,"fecha":"2025-03-10","horaInicial":"14:00:00","horaFinal":"16:00:00"},
			{"id":1,"fecha":"2025-03-10","horaInicial":"09:00:00","horaFinal":"12:00:00"}
		]`))
	}))
	defer srv.Close()

	service := NewAvailabilityService(api.NewClient(srv.URL))
	blocks, err := service.ListMine(context.Background(), "tkn")
	if err != nil {
		t.Fatalf("ListMine: %v", err)
	}
	if len(blocks) != 2 || blocks[0].ID != 1 {
		t.Fatalf("expected earliest block first, got %+v", blocks)
	}

	empty = true
	blocks, err = service.ListMine(context.Background(), "tkn")
	if err != nil {
		t.Fatalf("ListMine empty: %v", err)
	}
	if blocks == nil || len(blocks) != 0 {
		t.Fatalf("expected empty slice for 204, got %v", blocks)
	}
}
