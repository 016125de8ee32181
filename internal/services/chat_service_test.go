package services

import (
	"context"
	"errors"
	"testing"

	"github.com/forestgump22/tutorgo-frontend/internal/genai"
	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type stubGenerator struct {
	reply   string
	err     error
	history []genai.Turn
}

func (s *stubGenerator) GenerateContent(_ context.Context, history []genai.Turn) (string, error) {
	s.history = history
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type memoryTranscripts struct {
	messages []models.ChatMessage
	open     bool
	openSet  bool
	nextID   int64
}

func (m *memoryTranscripts) Append(_ context.Context, ownerKey, role, text string) (*models.ChatMessage, error) {
	m.nextID++
	msg := models.ChatMessage{ID: m.nextID, OwnerKey: ownerKey, Role: role, Text: text}
	m.messages = append(m.messages, msg)
	return &msg, nil
}

func (m *memoryTranscripts) ListByOwner(_ context.Context, _ string) ([]models.ChatMessage, error) {
	return m.messages, nil
}

func (m *memoryTranscripts) Clear(_ context.Context, _ string) error {
	m.messages = nil
	return nil
}

func (m *memoryTranscripts) SetOpen(_ context.Context, _ string, open bool) error {
	m.open = open
	m.openSet = true
	return nil
}

func (m *memoryTranscripts) IsOpen(_ context.Context, _ string) (bool, error) {
	if !m.openSet {
		return false, pgx.ErrNoRows
	}
	return m.open, nil
}

func newChatFixture(gen *stubGenerator) (*ChatService, *memoryTranscripts) {
	store := &memoryTranscripts{}
	return NewChatService(gen, store, zap.NewNop()), store
}

func TestSendDirectiveReplyNavigatesWithoutTranscriptEntry(t *testing.T) {
	gen := &stubGenerator{reply: "query: <buscar-tutores?cursoNombre=Quimica>"}
	service, store := newChatFixture(gen)

	result, err := service.Send(context.Background(), "user:1", "Quiero un tutor de química")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if result.Navigate != "/buscar-tutores?cursoNombre=Quimica" {
		t.Fatalf("expected navigation route, got %q", result.Navigate)
	}
	if result.Message != nil {
		t.Fatalf("directive replies carry no visible message")
	}
	// Only the user's turn lands in the transcript.
	if len(store.messages) != 1 || store.messages[0].Role != models.ChatRoleUser {
		t.Fatalf("directive must not be appended, transcript: %+v", store.messages)
	}
}

func TestSendPlainReplyIsAppendedVerbatim(t *testing.T) {
	gen := &stubGenerator{reply: "¿Para qué curso necesitas la tutoría?"}
	service, store := newChatFixture(gen)

	result, err := service.Send(context.Background(), "user:1", "Necesito ayuda")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if result.Navigate != "" {
		t.Fatalf("plain replies must not navigate, got %q", result.Navigate)
	}
	if result.Message == nil || result.Message.Text != gen.reply {
		t.Fatalf("expected reply appended verbatim, got %+v", result.Message)
	}
	if len(store.messages) != 2 || store.messages[1].Role != models.ChatRoleModel {
		t.Fatalf("unexpected transcript %+v", store.messages)
	}
}

func TestSendEmbeddedDirectiveIsNotNavigation(t *testing.T) {
	gen := &stubGenerator{reply: "Voy a query: <buscar-tutores> hoy"}
	service, store := newChatFixture(gen)

	result, err := service.Send(context.Background(), "user:1", "hola")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if result.Navigate != "" {
		t.Fatalf("embedded directive must read as prose, got %q", result.Navigate)
	}
	if len(store.messages) != 2 {
		t.Fatalf("expected the reply in the transcript, got %+v", store.messages)
	}
}

func TestSendGenerationFailureAppendsFallback(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	service, store := newChatFixture(gen)

	result, err := service.Send(context.Background(), "user:1", "hola")
	if err != nil {
		t.Fatalf("generation failures resolve to a fallback turn, got %v", err)
	}
	if result.Message == nil || result.Message.Text != ChatFallback {
		t.Fatalf("expected fallback message, got %+v", result.Message)
	}
	if len(store.messages) != 2 || store.messages[1].Text != ChatFallback {
		t.Fatalf("fallback must persist in the transcript: %+v", store.messages)
	}
}

func TestSendRejectsBlankMessage(t *testing.T) {
	service, store := newChatFixture(&stubGenerator{reply: "hola"})

	_, err := service.Send(context.Background(), "user:1", "   ")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(store.messages) != 0 {
		t.Fatalf("blank messages must not be stored")
	}
}

func TestSendPassesFullTranscriptToGenerator(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}
	service, _ := newChatFixture(gen)

	if _, err := service.Send(context.Background(), "user:1", "primero"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if _, err := service.Send(context.Background(), "user:1", "segundo"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	// Second call sees user+model+user.
	if len(gen.history) != 3 || gen.history[2].Text != "segundo" {
		t.Fatalf("unexpected history %+v", gen.history)
	}
}

func TestHistoryDefaultsClosedWhenUnset(t *testing.T) {
	service, _ := newChatFixture(&stubGenerator{reply: "ok"})

	_, open, err := service.History(context.Background(), "user:1")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if open {
		t.Fatalf("open flag must default to false")
	}

	if err := service.SetOpen(context.Background(), "user:1", true); err != nil {
		t.Fatalf("SetOpen: %v", err)
	}
	_, open, err = service.History(context.Background(), "user:1")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if !open {
		t.Fatalf("open flag must persist")
	}
}
