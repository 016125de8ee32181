package services

import (
	"context"
	"errors"
	"strings"

	"github.com/forestgump22/tutorgo-frontend/internal/chat"
	"github.com/forestgump22/tutorgo-frontend/internal/genai"
	"github.com/forestgump22/tutorgo-frontend/internal/metrics"
	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/forestgump22/tutorgo-frontend/internal/observability"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ChatFallback is appended as the model turn when generation fails; the
// failure is never retried.
const ChatFallback = "Sorry, I encountered an error. Please try again."

type generator interface {
	GenerateContent(ctx context.Context, history []genai.Turn) (string, error)
}

type transcriptStore interface {
	Append(ctx context.Context, ownerKey, role, text string) (*models.ChatMessage, error)
	ListByOwner(ctx context.Context, ownerKey string) ([]models.ChatMessage, error)
	Clear(ctx context.Context, ownerKey string) error
	SetOpen(ctx context.Context, ownerKey string, open bool) error
	IsOpen(ctx context.Context, ownerKey string) (bool, error)
}

// ChatService owns the assistant transcript and resolves replies into
// either a visible model turn or a silent navigation command.
type ChatService struct {
	generator   generator
	transcripts transcriptStore
	log         *zap.Logger
}

func NewChatService(gen generator, transcripts transcriptStore, log *zap.Logger) *ChatService {
	return &ChatService{generator: gen, transcripts: transcripts, log: log}
}

// ChatResult is one resolved exchange. Exactly one of Navigate and Message
// is set: a navigation command is a silent routing action and never appears
// in the transcript.
type ChatResult struct {
	UserMessage *models.ChatMessage `json:"userMessage"`
	Navigate    string              `json:"query,omitempty"`
	Message     *models.ChatMessage `json:"message,omitempty"`
}

func (s *ChatService) Send(ctx context.Context, ownerKey, text string) (*ChatResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validationErr("Escribe un mensaje para el asistente.")
	}

	userMessage, err := s.transcripts.Append(ctx, ownerKey, models.ChatRoleUser, text)
	if err != nil {
		return nil, err
	}

	transcript, err := s.transcripts.ListByOwner(ctx, ownerKey)
	if err != nil {
		return nil, err
	}
	history := make([]genai.Turn, 0, len(transcript))
	for _, message := range transcript {
		history = append(history, genai.Turn{Role: message.Role, Text: message.Text})
	}

	metrics.ChatGenerations.Inc()
	reply, err := s.generator.GenerateContent(ctx, history)
	if err != nil {
		s.log.Warn("assistant generation failed", zap.Error(err))
		observability.CaptureErr(err)
		fallback, appendErr := s.transcripts.Append(ctx, ownerKey, models.ChatRoleModel, ChatFallback)
		if appendErr != nil {
			return nil, appendErr
		}
		return &ChatResult{UserMessage: userMessage, Message: fallback}, nil
	}

	if route, ok := chat.ExtractQuery(reply); ok {
		metrics.ChatNavigations.Inc()
		return &ChatResult{UserMessage: userMessage, Navigate: route}, nil
	}

	modelMessage, err := s.transcripts.Append(ctx, ownerKey, models.ChatRoleModel, reply)
	if err != nil {
		return nil, err
	}
	return &ChatResult{UserMessage: userMessage, Message: modelMessage}, nil
}

// History returns the visible transcript plus the persisted open flag.
func (s *ChatService) History(ctx context.Context, ownerKey string) ([]models.ChatMessage, bool, error) {
	messages, err := s.transcripts.ListByOwner(ctx, ownerKey)
	if err != nil {
		return nil, false, err
	}

	open, err := s.transcripts.IsOpen(ctx, ownerKey)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, false, err
		}
		open = false
	}
	return messages, open, nil
}

func (s *ChatService) Clear(ctx context.Context, ownerKey string) error {
	return s.transcripts.Clear(ctx, ownerKey)
}

func (s *ChatService) SetOpen(ctx context.Context, ownerKey string, open bool) error {
	return s.transcripts.SetOpen(ctx, ownerKey, open)
}
