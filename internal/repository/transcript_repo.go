package repository

import (
	"context"

	"github.com/forestgump22/tutorgo-frontend/internal/models"
)

// TranscriptRepository persists the assistant chat transcript and the
// chat-open flag per owner. Persistence is unconditional after every
// mutation; there is no eviction and no size cap.
type TranscriptRepository struct {
	db DBTX
}

func NewTranscriptRepository(db DBTX) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

func (r *TranscriptRepository) Append(
	ctx context.Context,
	ownerKey string,
	role string,
	text string,
) (*models.ChatMessage, error) {
	query := `
		INSERT INTO chat_messages (owner_key, role, content)
		VALUES ($1, $2, $3)
		RETURNING id, owner_key, role, content, created_at
	`

	var message models.ChatMessage
	err := r.db.QueryRow(ctx, query, ownerKey, role, text).Scan(
		&message.ID,
		&message.OwnerKey,
		&message.Role,
		&message.Text,
		&message.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *TranscriptRepository) ListByOwner(ctx context.Context, ownerKey string) ([]models.ChatMessage, error) {
	query := `
		SELECT id, owner_key, role, content, created_at
		FROM chat_messages
		WHERE owner_key = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, ownerKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.ChatMessage, 0)
	for rows.Next() {
		var message models.ChatMessage
		if err := rows.Scan(
			&message.ID,
			&message.OwnerKey,
			&message.Role,
			&message.Text,
			&message.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *TranscriptRepository) Clear(ctx context.Context, ownerKey string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM chat_messages WHERE owner_key = $1`, ownerKey)
	return err
}

func (r *TranscriptRepository) SetOpen(ctx context.Context, ownerKey string, open bool) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO chat_state (owner_key, is_open, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (owner_key)
		DO UPDATE SET is_open = EXCLUDED.is_open, updated_at = now()
	`, ownerKey, open)
	return err
}

func (r *TranscriptRepository) IsOpen(ctx context.Context, ownerKey string) (bool, error) {
	var open bool
	err := r.db.QueryRow(ctx, `
		SELECT is_open FROM chat_state WHERE owner_key = $1
	`, ownerKey).Scan(&open)
	if err != nil {
		return false, err
	}
	return open, nil
}
