package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SessionRepository persists auth sessions: the bearer credential issued by
// the backend plus the cached user snapshot, with a fixed lifetime.
type SessionRepository struct {
	db DBTX
}

func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(
	ctx context.Context,
	id string,
	token string,
	user *models.User,
	ttl time.Duration,
) (*models.AuthSession, error) {
	userData, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("marshal user snapshot: %w", err)
	}

	query := `
		INSERT INTO auth_sessions (id, token, user_data, expires_at)
		VALUES ($1, $2, $3, now() + $4)
		RETURNING id, token, user_data, created_at, expires_at
	`
	return scanSession(r.db.QueryRow(ctx, query, id, token, userData, ttl))
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.AuthSession, error) {
	query := `
		SELECT id, token, user_data, created_at, expires_at
		FROM auth_sessions
		WHERE id = $1
	`
	return scanSession(r.db.QueryRow(ctx, query, id))
}

// UpdateUser refreshes the cached user snapshot after a profile mutation.
func (r *SessionRepository) UpdateUser(ctx context.Context, id string, user *models.User) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user snapshot: %w", err)
	}
	tag, err := r.db.Exec(ctx, `UPDATE auth_sessions SET user_data = $2 WHERE id = $1`, id, userData)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM auth_sessions WHERE id = $1`, id)
	return err
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM auth_sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanSession(row pgx.Row) (*models.AuthSession, error) {
	var (
		session  models.AuthSession
		userData []byte
	)
	if err := row.Scan(
		&session.ID,
		&session.Token,
		&userData,
		&session.CreatedAt,
		&session.ExpiresAt,
	); err != nil {
		return nil, err
	}
	if len(userData) > 0 {
		if err := json.Unmarshal(userData, &session.User); err != nil {
			return nil, fmt.Errorf("unmarshal user snapshot: %w", err)
		}
	}
	return &session, nil
}
