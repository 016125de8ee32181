package models

import "time"

// AuthSession is the locally persisted credential: the upstream bearer token
// plus a cached snapshot of the logged-in user. The session id travels in
// the `token` cookie; the bearer token never leaves the server.
type AuthSession struct {
	ID        string    `json:"id"`
	Token     string    `json:"-"`
	User      *User     `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *AuthSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
