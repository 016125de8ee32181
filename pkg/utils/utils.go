package utils

import (
	"fmt"
	"strings"

	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// NewSessionID mints the opaque id stored in the credential cookie.
func NewSessionID() string {
	return uuid.NewString()
}

// UserOwnerKey scopes an assistant transcript to a signed-in user.
func UserOwnerKey(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

// AnonOwnerKey scopes an assistant transcript to an anonymous visitor's
// chat cookie.
func AnonOwnerKey(chatID string) string {
	return "anon:" + chatID
}

type tokenClaims struct {
	UserID int64  `json:"userId"`
	Nombre string `json:"nombre"`
	Roles  string `json:"roles"`
	jwt.RegisteredClaims
}

// UserFromToken rebuilds a user snapshot from the bearer token's claims.
// The token is issued and verified by the backend; here it is only decoded,
// never validated, to hydrate the cached identity. `sub` carries the email;
// a roles claim containing TUTOR maps to the tutor role, anything else
// defaults to student.
func UserFromToken(token string) (*models.User, error) {
	parser := jwt.NewParser()
	claims := &tokenClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	if claims.UserID == 0 {
		return nil, fmt.Errorf("token has no userId claim")
	}

	rol := models.RoleStudent
	if strings.Contains(strings.ToUpper(claims.Roles), "TUTOR") {
		rol = models.RoleTutor
	}

	return &models.User{
		ID:     claims.UserID,
		Email:  claims.Subject,
		Nombre: claims.Nombre,
		Rol:    rol,
	}, nil
}
