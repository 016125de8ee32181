package utils

import (
	"testing"

	"github.com/forestgump22/tutorgo-frontend/internal/models"
	"github.com/golang-jwt/jwt/v4"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestUserFromTokenHydratesTutor(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub":    "ana@example.com",
		"userId": float64(42),
		"nombre": "Ana",
		"roles":  "ROLE_TUTOR,ROLE_USER",
	})

	user, err := UserFromToken(token)
	if err != nil {
		t.Fatalf("UserFromToken: %v", err)
	}
	if user.ID != 42 {
		t.Fatalf("expected id 42, got %d", user.ID)
	}
	if user.Email != "ana@example.com" {
		t.Fatalf("expected email from sub, got %q", user.Email)
	}
	if user.Rol != models.RoleTutor {
		t.Fatalf("expected tutor role, got %q", user.Rol)
	}
}

func TestUserFromTokenDefaultsToStudent(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub":    "luis@example.com",
		"userId": float64(7),
		"nombre": "Luis",
		"roles":  "ROLE_USER",
	})

	user, err := UserFromToken(token)
	if err != nil {
		t.Fatalf("UserFromToken: %v", err)
	}
	if user.Rol != models.RoleStudent {
		t.Fatalf("expected student role, got %q", user.Rol)
	}
}

func TestUserFromTokenRejectsGarbage(t *testing.T) {
	if _, err := UserFromToken("not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestUserFromTokenRequiresUserID(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "x@example.com"})
	if _, err := UserFromToken(token); err == nil {
		t.Fatalf("expected error for missing userId claim")
	}
}

func TestNewSessionIDIsUnique(t *testing.T) {
	if NewSessionID() == NewSessionID() {
		t.Fatalf("expected distinct session ids")
	}
}
