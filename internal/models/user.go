package models

const (
	RoleStudent = "ESTUDIANTE"
	RoleTutor   = "TUTOR"
	RoleAdmin   = "ADMIN"
)

type User struct {
	ID             int64               `json:"id"`
	Nombre         string              `json:"nombre"`
	Email          string              `json:"email"`
	Rol            string              `json:"rol"`
	FotoURL        string              `json:"fotoUrl,omitempty"`
	TutorProfile   *TutorProfileData   `json:"tutorProfile,omitempty"`
	StudentProfile *StudentProfileData `json:"studentProfile,omitempty"`
}

type TutorProfileData struct {
	ID                int64   `json:"id"`
	TarifaHora        float64 `json:"tarifaHora"`
	Rubro             string  `json:"rubro"`
	Bio               string  `json:"bio"`
	EstrellasPromedio float64 `json:"estrellasPromedio"`
}

type StudentProfileData struct {
	ID            int64  `json:"id"`
	CentroEstudio string `json:"centroEstudio"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the upstream login payload: a bearer token plus the
// authenticated user.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

type RegisterRequest struct {
	Nombre          string   `json:"nombre"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	Rol             string   `json:"rol"`
	CentroEstudioID *int64   `json:"centroEstudioId,omitempty"`
	TarifaHora      *float64 `json:"tarifaHora,omitempty"`
	Rubro           string   `json:"rubro,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	FotoURL         string   `json:"fotoUrl,omitempty"`
}

type UpdatePasswordRequest struct {
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

type UpdateProfileRequest struct {
	Nombre  string `json:"nombre"`
	FotoURL string `json:"fotoUrl,omitempty"`
}

type CentroEstudio struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
