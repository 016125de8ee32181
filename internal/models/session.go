package models

const (
	SessionPending   = "PENDIENTE"
	SessionConfirmed = "CONFIRMADO"
)

// MaxEnlacesPorSesion caps the shared-material links attached to one session.
const MaxEnlacesPorSesion = 5

// Disponibilidad is a tutor-owned availability block. Fecha is "YYYY-MM-DD";
// HoraInicial and HoraFinal carry full timestamps for the same date.
type Disponibilidad struct {
	ID          int64  `json:"id"`
	Fecha       string `json:"fecha"`
	HoraInicial string `json:"horaInicial"`
	HoraFinal   string `json:"horaFinal"`
}

type DisponibilidadRequest struct {
	Fecha      string `json:"fecha"`
	HoraInicio string `json:"horaInicio"`
	HoraFinal  string `json:"horaFinal"`
}

// ReservaTutoriaRequest is the reservation payload built right before
// submission; it is never stored locally.
type ReservaTutoriaRequest struct {
	TutorID    int64  `json:"tutorId"`
	Fecha      string `json:"fecha"`
	HoraInicio string `json:"horaInicio"`
	HoraFinal  string `json:"horaFinal"`
}

type Sesion struct {
	ID               int64    `json:"id"`
	TutorID          int64    `json:"tutorId"`
	NombreTutor      string   `json:"nombreTutor"`
	EstudianteID     int64    `json:"estudianteId"`
	NombreEstudiante string   `json:"nombreEstudiante"`
	Fecha            string   `json:"fecha"`
	HoraInicial      string   `json:"horaInicial"`
	HoraFinal        string   `json:"horaFinal"`
	TipoEstado       string   `json:"tipoEstado"`
	Enlaces          []Enlace `json:"enlaces"`
	FueCalificada    bool     `json:"fueCalificada"`
}

type Enlace struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Enlace string `json:"enlace"`
}

type EnlaceRequest struct {
	Nombre string `json:"nombre"`
	Enlace string `json:"enlace"`
}
