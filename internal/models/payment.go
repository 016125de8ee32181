package models

const (
	PaymentPending   = "PENDIENTE"
	PaymentCompleted = "COMPLETADO"
	PaymentFailed    = "FALLIDO"
)

type Pago struct {
	ID                 int64   `json:"id"`
	TutorID            int64   `json:"tutorId"`
	NombreTutor        string  `json:"nombreTutor,omitempty"`
	EstudianteID       int64   `json:"estudianteId"`
	NombreEstudiante   string  `json:"nombreEstudiante,omitempty"`
	Monto              float64 `json:"monto"`
	ComisionPlataforma float64 `json:"comisionPlataforma"`
	MetodoPago         string  `json:"metodoPago"`
	TipoEstado         string  `json:"tipoEstado"`
	SesionID           *int64  `json:"sesionId"`
	FechaPago          *string `json:"fechaPago"`
	Descripcion        string  `json:"descripcion"`
}
