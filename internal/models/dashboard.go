package models

// DashboardStats is shaped by role: the backend fills the student fields for
// students and the tutor fields for tutors.
type DashboardStats struct {
	ProximaTutoriaInfo   string  `json:"proximaTutoriaInfo,omitempty"`
	TutoriasCompletadas  int     `json:"tutoriasCompletadas,omitempty"`
	TutoriasPendientes   int     `json:"tutoriasPendientes,omitempty"`
	ProximaClaseInfo     string  `json:"proximaClaseInfo,omitempty"`
	IngresosEsteMes      float64 `json:"ingresosEsteMes,omitempty"`
	CalificacionPromedio float64 `json:"calificacionPromedio,omitempty"`
	EstudiantesActivos   int     `json:"estudiantesActivos,omitempty"`

	TutoresDestacados []TutorSummary `json:"tutoresDestacados"`
}
