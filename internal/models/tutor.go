package models

type TutorSummary struct {
	TutorID           int64   `json:"tutorId"`
	NombreUsuario     string  `json:"nombreUsuario"`
	FotoURLUsuario    string  `json:"fotoUrlUsuario"`
	Rubro             string  `json:"rubro"`
	EstrellasPromedio float64 `json:"estrellasPromedio"`
	TarifaHora        float64 `json:"tarifaHora"`
}

type TutorProfile struct {
	ID                int64   `json:"id"`
	NombreUsuario     string  `json:"nombreUsuario"`
	FotoURLUsuario    string  `json:"fotoUrlUsuario"`
	TarifaHora        float64 `json:"tarifaHora"`
	Rubro             string  `json:"rubro"`
	Bio               string  `json:"bio"`
	EstrellasPromedio float64 `json:"estrellasPromedio"`
}

// PagedResponse mirrors the backend's page envelope for tutor search.
type PagedResponse[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}
