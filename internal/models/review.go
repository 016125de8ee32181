package models

type ResenaRequest struct {
	Calificacion int    `json:"calificacion"`
	Comentario   string `json:"comentario,omitempty"`
}

type Resena struct {
	ID           int64  `json:"id"`
	Calificacion int    `json:"calificacion"`
	Comentario   string `json:"comentario"`
}
