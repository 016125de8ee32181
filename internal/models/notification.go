package models

type Notificacion struct {
	ID            int64  `json:"id"`
	Titulo        string `json:"titulo"`
	Texto         string `json:"texto"`
	Tipo          string `json:"tipo"`
	FechaCreacion string `json:"fechaCreacion"`
}
