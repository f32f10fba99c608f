package cliente

import (
	"strings"
	"time"
)

// The two wire shapes below are intentionally different: the backend grew a
// distinct contract for each operation and both must be preserved exactly.

// CreatePayload is the body of POST /api/Cliente/Crear. No id; the cell phone
// travels twice ("telefonoCelular" and "Celular"); dates are calendar days.
type CreatePayload struct {
	Nombre          string `json:"nombre"`
	Apellidos       string `json:"apellidos"`
	Identificacion  string `json:"identificacion"`
	TelefonoCelular string `json:"telefonoCelular"`
	Celular         string `json:"Celular"`
	OtroTelefono    string `json:"otroTelefono"`
	Direccion       string `json:"direccion"`
	FNacimiento     string `json:"fNacimiento"`
	FAfiliacion     string `json:"fAfiliacion"`
	Sexo            string `json:"sexo"`
	ResenaPersonal  string `json:"resenaPersonal"`
	Imagen          string `json:"imagen"`
	InteresFK       string `json:"interesFK"`
	UsuarioID       string `json:"usuarioId"`
}

// UpdatePayload is the body of POST /api/Cliente/Actualizar. Requires the
// backend-assigned id; single lowercase "celular"; "resennaPersonal" keeps
// the backend's double-n spelling; dates are full timestamps.
type UpdatePayload struct {
	ID              string `json:"id"`
	Nombre          string `json:"nombre"`
	Apellidos       string `json:"apellidos"`
	Identificacion  string `json:"identificacion"`
	Celular         string `json:"celular"`
	OtroTelefono    string `json:"otroTelefono"`
	Direccion       string `json:"direccion"`
	FNacimiento     string `json:"fNacimiento"`
	FAfiliacion     string `json:"fAfiliacion"`
	Sexo            string `json:"sexo"`
	ResennaPersonal string `json:"resennaPersonal"`
	Imagen          string `json:"imagen"`
	InteresFK       string `json:"interesFK"`
	UsuarioID       string `json:"usuarioId"`
}

const fechaCorta = "2006-01-02"

func formatFecha(t *time.Time, layout string) string {
	if t == nil {
		return ""
	}
	return t.Format(layout)
}

// NewCreatePayload maps a validated draft to the create wire shape.
// userID may be empty when the session carries no user id.
func NewCreatePayload(d Draft, userID string) CreatePayload {
	cel := strings.TrimSpace(d.TelefonoCelular)
	return CreatePayload{
		Nombre:          strings.TrimSpace(d.Nombre),
		Apellidos:       strings.TrimSpace(d.Apellidos),
		Identificacion:  strings.TrimSpace(d.Identificacion),
		TelefonoCelular: cel,
		Celular:         cel,
		OtroTelefono:    strings.TrimSpace(d.OtroTelefono),
		Direccion:       strings.TrimSpace(d.Direccion),
		FNacimiento:     formatFecha(d.FNacimiento, fechaCorta),
		FAfiliacion:     formatFecha(d.FAfiliacion, fechaCorta),
		Sexo:            d.Sexo,
		ResenaPersonal:  strings.TrimSpace(d.ResenaPersonal),
		Imagen:          d.Imagen,
		InteresFK:       d.InteresFK,
		UsuarioID:       userID,
	}
}

// NewUpdatePayload maps a validated draft to the update wire shape. id is the
// identifier obtained from a prior fetch; userID comes from the session.
func NewUpdatePayload(d Draft, id, userID string) UpdatePayload {
	return UpdatePayload{
		ID:              id,
		Nombre:          strings.TrimSpace(d.Nombre),
		Apellidos:       strings.TrimSpace(d.Apellidos),
		Identificacion:  strings.TrimSpace(d.Identificacion),
		Celular:         strings.TrimSpace(d.TelefonoCelular),
		OtroTelefono:    strings.TrimSpace(d.OtroTelefono),
		Direccion:       strings.TrimSpace(d.Direccion),
		FNacimiento:     formatFecha(d.FNacimiento, time.RFC3339),
		FAfiliacion:     formatFecha(d.FAfiliacion, time.RFC3339),
		Sexo:            d.Sexo,
		ResennaPersonal: strings.TrimSpace(d.ResenaPersonal),
		Imagen:          d.Imagen,
		InteresFK:       d.InteresFK,
		UsuarioID:       userID,
	}
}
