package cliente

import "time"

// Record is a cliente as returned by the backend.
type Record struct {
	ID              string    `json:"id"`
	Nombre          string    `json:"nombre"`
	Apellidos       string    `json:"apellidos"`
	Identificacion  string    `json:"identificacion"`
	TelefonoCelular string    `json:"telefonoCelular"`
	OtroTelefono    string    `json:"otroTelefono"`
	Direccion       string    `json:"direccion"`
	FNacimiento     time.Time `json:"fNacimiento"`
	FAfiliacion     time.Time `json:"fAfiliacion"`
	Sexo            string    `json:"sexo"`
	ResenaPersonal  string    `json:"resenaPersonal"`
	Imagen          string    `json:"imagen"`
	InteresesID     string    `json:"interesesId"`
	UsuarioID       string    `json:"usuarioId"`
}

// FullName is the display name the list view shows and filters against.
func (r Record) FullName() string {
	return r.Nombre + " " + r.Apellidos
}

// Interest is read-only reference data for the client form.
type Interest struct {
	ID          string `json:"id"`
	Descripcion string `json:"descripcion"`
}

// Draft is an in-progress, not-yet-submitted record. Dates are nil until the
// user picks them; strings are kept as entered and trimmed only at submission.
type Draft struct {
	Nombre          string
	Apellidos       string
	Identificacion  string
	TelefonoCelular string
	OtroTelefono    string
	Direccion       string
	FNacimiento     *time.Time
	FAfiliacion     *time.Time
	Sexo            string
	ResenaPersonal  string
	Imagen          string
	InteresFK       string
}

// DraftFrom seeds an editable draft from a fetched record.
func DraftFrom(r Record) Draft {
	d := Draft{
		Nombre:          r.Nombre,
		Apellidos:       r.Apellidos,
		Identificacion:  r.Identificacion,
		TelefonoCelular: r.TelefonoCelular,
		OtroTelefono:    r.OtroTelefono,
		Direccion:       r.Direccion,
		Sexo:            r.Sexo,
		ResenaPersonal:  r.ResenaPersonal,
		Imagen:          r.Imagen,
		InteresFK:       r.InteresesID,
	}
	if !r.FNacimiento.IsZero() {
		t := r.FNacimiento
		d.FNacimiento = &t
	}
	if !r.FAfiliacion.IsZero() {
		t := r.FAfiliacion
		d.FAfiliacion = &t
	}
	return d
}
