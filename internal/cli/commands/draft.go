package commands

import (
	"encoding/base64"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"ClientAdmin/internal/cliente"
)

const fechaCorta = "2006-01-02"

func shortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(fechaCorta)
}

func parseFecha(s string) (*time.Time, error) {
	t, err := time.Parse(fechaCorta, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return &t, nil
}

// imageDataURL reads a local image file and encodes it the way the backend
// stores images: a data URL with the sniffed content type.
func imageDataURL(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	mime := http.DetectContentType(b)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}

// draftFlags binds the client form fields to a flag set. The same set serves
// both create (all fields start empty) and edit (fields start from the fetched
// record, flags override only what was passed).
type draftFlags struct {
	nombre, apellidos, identificacion string
	celular, otroTelefono, direccion  string
	fNacimiento, fAfiliacion          string
	sexo, resena, interes, imagenPath string
}

func (df *draftFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&df.nombre, "nombre", "", "first name")
	fs.StringVar(&df.apellidos, "apellidos", "", "last names")
	fs.StringVar(&df.identificacion, "identificacion", "", "identification number")
	fs.StringVar(&df.celular, "celular", "", "cell phone")
	fs.StringVar(&df.otroTelefono, "otro-telefono", "", "alternate phone")
	fs.StringVar(&df.direccion, "direccion", "", "address")
	fs.StringVar(&df.fNacimiento, "fnac", "", "birth date (YYYY-MM-DD)")
	fs.StringVar(&df.fAfiliacion, "fafi", "", "affiliation date (YYYY-MM-DD)")
	fs.StringVar(&df.sexo, "sexo", "", "sex (M or F)")
	fs.StringVar(&df.resena, "resena", "", "personal review")
	fs.StringVar(&df.interes, "interes", "", "interest id")
	fs.StringVar(&df.imagenPath, "imagen", "", "path to an image file")
}

// apply copies the flags the user actually set onto the draft. Dates are
// parsed and the image path is read and encoded.
func (df *draftFlags) apply(fs *flag.FlagSet, d *cliente.Draft) error {
	var applyErr error
	fs.Visit(func(f *flag.Flag) {
		if applyErr != nil {
			return
		}
		switch f.Name {
		case "nombre":
			d.Nombre = df.nombre
		case "apellidos":
			d.Apellidos = df.apellidos
		case "identificacion":
			d.Identificacion = df.identificacion
		case "celular":
			d.TelefonoCelular = df.celular
		case "otro-telefono":
			d.OtroTelefono = df.otroTelefono
		case "direccion":
			d.Direccion = df.direccion
		case "fnac":
			d.FNacimiento, applyErr = parseFecha(df.fNacimiento)
		case "fafi":
			d.FAfiliacion, applyErr = parseFecha(df.fAfiliacion)
		case "sexo":
			d.Sexo = df.sexo
		case "resena":
			d.ResenaPersonal = df.resena
		case "interes":
			d.InteresFK = df.interes
		case "imagen":
			d.Imagen, applyErr = imageDataURL(df.imagenPath)
		}
	})
	return applyErr
}

// draftFieldOrder is the display order for validation errors, matching the
// form layout.
var draftFieldOrder = []string{
	"nombre", "apellidos", "identificacion", "telefonoCelular",
	"otroTelefono", "direccion", "fNacimiento", "fAfiliacion",
	"sexo", "resenaPersonal", "interesFK",
}
