package cliente

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Errors maps a field name to a human-readable message. An absent key means
// the field is valid.
type Errors map[string]string

// OK reports whether the draft may be submitted.
func (e Errors) OK() bool { return len(e) == 0 }

const msgRequerido = "Requerido"

func msgMaximo(n int) string { return fmt.Sprintf("Máximo %d caracteres", n) }

// checkText applies the two independent string rules: required after trim,
// and the length bound. An over-long blank value ends up with the length
// message, matching the rule order of the original form.
func checkText(errs Errors, field, value string, max int) {
	if strings.TrimSpace(value) == "" {
		errs[field] = msgRequerido
	}
	if utf8.RuneCountInString(value) > max {
		errs[field] = msgMaximo(max)
	}
}

// Validate checks a draft field by field. Rules are independent; no rule
// looks at another field. Deterministic, no I/O.
func Validate(d Draft) Errors {
	errs := Errors{}
	checkText(errs, "nombre", d.Nombre, 50)
	checkText(errs, "apellidos", d.Apellidos, 100)
	checkText(errs, "identificacion", d.Identificacion, 20)
	checkText(errs, "telefonoCelular", d.TelefonoCelular, 20)
	checkText(errs, "otroTelefono", d.OtroTelefono, 20)
	checkText(errs, "direccion", d.Direccion, 200)
	checkText(errs, "resenaPersonal", d.ResenaPersonal, 200)
	if d.FNacimiento == nil {
		errs["fNacimiento"] = msgRequerido
	}
	if d.FAfiliacion == nil {
		errs["fAfiliacion"] = msgRequerido
	}
	if d.Sexo != "M" && d.Sexo != "F" {
		errs["sexo"] = msgRequerido
	}
	if strings.TrimSpace(d.InteresFK) == "" {
		errs["interesFK"] = msgRequerido
	}
	return errs
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	msgUsernameRequerido = "El nombre de usuario es requerido"
	msgCorreoRequerido   = "El correo es requerido"
	msgCorreoInvalido    = "Ingrese un correo válido"
	msgPasswordRequerida = "La contraseña es requerida"
	msgPasswordInvalida  = "La contraseña debe tener entre 8 y 20 caracteres, incluir números, mayúsculas y minúsculas"
)

// passwordOK demands: length strictly over 8 and at most 20, at least one
// digit, one uppercase and one lowercase letter.
func passwordOK(p string) bool {
	n := utf8.RuneCountInString(p)
	if n <= 8 || n > 20 {
		return false
	}
	var digit, upper, lower bool
	for _, r := range p {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		}
	}
	return digit && upper && lower
}

// ValidateRegistration checks an account-creation draft. A password breaking
// any constraint yields the single combined message naming all of them.
func ValidateRegistration(username, email, password string) Errors {
	errs := Errors{}
	if strings.TrimSpace(username) == "" {
		errs["username"] = msgUsernameRequerido
	}
	if strings.TrimSpace(email) == "" {
		errs["email"] = msgCorreoRequerido
	} else if !emailRe.MatchString(email) {
		errs["email"] = msgCorreoInvalido
	}
	if password == "" {
		errs["password"] = msgPasswordRequerida
	} else if !passwordOK(password) {
		errs["password"] = msgPasswordInvalida
	}
	return errs
}
