package commands

import (
	"ClientAdmin/internal/cli/api"
	"ClientAdmin/internal/cliente"
	"ClientAdmin/internal/config"
	"context"
	"errors"
	"fmt"
)

// loginErrorMessage prefers the backend's own message and falls back to the
// generic localized one.
func loginErrorMessage(err error) string {
	var se *api.ErrServer
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return "Error al iniciar sesión"
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create a new account" }
func (registerCmd) Usage() string       { return "register <username> <email> [password]" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	username, email := args[0], args[1]

	var password string
	if len(args) == 3 {
		password = args[2]
	} else {
		p, err := readPassword("Password: ")
		if err != nil {
			return err
		}
		password = p
	}

	// local validation never reaches the network
	if errs := cliente.ValidateRegistration(username, email, password); !errs.OK() {
		fmt.Fprintln(Out, "Datos inválidos:")
		printFieldErrors(errs, []string{"username", "email", "password"})
		return errors.New("validation failed")
	}

	e := newEnv(cfg)
	if err := e.session.Register(ctx, username, email, password); err != nil {
		var se *api.ErrServer
		if errors.As(err, &se) && se.Message != "" {
			e.notes.Error(se.Message)
		} else {
			e.notes.Error("Error al registrar usuario")
		}
		e.flush()
		return err
	}

	e.notes.Success("Usuario creado correctamente")
	e.flush()
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
