package commands

import (
	"ClientAdmin/internal/cli/api"
	"ClientAdmin/internal/cliente"
	"ClientAdmin/internal/config"
	"context"
	"errors"
	"flag"
	"fmt"
)

type clientAddCmd struct{}

func (clientAddCmd) Name() string        { return "client-add" }
func (clientAddCmd) Description() string { return "Create a new client record" }
func (clientAddCmd) Usage() string {
	return "client-add -nombre N -apellidos A -identificacion I -celular C -otro-telefono T -direccion D -fnac YYYY-MM-DD -fafi YYYY-MM-DD -sexo M|F -resena R -interes ID [-imagen FILE]"
}

func (clientAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("client-add", flag.ContinueOnError)
	fs.SetOutput(Out)
	var df draftFlags
	df.register(fs)
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 0 {
		return ErrUsage
	}

	e := newEnv(cfg)
	if err := e.requireAuth(); err != nil {
		return err
	}

	var d cliente.Draft
	if err := df.apply(fs, &d); err != nil {
		return err
	}

	// nothing goes on the wire until the draft validates
	if errs := cliente.Validate(d); !errs.OK() {
		fmt.Fprintln(Out, "Datos inválidos:")
		printFieldErrors(errs, draftFieldOrder)
		return errors.New("validation failed")
	}

	rec, err := e.api.CrearCliente(ctx, cliente.NewCreatePayload(d, e.session.UserID()))
	if err != nil {
		var se *api.ErrServer
		if errors.As(err, &se) && se.Message != "" {
			e.notes.Error(se.Message)
		} else {
			e.notes.Error("Error al guardar cliente")
		}
		e.flush()
		return err
	}

	e.notes.Success("Cliente guardado correctamente")
	e.flush()
	fmt.Fprintf(Out, "Id: %s\n", rec.ID)
	return nil
}

func init() { RegisterCmd(clientAddCmd{}) }
