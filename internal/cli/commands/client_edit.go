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

type clientEditCmd struct{}

func (clientEditCmd) Name() string        { return "client-edit" }
func (clientEditCmd) Description() string { return "Fetch a client record and update some of its fields" }
func (clientEditCmd) Usage() string {
	return "client-edit <id> [-nombre N] [-apellidos A] [-identificacion I] [-celular C] [-otro-telefono T] [-direccion D] [-fnac YYYY-MM-DD] [-fafi YYYY-MM-DD] [-sexo M|F] [-resena R] [-interes ID] [-imagen FILE]"
}

func (clientEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id := args[0]

	fs := flag.NewFlagSet("client-edit", flag.ContinueOnError)
	fs.SetOutput(Out)
	var df draftFlags
	df.register(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 0 {
		return ErrUsage
	}

	e := newEnv(cfg)
	if err := e.requireAuth(); err != nil {
		return err
	}

	// the edit form always starts from the fetched record
	rec, err := e.api.GetCliente(ctx, id)
	if err != nil {
		var se *api.ErrServer
		if errors.As(err, &se) && se.Message != "" {
			e.notes.Error(se.Message)
		} else {
			e.notes.Error("Error al cargar cliente")
		}
		e.flush()
		return err
	}

	d := cliente.DraftFrom(rec)
	if err := df.apply(fs, &d); err != nil {
		return err
	}

	if errs := cliente.Validate(d); !errs.OK() {
		fmt.Fprintln(Out, "Datos inválidos:")
		printFieldErrors(errs, draftFieldOrder)
		return errors.New("validation failed")
	}

	if _, err := e.api.ActualizarCliente(ctx, cliente.NewUpdatePayload(d, rec.ID, e.session.UserID())); err != nil {
		var se *api.ErrServer
		if errors.As(err, &se) && se.Message != "" {
			e.notes.Error(se.Message)
		} else {
			e.notes.Error("Error al guardar cliente")
		}
		e.flush()
		return err
	}

	e.notes.Success("Cliente actualizado correctamente")
	e.flush()
	return nil
}

func init() { RegisterCmd(clientEditCmd{}) }
