package commands

import (
	"ClientAdmin/internal/cli/api"
	"ClientAdmin/internal/cliente"
	"ClientAdmin/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
)

type clientGetCmd struct{}

func (clientGetCmd) Name() string        { return "client-get" }
func (clientGetCmd) Description() string { return "Show a single client record" }
func (clientGetCmd) Usage() string       { return "client-get <id>" }

func (clientGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	e := newEnv(cfg)
	if err := e.requireAuth(); err != nil {
		return err
	}

	rec, err := e.api.GetCliente(ctx, args[0])
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

	printRecord(Out, rec)
	return nil
}

func printRecord(w io.Writer, r cliente.Record) {
	fmt.Fprintf(w, "Id:              %s\n", r.ID)
	fmt.Fprintf(w, "Nombre:          %s\n", r.Nombre)
	fmt.Fprintf(w, "Apellidos:       %s\n", r.Apellidos)
	fmt.Fprintf(w, "Identificación:  %s\n", r.Identificacion)
	fmt.Fprintf(w, "Celular:         %s\n", r.TelefonoCelular)
	fmt.Fprintf(w, "Otro teléfono:   %s\n", r.OtroTelefono)
	fmt.Fprintf(w, "Dirección:       %s\n", r.Direccion)
	fmt.Fprintf(w, "F. nacimiento:   %s\n", shortDate(r.FNacimiento))
	fmt.Fprintf(w, "F. afiliación:   %s\n", shortDate(r.FAfiliacion))
	fmt.Fprintf(w, "Sexo:            %s\n", r.Sexo)
	fmt.Fprintf(w, "Interés:         %s\n", r.InteresesID)
	fmt.Fprintf(w, "Reseña:          %s\n", r.ResenaPersonal)
	if r.Imagen != "" {
		fmt.Fprintf(w, "Imagen:          (%d bytes)\n", len(r.Imagen))
	}
}

func init() { RegisterCmd(clientGetCmd{}) }
