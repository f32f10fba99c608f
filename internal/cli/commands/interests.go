package commands

import (
	"ClientAdmin/internal/config"
	"context"
	"fmt"
)

type interestsCmd struct{}

func (interestsCmd) Name() string        { return "interests" }
func (interestsCmd) Description() string { return "List the available interest options" }
func (interestsCmd) Usage() string       { return "interests" }

func (interestsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	e := newEnv(cfg)
	if err := e.requireAuth(); err != nil {
		return err
	}

	list, err := e.api.ListIntereses(ctx)
	if err != nil {
		e.notes.Error("Error al cargar intereses")
		e.flush()
		return err
	}
	for _, it := range list {
		fmt.Fprintf(Out, "%s\t%s\n", it.ID, it.Descripcion)
	}
	return nil
}

func init() { RegisterCmd(interestsCmd{}) }
