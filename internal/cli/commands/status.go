package commands

import (
	"ClientAdmin/internal/config"
	"context"
	"fmt"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show session and server info" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	e := newEnv(cfg)

	fmt.Fprintf(Out, "Server: %s\n", cfg.ServerURL)
	if user, ok := e.session.User(); ok {
		fmt.Fprintf(Out, "Logged in as: %s (%s)\n", user.Username, user.UserID)
	} else {
		fmt.Fprintln(Out, "Not logged in")
	}
	if remembered := e.session.RememberedUser(); remembered != "" {
		fmt.Fprintf(Out, "Remembered username: %s\n", remembered)
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
