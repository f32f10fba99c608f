package commands

import (
	"ClientAdmin/internal/config"
	"context"
	"fmt"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Drop the persisted session" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	e := newEnv(cfg)
	if !e.session.IsAuthenticated() {
		fmt.Fprintln(Out, "No active session")
		return nil
	}
	if err := e.session.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
