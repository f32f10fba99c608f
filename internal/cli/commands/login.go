package commands

import (
	"ClientAdmin/internal/config"
	"context"
	"flag"
	"fmt"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Log in and persist the session" }
func (loginCmd) Usage() string       { return "login [-remember] [username] [password]" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(Out)
	remember := fs.Bool("remember", false, "remember the username for the next login")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()
	if len(rest) > 2 {
		return ErrUsage
	}

	e := newEnv(cfg)

	username := ""
	if len(rest) >= 1 {
		username = rest[0]
	} else if remembered := e.session.RememberedUser(); remembered != "" {
		// pre-fill from the independently persisted username
		username = remembered
		fmt.Fprintf(Out, "Using remembered username %q\n", username)
	}
	if username == "" {
		return ErrUsage
	}

	var password string
	if len(rest) == 2 {
		password = rest[1]
	} else {
		p, err := readPassword("Password: ")
		if err != nil {
			return err
		}
		password = p
	}

	if err := e.session.Login(ctx, username, password, *remember); err != nil {
		e.notes.Error(loginErrorMessage(err))
		e.flush()
		return err
	}

	user, _ := e.session.User()
	e.notes.Success(fmt.Sprintf("Sesión iniciada como %s", user.Username))
	e.flush()
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
