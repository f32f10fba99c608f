package commands

import (
	"errors"
	"fmt"
	"os"

	"ClientAdmin/internal/cli/api"
	"ClientAdmin/internal/config"
	"ClientAdmin/internal/notify"
	"ClientAdmin/internal/session"

	"golang.org/x/term"
)

// env bundles the state containers every command works against: the API
// client, the restored session and the notification channel.
type env struct {
	api     *api.Client
	session *session.Store
	notes   *notify.Channel
}

var errNotLoggedIn = errors.New("not logged in (run: login <username>)")

// newEnv builds the per-invocation environment and restores any persisted
// session. The restore is purely local; no endpoint is called.
func newEnv(cfg *config.Config) *env {
	client := api.NewClient(cfg.ServerURL)
	store := session.NewStore(session.FSStore{}, client)
	store.Restore()
	if store.IsAuthenticated() {
		client.SetToken(store.Token())
	}
	return &env{api: client, session: store, notes: notify.NewChannel()}
}

// requireAuth fails fast for commands that need an authenticated session.
func (e *env) requireAuth() error {
	if !e.session.IsAuthenticated() {
		return errNotLoggedIn
	}
	return nil
}

// flush prints and dismisses the pending notification, if any.
func (e *env) flush() {
	e.notes.Render(Out)
}

// readPassword prompts without echo when stdin is a terminal, otherwise reads
// a plain line (so tests and pipes work).
func readPassword(prompt string) (string, error) {
	fmt.Fprint(Out, prompt)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(Out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	var line string
	if _, err := fmt.Fscanln(In, &line); err != nil {
		return "", err
	}
	return line, nil
}

// printFieldErrors lists validation errors one per line, stable order.
func printFieldErrors(errs map[string]string, order []string) {
	for _, f := range order {
		if msg, ok := errs[f]; ok {
			fmt.Fprintf(Out, "  %s: %s\n", f, msg)
		}
	}
}
