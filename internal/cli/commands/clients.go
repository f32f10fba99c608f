package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"ClientAdmin/internal/cli/api"
	"ClientAdmin/internal/cliente"
	"ClientAdmin/internal/config"
)

type clientsCmd struct{}

func (clientsCmd) Name() string        { return "clients" }
func (clientsCmd) Description() string { return "Browse the client roster interactively" }
func (clientsCmd) Usage() string       { return "clients" }

const clientsHelp = `  n [text]   type the name filter (empty clears it at once)
  i [text]   type the identification filter (empty clears it at once)
  s          search: apply the typed filters
  size N     page size (10, 20 or 30)
  <  >       previous / next page
  p N        go to page N
  v N        view row N of the current page
  d N        remove row N from this view (the record stays on the server)
  r          reload from the server
  q          quit`

func (clientsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	e := newEnv(cfg)
	if err := e.requireAuth(); err != nil {
		return err
	}

	roster := cliente.NewRoster()
	if err := reload(ctx, e, roster); err != nil {
		e.flush()
		return err
	}

	renderRoster(e, roster)

	sc := bufio.NewScanner(In)
	for {
		fmt.Fprint(Out, "> ")
		if !sc.Scan() {
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch cmd {
		case "q", "quit":
			return nil
		case "", "h", "help":
			fmt.Fprintln(Out, clientsHelp)
			continue
		case "n":
			roster.StageNombre(rest)
		case "i":
			roster.StageIdentificacion(rest)
		case "s":
			roster.Search()
		case "size":
			n, err := strconv.Atoi(rest)
			if err != nil {
				e.notes.Warning("Uso: size 10|20|30")
			} else {
				roster.SetPageSize(n)
			}
		case "<":
			roster.PrevPage()
		case ">":
			roster.NextPage()
		case "p":
			n, err := strconv.Atoi(rest)
			if err != nil {
				e.notes.Warning("Uso: p N")
			} else {
				roster.SetPage(n - 1)
			}
		case "v":
			if rec, ok := rowAt(roster, rest); ok {
				printRecord(Out, rec)
			} else {
				e.notes.Warning("Fila inválida")
			}
		case "d":
			removeRow(sc, e, roster, rest)
		case "r":
			if err := reload(ctx, e, roster); err == nil {
				e.notes.Info("Lista recargada")
			}
		default:
			e.notes.Warning(fmt.Sprintf("Comando desconocido: %s", cmd))
		}

		renderRoster(e, roster)
	}
}

// reload fetches the full roster for the session user. The list-view filters
// stay local; the server is only asked to scope by owner.
func reload(ctx context.Context, e *env, roster *cliente.Roster) error {
	records, err := e.api.ListClientes(ctx, api.ListadoFilter{UsuarioID: e.session.UserID()})
	if err != nil {
		var se *api.ErrServer
		if errors.As(err, &se) && se.Message != "" {
			e.notes.Error(se.Message)
		} else {
			e.notes.Error("Error al cargar clientes")
		}
		return err
	}
	roster.Replace(records)
	return nil
}

// rowAt resolves a 1-based row number on the current page.
func rowAt(roster *cliente.Roster, arg string) (cliente.Record, bool) {
	n, err := strconv.Atoi(arg)
	page := roster.Page()
	if err != nil || n < 1 || n > len(page) {
		return cliente.Record{}, false
	}
	return page[n-1], true
}

// removeRow confirms and drops a record from the local snapshot. No request
// goes to the server.
func removeRow(sc *bufio.Scanner, e *env, roster *cliente.Roster, arg string) {
	rec, ok := rowAt(roster, arg)
	if !ok {
		e.notes.Warning("Fila inválida")
		return
	}
	fmt.Fprintf(Out, "¿Quitar a %s de la lista? [y/N] ", rec.FullName())
	if !sc.Scan() {
		return
	}
	answer := strings.ToLower(strings.TrimSpace(sc.Text()))
	if answer != "y" && answer != "s" {
		return
	}
	roster.Remove(rec.ID)
	e.notes.Info("Cliente quitado de la vista")
}

func renderRoster(e *env, roster *cliente.Roster) {
	e.flush()

	staged := roster.Staged()
	if staged.Nombre != "" || staged.Identificacion != "" {
		fmt.Fprintf(Out, "Filtros: nombre=%q identificacion=%q\n", staged.Nombre, staged.Identificacion)
	}

	tw := tabwriter.NewWriter(Out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tId\tNombre\tIdentificación\tCelular")
	for i, rec := range roster.Page() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, rec.ID, rec.FullName(), rec.Identificacion, rec.TelefonoCelular)
	}
	tw.Flush()

	total := roster.Total()
	pages := (total + roster.PageSize() - 1) / roster.PageSize()
	if pages == 0 {
		pages = 1
	}
	fmt.Fprintf(Out, "página %d/%d (%d clientes)\n", roster.PageIndex()+1, pages, total)
}

func init() { RegisterCmd(clientsCmd{}) }
