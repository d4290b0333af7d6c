package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/sitekeeper/internal/client/auth"
	"github.com/dmitrijs2005/sitekeeper/internal/client/config"
	"github.com/dmitrijs2005/sitekeeper/internal/client/geo"
	"github.com/dmitrijs2005/sitekeeper/internal/client/insight"
	"github.com/dmitrijs2005/sitekeeper/internal/client/services"
	"github.com/dmitrijs2005/sitekeeper/internal/client/storage"
	"github.com/dmitrijs2005/sitekeeper/internal/client/store"
	"github.com/dmitrijs2005/sitekeeper/internal/common"
	"github.com/dmitrijs2005/sitekeeper/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	state   *services.State
	dir     services.Directory
	flow    *auth.Flow
	auditor *services.Auditor
	locator geo.Locator
	shift   *services.Shift

	in  *bufio.Scanner
	tty io.Reader
	out io.Writer

	// interactive selects the full-screen two-factor prompt.
	interactive bool
}

// NewApp opens the local database at the configured path and wires the
// services on top of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	path, err := c.DBPath()
	if err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	log.Debug(ctx, "database ready", "path", path)

	s := store.New(db, log)
	st, err := services.NewState(ctx, s, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if keys, err := s.Keys(ctx); err == nil {
		log.Debug(ctx, "records loaded", "keys", keys)
	}

	a := newApp(c, log, st, services.NewDirectory(s),
		insight.NewGenAIGenerator(c.GenAIAPIKey, c.GenAIModel), locatorFor(c),
		os.Stdin, os.Stdout)
	a.db = db
	a.interactive = isTerminal(int(os.Stdin.Fd()))
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, st *services.State, dir services.Directory,
	gen insight.Generator, loc geo.Locator, in io.Reader, out io.Writer) *App {
	return &App{
		config:  c,
		log:     log,
		state:   st,
		dir:     dir,
		flow:    auth.NewFlow(dir, st, log),
		auditor: services.NewAuditor(gen, st, log),
		locator: loc,
		shift:   services.NewShift(loc, log),
		in:      bufio.NewScanner(in),
		tty:     in,
		out:     out,
	}
}

// locatorFor picks the HTTP locator when an endpoint is configured, then a
// fixed position, and otherwise none.
func locatorFor(c *config.Config) geo.Locator {
	switch {
	case c.LocatorURL != "":
		return geo.NewHTTPLocator(c.LocatorURL, c.RequestTimeout)
	case c.HasPosition:
		return &geo.StaticLocator{Coords: geo.Coordinates{Lat: c.Latitude, Lon: c.Longitude}}
	default:
		return nil
	}
}

// Run greets the user and serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) {
	a.println(a.styles().title.Render(common.AppName+" console") + a.styles().muted.Render(" (type 'help' for commands)"))
	runREPL(ctx, a, a.status, a.in)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// status is the prompt decoration: who is signed in, or which form is open.
func (a *App) status() string {
	switch a.flow.State() {
	case auth.LoggedIn:
		if s := a.state.Session(); s != nil {
			return fmt.Sprintf("(%s %s)", s.ID, s.Role.Label())
		}
		return ""
	case auth.AwaitingTwoFactor:
		return "(verification)"
	default:
		portal := "admin"
		if !a.flow.AdminPanel() {
			portal = "staff"
		}
		return fmt.Sprintf("(%s portal)", portal)
	}
}

func (a *App) styles() styles {
	return newStyles(a.state.Theme())
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// printTable renders rows under headers with the current theme.
func (a *App) printTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		a.println(a.styles().muted.Render("(none)"))
		return
	}
	st := a.styles()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.title.Padding(0, 1)
			}
			return cellStyle
		})
	a.println(t.String())
}

func (a *App) prompt(label string) (string, error) {
	return getSimpleText(a.in, label, a.out)
}

func (a *App) promptOptional(label string) (string, error) {
	v, err := a.prompt(label + " (optional)")
	return strings.TrimSpace(v), err
}
