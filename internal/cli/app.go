package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/futurama-catalog/internal/catalog"
	"github.com/dmitrijs2005/futurama-catalog/internal/logging"
	"github.com/dmitrijs2005/futurama-catalog/internal/models"
	"github.com/dmitrijs2005/futurama-catalog/internal/observable"
	"github.com/dmitrijs2005/futurama-catalog/internal/query"
	"golang.org/x/term"
)

// catalogStore is the part of catalog.Store the CLI uses.
type catalogStore interface {
	LoadCatalog(ctx context.Context) ([]models.Character, error)
	CreateCharacter(ctx context.Context, d models.Draft) (models.Character, error)
	CurrentCatalog() []models.Character
	Loading() observable.Observable[bool]
	Err() observable.Observable[*catalog.LoadError]
}

// App is the REPL state: the store and pipeline it drives plus its I/O.
type App struct {
	store    catalogStore
	pipeline *query.Pipeline
	logger   logging.Logger

	reader      *bufio.Reader
	out         io.Writer
	interactive bool
	styles      styles
}

// NewApp builds an App reading commands from in and writing to out. Prompts
// are only printed when in is a terminal.
func NewApp(store catalogStore, pipeline *query.Pipeline, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		store:       store,
		pipeline:    pipeline,
		logger:      logger.With("component", "cli"),
		reader:      bufio.NewReader(in),
		out:         out,
		interactive: isTerminal(in),
		styles:      newStyles(),
	}
}

// Run performs the initial load and then serves commands until exit or EOF.
// A failed initial load is reported but does not stop the REPL; the user can
// retry with "reload".
func (a *App) Run(ctx context.Context) {
	a.println(a.styles.Title.Render("Futurama character catalog") + " (type 'help' for commands)")
	if err := a.Reload(ctx); err != nil {
		a.println(a.styles.Error.Render("error: " + userMessage(err)))
	} else {
		_ = a.List(ctx)
	}
	runREPL(ctx, a, a.prompt, a.reader)
}

func (a *App) prompt() string {
	if !a.interactive {
		return ""
	}
	return "catalog " + a.status() + "> "
}

func (a *App) status() string {
	switch {
	case a.store.Loading().Value():
		return "(loading)"
	case a.store.Err().Value() != nil:
		return "(error)"
	}
	v := a.pipeline.View()
	if v.TotalPages == 0 {
		return "(0 characters)"
	}
	return fmt.Sprintf("(%d characters, page %d/%d)", v.Total, v.Page, v.TotalPages)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
