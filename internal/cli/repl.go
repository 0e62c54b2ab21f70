package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/futurama-catalog/internal/catalog"
)

// printlnFn is a test seam for REPL-level output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Sort(ctx context.Context, field, direction string) error
	Gender(ctx context.Context, gender string) error
	Species(ctx context.Context, species string) error
	Clear(ctx context.Context) error
	Page(ctx context.Context, n string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Add(ctx context.Context) error
	Reload(ctx context.Context) error
	Stats(ctx context.Context) error
	Counts(ctx context.Context, field string) error
	Show(ctx context.Context, id string) error
}

const helpText = `Available commands:
  list                      show the current page
  search <text>             filter by name, occupation or species ("search" alone clears)
  gender [value]            exact gender filter (no value clears)
  species [value]           exact species filter (no value clears)
  sort <field> [asc|desc]   name, age, gender, species, occupation
  clear                     reset search, filters and sort
  page <n> | next | prev    move between pages
  add                       create a character
  reload                    fetch the catalog again
  stats                     dashboard summary
  counts <field>            counts by gender, species, occupation or planet
  show <id>                 character details
  exit | quit               leave the program`

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF or when the user types "exit" or "quit". Command
// errors are printed and the loop continues.
//
// promptFn is printed before every read unless it returns "".
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		if p := promptFn(); p != "" {
			printlnFn(p)
		}

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		var cmdErr error
		switch cmd {
		case "help", "?":
			printlnFn(helpText)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "search":
			cmdErr = a.Search(ctx, strings.Join(args, " "))

		case "gender":
			cmdErr = a.Gender(ctx, strings.Join(args, " "))

		case "species":
			cmdErr = a.Species(ctx, strings.Join(args, " "))

		case "sort":
			if len(args) == 0 {
				printlnFn("Usage: sort <field> [asc|desc]")
				continue
			}
			dir := "asc"
			if len(args) > 1 {
				dir = args[1]
			}
			cmdErr = a.Sort(ctx, args[0], dir)

		case "clear":
			cmdErr = a.Clear(ctx)

		case "page":
			if len(args) == 0 {
				printlnFn("Usage: page <n>")
				continue
			}
			cmdErr = a.Page(ctx, args[0])

		case "n", "next":
			cmdErr = a.Next(ctx)

		case "p", "prev":
			cmdErr = a.Prev(ctx)

		case "add":
			cmdErr = a.Add(ctx)

		case "reload":
			cmdErr = a.Reload(ctx)

		case "stats":
			cmdErr = a.Stats(ctx)

		case "counts":
			if len(args) == 0 {
				printlnFn("Usage: counts <gender|species|occupation|planet>")
				continue
			}
			cmdErr = a.Counts(ctx, args[0])

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			cmdErr = a.Show(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("error:", userMessage(cmdErr))
		}
		if err != nil {
			return
		}
	}
}

// userMessage hides the cause of load failures behind their fixed message.
func userMessage(err error) string {
	var loadErr *catalog.LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Message
	}
	return err.Error()
}
