package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/futurama-catalog/internal/query"
)

// List prints the current page of the query result.
func (a *App) List(ctx context.Context) error {
	v := a.pipeline.View()

	a.println(a.styles.Muted.Render(describeControls(v.Controls)))
	if v.Total == 0 {
		a.println("No characters match.")
		return nil
	}
	if len(v.Items) == 0 {
		a.println(fmt.Sprintf("Page %d is empty (%d pages).", v.Page, v.TotalPages))
		return nil
	}

	// align first, then style whole lines so escape codes do not skew columns
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSPECIES\tGENDER\tAGE\tOCCUPATION")
	for _, c := range v.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name.Full(), c.Species, c.Gender, c.Age, c.Occupation)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	a.println(a.styles.Header.Render(lines[0]))
	for _, l := range lines[1:] {
		a.println(l)
	}

	a.println(fmt.Sprintf("Page %d/%d, %d characters", v.Page, v.TotalPages, v.Total))
	return nil
}

func (a *App) Search(ctx context.Context, term string) error {
	a.pipeline.SetSearchTerm(term)
	return a.List(ctx)
}

func (a *App) Gender(ctx context.Context, gender string) error {
	a.pipeline.SetGenderFilter(gender)
	return a.List(ctx)
}

func (a *App) Species(ctx context.Context, species string) error {
	a.pipeline.SetSpeciesFilter(species)
	return a.List(ctx)
}

// Sort changes the sort order and keeps the page.
func (a *App) Sort(ctx context.Context, field, direction string) error {
	f, err := query.ParseField(field)
	if err != nil {
		return err
	}
	d, err := query.ParseDirection(direction)
	if err != nil {
		return err
	}
	a.pipeline.SetSort(f, d)
	return a.List(ctx)
}

func (a *App) Clear(ctx context.Context) error {
	a.pipeline.ClearFilters()
	return a.List(ctx)
}

func (a *App) Page(ctx context.Context, n string) error {
	page, err := strconv.Atoi(n)
	if err != nil {
		return fmt.Errorf("invalid page number: %q", n)
	}
	a.pipeline.SetPage(page)
	return a.List(ctx)
}

func (a *App) Next(ctx context.Context) error {
	if !a.pipeline.NextPage() {
		return errors.New("already on the last page")
	}
	return a.List(ctx)
}

func (a *App) Prev(ctx context.Context) error {
	if !a.pipeline.PrevPage() {
		return errors.New("already on the first page")
	}
	return a.List(ctx)
}

// Reload fetches the catalog again. The pipeline picks up the new entities
// through its subscription.
func (a *App) Reload(ctx context.Context) error {
	a.println("Loading characters...")
	items, err := a.store.LoadCatalog(ctx)
	if err != nil {
		a.logger.Debug(ctx, "reload failed", "error", err)
		return err
	}
	a.println(a.styles.Success.Render(fmt.Sprintf("Loaded %d characters.", len(items))))
	return nil
}

func describeControls(c query.Controls) string {
	s := fmt.Sprintf("sort: %s %s", c.SortField, c.SortDirection)
	if c.SearchTerm != "" {
		s += fmt.Sprintf(", search: %q", c.SearchTerm)
	}
	if c.GenderFilter != "" {
		s += ", gender: " + c.GenderFilter
	}
	if c.SpeciesFilter != "" {
		s += ", species: " + c.SpeciesFilter
	}
	return s
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}
