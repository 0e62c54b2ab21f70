package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/futurama-catalog/internal/models"
	"github.com/dmitrijs2005/futurama-catalog/internal/stats"
)

// Stats prints the dashboard summary of the characters matching the current
// search and filters (the whole catalog when none are set).
func (a *App) Stats(ctx context.Context) error {
	s := stats.Summarize(a.matching())

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Total characters\t%d\n", s.Total)
	fmt.Fprintf(tw, "Average age\t%d\n", s.AverageAge)
	fmt.Fprintf(tw, "Gender\tmale %d%%, female %d%%, other %d%%\n", s.Gender.Male, s.Gender.Female, s.Gender.Other)
	fmt.Fprintf(tw, "Most common species\t%s\n", s.MostCommonSpecies)
	fmt.Fprintf(tw, "Most common occupation\t%s\n", s.MostCommonOccupation)
	fmt.Fprintf(tw, "Most common planet\t%s\n", s.MostCommonPlanet)
	return tw.Flush()
}

// Counts prints the number of matching characters per value of field.
func (a *App) Counts(ctx context.Context, field string) error {
	f, err := stats.ParseField(field)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, c := range stats.CountBy(a.matching(), f) {
		fmt.Fprintf(tw, "%s\t%d\n", c.Value, c.Count)
	}
	return tw.Flush()
}

// matching returns the pipeline's filtered result and notes when filters
// narrow it.
func (a *App) matching() []models.Character {
	items := a.pipeline.Results().Value()
	c := a.pipeline.Controls()
	if c.SearchTerm != "" || c.GenderFilter != "" || c.SpeciesFilter != "" {
		a.println(a.styles.Muted.Render(fmt.Sprintf("%d matching characters (use 'clear' for all)", len(items))))
	}
	return items
}

// Show prints every attribute of one character.
func (a *App) Show(ctx context.Context, id string) error {
	n, err := strconv.Atoi(strings.TrimPrefix(id, "#"))
	if err != nil {
		return fmt.Errorf("invalid id: %q", id)
	}

	for _, c := range a.store.CurrentCatalog() {
		if c.ID == n {
			a.printCharacter(c)
			return nil
		}
	}
	return fmt.Errorf("character %d not found", n)
}

func (a *App) printCharacter(c models.Character) {
	a.println(a.styles.Title.Render(fmt.Sprintf("#%d %s", c.ID, c.Name.Full())))

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	row := func(k, v string) {
		if v != "" {
			fmt.Fprintf(tw, "%s\t%s\n", k, v)
		}
	}
	row("Age", c.Age)
	row("Gender", c.Gender)
	row("Species", c.Species)
	row("Home planet", c.HomePlanet)
	row("Occupation", c.Occupation)
	row("Eye color", c.EyeColor)
	row("Hair color", c.HairColor)
	row("Model number", c.ModelNumber)
	row("Skills", strings.Join(c.Skills, ", "))
	row("Image", c.Images.Main)
	_ = tw.Flush()

	if saying := models.RandomSaying(c, nil); saying != "" {
		a.println(a.styles.Quote.Render(fmt.Sprintf("%q", saying)))
	}
}
