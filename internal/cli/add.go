package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/futurama-catalog/internal/models"
	"github.com/dmitrijs2005/futurama-catalog/internal/query"
)

// Add walks the user through the character wizard and creates the
// character in the store.
func (a *App) Add(ctx context.Context) error {
	d, err := a.readDraft()
	if err != nil {
		return err
	}

	c, err := a.store.CreateCharacter(ctx, d)
	if err != nil {
		return fmt.Errorf("create character: %w", err)
	}

	a.println(a.styles.Success.Render(fmt.Sprintf("Created #%d %s.", c.ID, c.Name.Full())))
	return nil
}

func (a *App) readDraft() (models.Draft, error) {
	var (
		d   models.Draft
		err error
	)
	w := a.out

	a.println(a.styles.Title.Render("New character") + " (optional fields may be left empty)")

	if d.FirstName, err = GetRequiredText(a.reader, "First name", w); err != nil {
		return d, err
	}
	if d.LastName, err = GetSimpleText(a.reader, "Last name", w); err != nil {
		return d, err
	}
	if d.Species, err = GetChoice(a.reader, "Species", query.SpeciesOptions, true, w); err != nil {
		return d, err
	}
	if d.Gender, err = GetChoice(a.reader, "Gender", query.GenderOptions, true, w); err != nil {
		return d, err
	}
	if d.Occupation, err = GetSimpleText(a.reader, "Occupation", w); err != nil {
		return d, err
	}
	if d.HomePlanet, err = GetSimpleText(a.reader, "Home planet", w); err != nil {
		return d, err
	}
	if d.Age, err = GetOptionalInt(a.reader, "Age", w); err != nil {
		return d, err
	}
	if d.EyeColor, err = GetSimpleText(a.reader, "Eye color", w); err != nil {
		return d, err
	}
	if d.HairColor, err = GetSimpleText(a.reader, "Hair color", w); err != nil {
		return d, err
	}
	if d.Species == "Robot" {
		if d.ModelNumber, err = GetSimpleText(a.reader, "Model number", w); err != nil {
			return d, err
		}
	}
	if d.Skills, err = GetList(a.reader, "Skills", w); err != nil {
		return d, err
	}
	if d.Description, err = GetMultiline(a.reader, "Description", w); err != nil {
		return d, err
	}
	return d, nil
}
