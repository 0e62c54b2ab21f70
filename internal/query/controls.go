package query

import (
	"fmt"
	"strings"
)

// Field is a sortable character attribute.
type Field string

const (
	FieldName       Field = "name"
	FieldAge        Field = "age"
	FieldGender     Field = "gender"
	FieldSpecies    Field = "species"
	FieldOccupation Field = "occupation"
)

// SortFields lists the accepted sort fields in display order.
var SortFields = []Field{FieldName, FieldAge, FieldGender, FieldSpecies, FieldOccupation}

// Options offered by the filter controls.
var (
	GenderOptions  = []string{"Male", "Female", "Robot"}
	SpeciesOptions = []string{"Human", "Robot", "Mutant", "Martian", "Decapodian", "Omicronian", "Amphibiosans"}
)

// ParseField validates a sort field name (case-insensitive).
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SortFields {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid sort field: %q", s)
}

// Direction is the sort order.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection accepts asc/ascending and desc/descending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return "", fmt.Errorf("invalid sort direction: %q", s)
	}
}

// Controls are the user-adjustable query parameters.
type Controls struct {
	SearchTerm    string
	SortField     Field
	SortDirection Direction
	GenderFilter  string
	SpeciesFilter string
}

// DefaultControls sorts by name ascending with no filters.
func DefaultControls() Controls {
	return Controls{SortField: FieldName, SortDirection: Ascending}
}
