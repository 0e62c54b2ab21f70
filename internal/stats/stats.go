// Package stats computes dashboard aggregates over a character list.
package stats

import (
	"fmt"
	"math"
	"strings"

	"github.com/dmitrijs2005/futurama-catalog/internal/models"
	"github.com/dmitrijs2005/futurama-catalog/internal/query"
)

// NotAvailable is reported for "most common" values of an empty list.
const NotAvailable = "N/A"

// GenderSplit holds rounded percentages; they need not sum to 100.
type GenderSplit struct {
	Male   int
	Female int
	Other  int
}

// Summary is the dashboard overview.
type Summary struct {
	Total                int
	AverageAge           int
	Gender               GenderSplit
	MostCommonSpecies    string
	MostCommonOccupation string
	MostCommonPlanet     string
}

// Summarize builds the dashboard overview. The average only counts ages with
// a positive leading integer.
func Summarize(items []models.Character) Summary {
	s := Summary{
		Total:                len(items),
		MostCommonSpecies:    NotAvailable,
		MostCommonOccupation: NotAvailable,
		MostCommonPlanet:     NotAvailable,
	}
	if len(items) == 0 {
		return s
	}

	sum, n := 0, 0
	var male, female, other int
	for _, c := range items {
		if age := query.ParseAge(c.Age); age > 0 {
			sum += age
			n++
		}
		switch strings.ToLower(c.Gender) {
		case "male":
			male++
		case "female":
			female++
		default:
			other++
		}
	}
	if n > 0 {
		s.AverageAge = round(float64(sum) / float64(n))
	}

	total := float64(len(items))
	s.Gender = GenderSplit{
		Male:   round(float64(male) / total * 100),
		Female: round(float64(female) / total * 100),
		Other:  round(float64(other) / total * 100),
	}

	s.MostCommonSpecies = mostCommon(CountBy(items, FieldSpecies))
	s.MostCommonOccupation = mostCommon(CountBy(items, FieldOccupation))
	s.MostCommonPlanet = mostCommon(CountBy(items, FieldHomePlanet))
	return s
}

// Field selects the attribute CountBy groups on.
type Field string

const (
	FieldGender     Field = "gender"
	FieldSpecies    Field = "species"
	FieldOccupation Field = "occupation"
	FieldHomePlanet Field = "homePlanet"
)

// ParseField accepts gender, species, occupation and planet/homePlanet.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gender":
		return FieldGender, nil
	case "species":
		return FieldSpecies, nil
	case "occupation":
		return FieldOccupation, nil
	case "planet", "homeplanet":
		return FieldHomePlanet, nil
	default:
		return "", fmt.Errorf("invalid count field: %q", s)
	}
}

// Count is one group of CountBy.
type Count struct {
	Value string
	Count int
}

// CountBy groups items by field in first-seen order. Empty values are
// counted as models.Unknown.
func CountBy(items []models.Character, field Field) []Count {
	index := make(map[string]int)
	var out []Count
	for _, c := range items {
		v := value(c, field)
		if v == "" {
			v = models.Unknown
		}
		if i, ok := index[v]; ok {
			out[i].Count++
			continue
		}
		index[v] = len(out)
		out = append(out, Count{Value: v, Count: 1})
	}
	return out
}

func value(c models.Character, field Field) string {
	switch field {
	case FieldGender:
		return c.Gender
	case FieldSpecies:
		return c.Species
	case FieldOccupation:
		return c.Occupation
	case FieldHomePlanet:
		return c.HomePlanet
	}
	return ""
}

// mostCommon picks the highest count; ties go to the first seen.
func mostCommon(counts []Count) string {
	best := -1
	for i, c := range counts {
		if best < 0 || c.Count > counts[best].Count {
			best = i
		}
	}
	if best < 0 {
		return NotAvailable
	}
	return counts[best].Value
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
