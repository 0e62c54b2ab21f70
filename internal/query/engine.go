// Package query derives the filtered, sorted view of the catalog.
//
// Engine.Apply is a pure function of (characters, controls): filters run in a
// fixed order (free-text search, gender, species) and are AND-composed; the
// survivors are stable-sorted by exactly one field in an explicit direction.
// Pipeline binds Apply to a live entity stream and four query controls and
// republishes on every change.
package query

import (
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/futurama-catalog/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Engine evaluates Controls against a character list with locale-aware
// string comparison.
type Engine struct {
	tag language.Tag

	mu       sync.Mutex // collate.Collator is not safe for concurrent use
	collator *collate.Collator
}

// NewEngine returns an engine for the BCP 47 locale; unparseable locales fall
// back to English.
func NewEngine(locale string) *Engine {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Engine{tag: tag, collator: collate.New(tag)}
}

// Apply filters and sorts items. The input is never modified; the result is
// a new slice.
func (e *Engine) Apply(items []models.Character, c Controls) []models.Character {
	filtered := Filter(items, c)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.sortLocked(filtered, c.SortField, c.SortDirection)
	return filtered
}

// Filter applies search, gender and species filters in that order.
func Filter(items []models.Character, c Controls) []models.Character {
	fold := cases.Fold()
	term := fold.String(strings.TrimSpace(c.SearchTerm))

	out := make([]models.Character, 0, len(items))
	for _, ch := range items {
		if term != "" && !matchesSearch(fold, ch, term) {
			continue
		}
		if c.GenderFilter != "" && ch.Gender != c.GenderFilter {
			continue
		}
		if c.SpeciesFilter != "" && ch.Species != c.SpeciesFilter {
			continue
		}
		out = append(out, ch)
	}
	return out
}

func matchesSearch(fold cases.Caser, ch models.Character, term string) bool {
	for _, field := range []string{ch.Name.Full(), ch.Occupation, ch.Species} {
		if field != "" && strings.Contains(fold.String(field), term) {
			return true
		}
	}
	return false
}

func (e *Engine) sortLocked(items []models.Character, field Field, dir Direction) {
	cmp := e.comparator(field)
	sort.SliceStable(items, func(i, j int) bool {
		if dir == Descending {
			return cmp(items[j], items[i]) < 0
		}
		return cmp(items[i], items[j]) < 0
	})
}

func (e *Engine) comparator(field Field) func(a, b models.Character) int {
	switch field {
	case FieldAge:
		return func(a, b models.Character) int {
			x, y := ParseAge(a.Age), ParseAge(b.Age)
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	case FieldGender:
		return e.stringComparator(func(c models.Character) string { return c.Gender })
	case FieldSpecies:
		return e.stringComparator(func(c models.Character) string { return c.Species })
	case FieldOccupation:
		return e.stringComparator(func(c models.Character) string { return c.Occupation })
	default:
		return e.stringComparator(func(c models.Character) string { return c.Name.Full() })
	}
}

func (e *Engine) stringComparator(get func(models.Character) string) func(a, b models.Character) int {
	return func(a, b models.Character) int {
		return e.collator.CompareString(get(a), get(b))
	}
}

// ParseAge reads the leading integer of a free-text age ("23", " 40 years",
// "-3"). Anything without leading digits is 0; values beyond the int range
// saturate at math.MaxInt.
func ParseAge(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	n := 0
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		digits++
		d := int(r - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
			continue
		}
		n = n*10 + d
	}
	if digits == 0 {
		return 0
	}
	if neg {
		return -n
	}
	return n
}
