// Package models defines the character catalog data model: the canonical
// Character record, the tolerant wire shape received from the remote source,
// and the Draft submitted when a user creates a new character.
package models

import (
	"math/rand/v2"
	"strings"
)

// Unknown is the fallback value for missing descriptive fields.
const Unknown = "Unknown"

// Placeholder images assigned to locally created characters.
const (
	PlaceholderHeadShot = "https://via.placeholder.com/150x150?text=New+Character"
	PlaceholderMain     = "https://via.placeholder.com/300x400?text=New+Character"
)

// Name is a character's name split into parts. Middle and Last may be empty.
type Name struct {
	First  string `json:"first"`
	Middle string `json:"middle"`
	Last   string `json:"last"`
}

// Full joins the non-empty name parts with a single space.
func (n Name) Full() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{n.First, n.Middle, n.Last} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Images holds character artwork URLs.
type Images struct {
	HeadShot string `json:"head-shot"`
	Main     string `json:"main"`
}

// Character is a fully populated catalog entry.
//
// Age is free text and is not guaranteed to be numeric. The trailing fields
// are only set for characters created locally.
type Character struct {
	ID         int      `json:"id"`
	Name       Name     `json:"name"`
	Images     Images   `json:"images"`
	Age        string   `json:"age"`
	Gender     string   `json:"gender"`
	Species    string   `json:"species"`
	HomePlanet string   `json:"homePlanet"`
	Occupation string   `json:"occupation"`
	Sayings    []string `json:"sayings"`

	EyeColor    string   `json:"eyeColor,omitempty"`
	HairColor   string   `json:"hairColor,omitempty"`
	ModelNumber string   `json:"modelNumber,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Clone returns a deep copy of c so callers can never alias the slices of a
// stored record.
func (c Character) Clone() Character {
	out := c
	if c.Sayings != nil {
		out.Sayings = append([]string(nil), c.Sayings...)
	}
	if c.Skills != nil {
		out.Skills = append([]string(nil), c.Skills...)
	}
	return out
}

// CloneAll deep-copies a slice of characters. A nil input yields an empty,
// non-nil slice.
func CloneAll(in []Character) []Character {
	out := make([]Character, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

// MaxID returns the largest id in the given sets, or 0 when all are empty.
func MaxID(sets ...[]Character) int {
	max := 0
	for _, set := range sets {
		for _, c := range set {
			if c.ID > max {
				max = c.ID
			}
		}
	}
	return max
}

// RandomSaying picks one of the character's sayings for display. It is
// deliberately non-deterministic and must not be used by query logic.
func RandomSaying(c Character, rng *rand.Rand) string {
	if len(c.Sayings) == 0 {
		return ""
	}
	if rng == nil {
		return c.Sayings[rand.IntN(len(c.Sayings))]
	}
	return c.Sayings[rng.IntN(len(c.Sayings))]
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
