package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexString decodes a JSON string, number or null into a string. The remote
// source is inconsistent about the type of some fields (age in particular).
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flex string: unsupported value %s", data)
	}
	*f = FlexString(n.String())
	return nil
}

// RawCharacter is the record shape returned by the remote source. Any field
// may be absent.
type RawCharacter struct {
	ID         int        `json:"id"`
	Name       *Name      `json:"name"`
	Images     *Images    `json:"images"`
	Age        FlexString `json:"age"`
	Gender     string     `json:"gender"`
	Species    string     `json:"species"`
	HomePlanet string     `json:"homePlanet"`
	Occupation string     `json:"occupation"`
	Sayings    []string   `json:"sayings"`

	EyeColor    string   `json:"eyeColor"`
	HairColor   string   `json:"hairColor"`
	ModelNumber string   `json:"modelNumber"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
}

// Normalize fills every missing field of a remote record with its fallback:
// name becomes {"Unknown","",""}, images become empty, descriptive strings
// become "Unknown" and sayings an empty slice.
func (r RawCharacter) Normalize() Character {
	c := Character{
		ID:          r.ID,
		Name:        Name{First: Unknown},
		Age:         orUnknown(string(r.Age)),
		Gender:      orUnknown(r.Gender),
		Species:     orUnknown(r.Species),
		HomePlanet:  orUnknown(r.HomePlanet),
		Occupation:  orUnknown(r.Occupation),
		Sayings:     []string{},
		EyeColor:    r.EyeColor,
		HairColor:   r.HairColor,
		ModelNumber: r.ModelNumber,
		Description: r.Description,
	}
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Images != nil {
		c.Images = *r.Images
	}
	if r.Sayings != nil {
		c.Sayings = append(c.Sayings, r.Sayings...)
	}
	if r.Skills != nil {
		c.Skills = append([]string(nil), r.Skills...)
	}
	return c
}

// NormalizeAll normalizes a remote batch, preserving order.
func NormalizeAll(raw []RawCharacter) []Character {
	out := make([]Character, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.Normalize())
	}
	return out
}

// Draft is the user-submitted data for a new character, prior to id
// assignment and defaulting. Field validation happens upstream.
type Draft struct {
	FirstName   string
	LastName    string
	Species     string
	Occupation  string
	Gender      string
	HomePlanet  string
	Age         *int
	EyeColor    string
	HairColor   string
	ModelNumber string
	Skills      []string
	Description string
}

// Build turns the draft into a fully populated character with the given id.
func (d Draft) Build(id int) Character {
	age := Unknown
	if d.Age != nil {
		age = strconv.Itoa(*d.Age)
	}

	sayings := []string{}
	if d.Description != "" {
		sayings = []string{d.Description}
	}

	var skills []string
	if d.Skills != nil {
		skills = append([]string(nil), d.Skills...)
	}

	return Character{
		ID:          id,
		Name:        Name{First: d.FirstName, Last: d.LastName},
		Images:      Images{HeadShot: PlaceholderHeadShot, Main: PlaceholderMain},
		Age:         age,
		Gender:      orUnknown(d.Gender),
		Species:     orUnknown(d.Species),
		HomePlanet:  orUnknown(d.HomePlanet),
		Occupation:  orUnknown(d.Occupation),
		Sayings:     sayings,
		EyeColor:    d.EyeColor,
		HairColor:   d.HairColor,
		ModelNumber: d.ModelNumber,
		Skills:      skills,
		Description: d.Description,
	}
}
