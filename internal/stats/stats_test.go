package stats

import (
	"testing"

	"github.com/dmitrijs2005/futurama-catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func char(age, gender, species, occupation, planet string) models.Character {
	return models.Character{Age: age, Gender: gender, Species: species, Occupation: occupation, HomePlanet: planet}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, Summary{
		MostCommonSpecies:    NotAvailable,
		MostCommonOccupation: NotAvailable,
		MostCommonPlanet:     NotAvailable,
	}, s)
}

func TestSummarize(t *testing.T) {
	items := []models.Character{
		char("25", "Male", "Human", "Delivery Boy", "Earth"),
		char("Unknown", "MALE", "Robot", "Bending Unit", "Earth"),
		char("30", "Female", "Mutant", "Captain", "Earth"),
		char("0", "Female", "Human", "Intern", "Mars"),
		char("-4", "Robot", "Robot", "Captain", "Omicron Persei 8"),
		char("32 years", "Male", "Human", "", ""),
	}

	s := Summarize(items)
	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 29, s.AverageAge) // (25+30+32)/3
	assert.Equal(t, GenderSplit{Male: 50, Female: 33, Other: 17}, s.Gender)
	assert.Equal(t, "Human", s.MostCommonSpecies)
	assert.Equal(t, "Captain", s.MostCommonOccupation)
	assert.Equal(t, "Earth", s.MostCommonPlanet)
}

func TestSummarize_TiesGoToFirstSeen(t *testing.T) {
	items := []models.Character{
		char("", "", "Robot", "Pilot", ""),
		char("", "", "Human", "Captain", ""),
	}
	s := Summarize(items)
	assert.Equal(t, "Robot", s.MostCommonSpecies)
	assert.Equal(t, "Pilot", s.MostCommonOccupation)
	assert.Equal(t, models.Unknown, s.MostCommonPlanet)
	assert.Equal(t, 0, s.AverageAge)
	assert.Equal(t, GenderSplit{Other: 100}, s.Gender)
}

func TestCountBy_FirstSeenOrder(t *testing.T) {
	items := []models.Character{
		char("", "Male", "Human", "", ""),
		char("", "Female", "Robot", "", ""),
		char("", "Male", "", "", ""),
		char("", "", "Human", "", ""),
	}

	assert.Equal(t, []Count{{"Male", 2}, {"Female", 1}, {models.Unknown, 1}}, CountBy(items, FieldGender))
	assert.Equal(t, []Count{{"Human", 2}, {"Robot", 1}, {models.Unknown, 1}}, CountBy(items, FieldSpecies))
	assert.Empty(t, CountBy(nil, FieldSpecies))
}

func TestParseField(t *testing.T) {
	for in, want := range map[string]Field{
		"gender":     FieldGender,
		" Species ":  FieldSpecies,
		"OCCUPATION": FieldOccupation,
		"planet":     FieldHomePlanet,
		"homePlanet": FieldHomePlanet,
	} {
		got, err := ParseField(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseField("age")
	require.Error(t, err)
}
