package query

import (
	"math"
	"testing"

	"github.com/dmitrijs2005/futurama-catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func character(id int, first, last, age, gender, species, occupation string) models.Character {
	return models.Character{
		ID:         id,
		Name:       models.Name{First: first, Last: last},
		Age:        age,
		Gender:     gender,
		Species:    species,
		Occupation: occupation,
		Sayings:    []string{},
	}
}

func crew() []models.Character {
	return []models.Character{
		character(1, "Philip", "Fry", "25", "Male", "Human", "Delivery Boy"),
		character(2, "Bender", "Rodriguez", "4", "Male", "Robot", "Bending Unit"),
		character(3, "Turanga", "Leela", "25", "Female", "Mutant", "Captain"),
		character(4, "Amy", "Wong", "21", "Female", "Human", "Intern"),
		character(5, "Zapp", "Brannigan", "Unknown", "Male", "Human", "Captain"),
	}
}

func ids(items []models.Character) []int {
	out := make([]int, 0, len(items))
	for _, c := range items {
		out = append(out, c.ID)
	}
	return out
}

func TestApply_SearchMatchesOccupationCaseInsensitively(t *testing.T) {
	c := DefaultControls()
	c.SearchTerm = "deliv"

	got := NewEngine("en").Apply(crew(), c)
	assert.Equal(t, []int{1}, ids(got))
}

func TestApply_SearchFields(t *testing.T) {
	tests := []struct {
		term string
		want []int
	}{
		{"FRY", []int{1}},
		{"philip fry", []int{1}},
		{"mutant", []int{3}},
		{"captain", []int{3, 5}},
		{"  robot ", []int{2}},
		{"male", nil},
		{"", []int{4, 2, 1, 3, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			c := DefaultControls()
			c.SearchTerm = tt.term
			got := NewEngine("en").Apply(crew(), c)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_FiltersCompose(t *testing.T) {
	c := DefaultControls()
	c.GenderFilter = "Female"
	c.SpeciesFilter = "Human"

	assert.Equal(t, []int{4}, ids(NewEngine("en").Apply(crew(), c)))

	c.SearchTerm = "captain"
	assert.Empty(t, NewEngine("en").Apply(crew(), c))
}

func TestApply_GenderFilterIsExact(t *testing.T) {
	c := DefaultControls()
	c.GenderFilter = "male"

	assert.Empty(t, NewEngine("en").Apply(crew(), c))
}

func TestApply_FilterIsSubsetOfInput(t *testing.T) {
	in := crew()
	for _, term := range []string{"", "a", "captain", "zzz"} {
		c := DefaultControls()
		c.SearchTerm = term
		got := NewEngine("en").Apply(in, c)
		require.LessOrEqual(t, len(got), len(in))
		for _, g := range got {
			assert.Contains(t, in, g)
		}
	}
}

func TestApply_AgeSortTreatsUnparseableAsZero(t *testing.T) {
	items := []models.Character{
		character(1, "A", "", "23", "", "", ""),
		character(2, "B", "", "abc", "", "", ""),
		character(3, "C", "", "8", "", "", ""),
	}
	c := Controls{SortField: FieldAge, SortDirection: Ascending}

	got := NewEngine("en").Apply(items, c)
	assert.Equal(t, []int{2, 3, 1}, ids(got))

	c.SortDirection = Descending
	got = NewEngine("en").Apply(items, c)
	assert.Equal(t, []int{1, 3, 2}, ids(got))
}

func TestApply_SortIsStable(t *testing.T) {
	c := Controls{SortField: FieldGender, SortDirection: Ascending}
	got := NewEngine("en").Apply(crew(), c)
	assert.Equal(t, []int{3, 4, 1, 2, 5}, ids(got))

	c.SortDirection = Descending
	got = NewEngine("en").Apply(crew(), c)
	assert.Equal(t, []int{1, 2, 5, 3, 4}, ids(got))
}

func TestApply_SortByField(t *testing.T) {
	tests := []struct {
		field Field
		dir   Direction
		want  []int
	}{
		{FieldName, Ascending, []int{4, 2, 1, 3, 5}},
		{FieldName, Descending, []int{5, 3, 1, 2, 4}},
		{FieldSpecies, Ascending, []int{1, 4, 5, 3, 2}},
		{FieldOccupation, Ascending, []int{2, 3, 5, 1, 4}},
		{FieldAge, Ascending, []int{5, 2, 4, 1, 3}},
	}
	for _, tt := range tests {
		t.Run(string(tt.field)+"_"+string(tt.dir), func(t *testing.T) {
			got := NewEngine("en").Apply(crew(), Controls{SortField: tt.field, SortDirection: tt.dir})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_NameSortIsLocaleAware(t *testing.T) {
	items := []models.Character{
		character(1, "zoidberg", "", "", "", "", ""),
		character(2, "Élzar", "", "", "", "", ""),
		character(3, "Amy", "", "", "", "", ""),
	}
	got := NewEngine("en").Apply(items, DefaultControls())
	assert.Equal(t, []int{3, 2, 1}, ids(got))
}

func TestApply_DoesNotMutateInputAndIsDeterministic(t *testing.T) {
	in := crew()
	before := ids(in)
	c := Controls{SortField: FieldName, SortDirection: Descending, SearchTerm: "a"}

	e := NewEngine("en")
	first := e.Apply(in, c)
	second := e.Apply(in, c)

	assert.Equal(t, before, ids(in))
	assert.Equal(t, first, second)
}

func TestNewEngine_BadLocaleFallsBack(t *testing.T) {
	assert.Equal(t, "en", NewEngine("!!").tag.String())
	assert.Equal(t, "de", NewEngine("de").tag.String())
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"23", 23},
		{" 40 years", 40},
		{"-3", -3},
		{"+7", 7},
		{"abc", 0},
		{"", 0},
		{"Unknown", 0},
		{"3000 (approx)", 3000},
		{"2147483649", 2147483649},
		{"3000000000", 3000000000},
		{"99999999999", 99999999999},
		{"99999999999999999999999", math.MaxInt},
		{"-99999999999999999999999", -math.MaxInt},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAge(tt.in), tt.in)
	}
}

func TestEngine_SortsLargeAgesByFullValue(t *testing.T) {
	in := []models.Character{
		character(1, "Big", "", "3000000000", "", "", ""),
		character(2, "Less", "", "2147483649", "", "", ""),
		character(3, "Small", "", "8", "", "", ""),
	}
	c := DefaultControls()
	c.SortField = FieldAge

	assert.Equal(t, []int{3, 2, 1}, ids(NewEngine("en").Apply(in, c)))
}

func TestParseFieldAndDirection(t *testing.T) {
	f, err := ParseField(" Age ")
	require.NoError(t, err)
	assert.Equal(t, FieldAge, f)

	_, err = ParseField("planet")
	require.Error(t, err)

	d, err := ParseDirection("DESC")
	require.NoError(t, err)
	assert.Equal(t, Descending, d)

	d, err = ParseDirection("ascending")
	require.NoError(t, err)
	assert.Equal(t, Ascending, d)

	_, err = ParseDirection("up")
	require.Error(t, err)
}
