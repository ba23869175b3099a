package internal

import (
	"testing"

	testingx "github.com/octohelm/x/testing"
)

func TestGenderHeuristic(t *testing.T) {
	h := &GenderHeuristic{
		Part: FirstName,
		Exceptions: &GenderMapping{
			Androgynous: []string{"саша", "мишель"},
			Male:        []string{"никита"},
		},
		Suffixes: GenderMapping{
			Androgynous: []string{"ь"},
			Female:      []string{"а"},
			Male:        []string{"н"},
		},
	}

	for _, c := range []struct {
		name   string
		gender Gender
		ok     bool
	}{
		{"Никита", Male, true},
		{"Анна", Female, true},
		{"Иван", Male, true},
		{"САША", Female, true},
		{"Мишель", Gender(0), false},
		{"Ли", Gender(0), false},
		{"", Gender(0), false},
	} {
		t.Run(c.name, func(t *testing.T) {
			gender, ok := h.Detect(c.name)
			testingx.Expect(t, ok, testingx.Be(c.ok))
			testingx.Expect(t, gender, testingx.Be(c.gender))
		})
	}
}
