package internal

import (
	"context"
	"testing"

	testingx "github.com/octohelm/x/testing"
)

func countRules(s *RuleSet) (exceptions int, suffixes int) {
	for _, r := range s.Rules {
		if r.Exception {
			exceptions++
		} else {
			suffixes++
		}
	}
	return
}

func TestDefaults(t *testing.T) {
	for part, expect := range map[NamePart][2]int{
		FirstName:  {7, 12},
		LastName:   {5, 27},
		MiddleName: {1, 2},
	} {
		t.Run(part.String(), func(t *testing.T) {
			s, ok := Defaults.rules[part]
			testingx.Expect(t, ok, testingx.Be(true))

			exceptions, suffixes := countRules(s)
			testingx.Expect(t, [2]int{exceptions, suffixes}, testingx.Equal(expect))

			for i := 1; i < len(s.suffixes); i++ {
				testingx.Expect(t, s.suffixes[i-1].size >= s.suffixes[i].size, testingx.Be(true))
			}

			_, ok = Defaults.gender[part]
			testingx.Expect(t, ok, testingx.Be(true))
		})
	}
}

func TestDefaults_GenderExceptions(t *testing.T) {
	for _, part := range []NamePart{FirstName, LastName} {
		h := Defaults.gender[part]
		testingx.Expect(t, h.Exceptions != nil, testingx.Be(true))
	}
	testingx.Expect(t, Defaults.gender[MiddleName].Exceptions == nil, testingx.Be(true))
}

func TestInflector_MustLoad(t *testing.T) {
	t.Run("Embedded", func(t *testing.T) {
		i := &Inflector{}
		i.MustLoad(context.Background(), nil, nil)
		testingx.Expect(t, i.Inflected(LastName, Male, "Станкевич", Prepositional), testingx.Be("Станкевиче"))
	})

	t.Run("Broken", func(t *testing.T) {
		defer func() {
			testingx.Expect(t, recover() != nil, testingx.Be(true))
		}()

		i := &Inflector{}
		i.MustLoad(context.Background(), []byte("lastname: ["), nil)
		t.Fatal("should panic")
	})
}

func TestInflector_FirstWord(t *testing.T) {
	testingx.Expect(t, Defaults.Inflected(LastName, Male, "Фон", Genitive), testingx.Be("Фона"))
	testingx.Expect(t, Defaults.Inflected(LastName, Male, "Фон-Визин", Genitive), testingx.Be("Фон-Визина"))
}
