package internal

import (
	"github.com/pkg/errors"

	"github.com/octohelm/petrovich/pkg/namecase"
)

var Defaults = &Inflector{}

// Inflector holds the rule sets and gender heuristics of every name part.
// It must not be modified once registration is done.
type Inflector struct {
	rules  map[NamePart]*RuleSet
	gender map[NamePart]*GenderHeuristic
}

func (i *Inflector) Register(s *RuleSet) error {
	if i.rules == nil {
		i.rules = make(map[NamePart]*RuleSet)
	}

	if err := s.Init(); err != nil {
		return errors.Wrapf(err, "register %s rules", s.Part)
	}

	i.rules[s.Part] = s

	return nil
}

func (i *Inflector) RegisterGender(h *GenderHeuristic) {
	if i.gender == nil {
		i.gender = make(map[NamePart]*GenderHeuristic)
	}
	i.gender[h.Part] = h
}

// Inflected inflects every word of a compound name.
// first_word rules only apply to the first word of a name with several words.
// Names without a matching rule come back unchanged.
func (i *Inflector) Inflected(part NamePart, g Gender, name string, c Case) string {
	s, ok := i.rules[part]
	if !ok || c == Nominative {
		return name
	}

	words := namecase.Split(name)
	compound := len(words) > 1
	for idx, w := range words {
		words[idx] = s.Inflected(g, w, c, compound && idx == 0)
	}

	return namecase.Join(words)
}

// DetectGender tries the middle name, then the first name, then the last name.
func (i *Inflector) DetectGender(lastname, firstname, middlename string) (Gender, bool) {
	for _, n := range []struct {
		part NamePart
		name string
	}{
		{MiddleName, middlename},
		{FirstName, firstname},
		{LastName, lastname},
	} {
		if n.name == "" {
			continue
		}
		if h, ok := i.gender[n.part]; ok {
			if g, ok := h.Detect(n.name); ok {
				return g, true
			}
		}
	}
	return 0, false
}
