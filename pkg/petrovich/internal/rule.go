package internal

import (
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/octohelm/petrovich/pkg/namecase"
)

// Ending describes how a name changes in one oblique case.
type Ending struct {
	// Keep leaves the name untouched.
	Keep bool
	// Strip is the number of code points removed from the end of the name.
	Strip int
	// Suffix is appended after stripping.
	Suffix string
}

// ParseEnding reads the corpus notation: "." for Keep, otherwise leading dashes
// count the letters to strip and the rest is the suffix.
func ParseEnding(mod string) (Ending, error) {
	if mod == "." {
		return Ending{Keep: true}, nil
	}

	suffix := strings.TrimLeft(mod, "-")
	if strings.Contains(suffix, "-") || strings.Contains(suffix, ".") {
		return Ending{}, errors.Errorf("malformed mod %q", mod)
	}

	return Ending{Strip: len(mod) - len(suffix), Suffix: suffix}, nil
}

func (e Ending) String() string {
	if e.Keep {
		return "."
	}
	return strings.Repeat("-", e.Strip) + e.Suffix
}

type Rule struct {
	Genders   GenderSet
	Part      NamePart
	MatchKind MatchKind
	// Patterns are lower case.
	Patterns  []string
	Exception bool
	// FirstWord restricts the rule to the first word of a compound name.
	FirstWord bool
	Endings   [ObliqueCases]Ending
}

func (r *Rule) Ending(c Case) (Ending, bool) {
	if c <= Nominative || c > Prepositional {
		return Ending{}, false
	}
	return r.Endings[c-1], true
}

func (r *Rule) applicable(g Gender, firstWord bool) bool {
	return r.Genders.Has(g) && (firstWord || !r.FirstWord)
}

func (r *Rule) matches(pattern string, lowered string) bool {
	if r.MatchKind == Exact {
		return lowered == pattern
	}
	return namecase.HasSuffix(lowered, pattern)
}

// Apply inflects name, which is expected to have matched r.
func (r *Rule) Apply(name string, c Case) string {
	e, ok := r.Ending(c)
	if !ok || e.Keep {
		return name
	}

	suffix := e.Suffix
	if namecase.IsUpper(name) {
		suffix = namecase.Upper(suffix)
	}

	return namecase.TrimRight(name, e.Strip) + suffix
}

func (r *Rule) validate() error {
	if len(r.Patterns) == 0 {
		return errors.Errorf("%s rule without patterns", r.Part)
	}
	for _, p := range r.Patterns {
		if p == "" {
			return errors.Errorf("%s rule with empty pattern", r.Part)
		}
	}
	if r.Genders == 0 {
		return errors.Errorf("%s rule %v without gender", r.Part, r.Patterns)
	}
	return nil
}

type candidate struct {
	rule    *Rule
	pattern string
	size    int
}

// RuleSet is the compiled rule list of one name part.
type RuleSet struct {
	Part NamePart
	// Rules in table order. Exceptions are tried before general rules
	// wherever they appear.
	Rules []*Rule

	exceptions []candidate
	suffixes   []candidate
}

// Init validates the rules and orders match candidates.
// Exceptions keep table order with the longest pattern of each rule first.
// General candidates are ordered by pattern length across all rules,
// with table order as the tie-break.
func (s *RuleSet) Init() error {
	s.exceptions = nil
	s.suffixes = nil

	for _, r := range s.Rules {
		if err := s.check(r); err != nil {
			return err
		}
		if r.Exception {
			s.exceptions = append(s.exceptions, sortedCandidates(r)...)
		} else {
			s.suffixes = append(s.suffixes, candidates(r)...)
		}
	}

	slices.SortStableFunc(s.suffixes, longerFirst)

	return nil
}

func (s *RuleSet) check(r *Rule) error {
	if r.Part != s.Part {
		return errors.Errorf("%s rule %v registered as %s", r.Part, r.Patterns, s.Part)
	}
	return r.validate()
}

func candidates(r *Rule) []candidate {
	list := make([]candidate, len(r.Patterns))
	for i, p := range r.Patterns {
		list[i] = candidate{rule: r, pattern: p, size: namecase.Len(p)}
	}
	return list
}

func sortedCandidates(r *Rule) []candidate {
	list := candidates(r)
	slices.SortStableFunc(list, longerFirst)
	return list
}

func longerFirst(a, b candidate) int {
	return b.size - a.size
}

// Match finds the rule for an already lower-cased word.
func (s *RuleSet) Match(g Gender, lowered string, firstWord bool) (*Rule, bool) {
	if lowered == "" {
		return nil, false
	}

	for _, list := range [][]candidate{s.exceptions, s.suffixes} {
		for _, c := range list {
			if c.rule.applicable(g, firstWord) && c.rule.matches(c.pattern, lowered) {
				return c.rule, true
			}
		}
	}

	return nil, false
}

// Inflected inflects a single word, returning it unchanged when nothing matches.
func (s *RuleSet) Inflected(g Gender, word string, c Case, firstWord bool) string {
	if c == Nominative {
		return word
	}
	if r, ok := s.Match(g, namecase.Lower(word), firstWord); ok {
		return r.Apply(word, c)
	}
	return word
}
