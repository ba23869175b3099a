package internal

import "github.com/octohelm/petrovich/pkg/namecase"

// GenderMapping lists lower-case names (or suffixes) per gender.
// Androgynous entries give no answer.
type GenderMapping struct {
	Androgynous []string
	Male        []string
	Female      []string
}

func (m *GenderMapping) detect(match func(entry string) bool) (g Gender, ok bool, found bool) {
	if anyMatch(m.Androgynous, match) {
		return 0, false, true
	}
	if anyMatch(m.Female, match) {
		return Female, true, true
	}
	if anyMatch(m.Male, match) {
		return Male, true, true
	}
	return 0, false, false
}

func anyMatch(entries []string, match func(entry string) bool) bool {
	for _, e := range entries {
		if match(e) {
			return true
		}
	}
	return false
}

type GenderHeuristic struct {
	Part NamePart
	// Exceptions are whole names and win over Suffixes.
	// An androgynous exception still falls through to Suffixes.
	Exceptions *GenderMapping
	Suffixes   GenderMapping
}

func (h *GenderHeuristic) Detect(name string) (Gender, bool) {
	lowered := namecase.Lower(name)
	if lowered == "" {
		return 0, false
	}

	if h.Exceptions != nil {
		if g, ok, _ := h.Exceptions.detect(func(e string) bool { return e == lowered }); ok {
			return g, true
		}
	}

	g, ok, _ := h.Suffixes.detect(func(e string) bool { return namecase.HasSuffix(lowered, e) })
	return g, ok
}
