// Package petrovich inflects Russian first, last and middle names by grammatical case.
package petrovich

import (
	"context"

	"github.com/octohelm/petrovich/pkg/petrovich/internal"
)

type (
	Gender   = internal.Gender
	Case     = internal.Case
	NamePart = internal.NamePart
)

const (
	Male   = internal.Male
	Female = internal.Female
)

const (
	Nominative    = internal.Nominative
	Genitive      = internal.Genitive
	Dative        = internal.Dative
	Accusative    = internal.Accusative
	Instrumental  = internal.Instrumental
	Prepositional = internal.Prepositional
)

const (
	FirstName  = internal.FirstName
	LastName   = internal.LastName
	MiddleName = internal.MiddleName
)

// Inflect returns name in case c. Names no rule knows are returned unchanged.
func Inflect(part NamePart, gender Gender, name string, c Case) string {
	return internal.Defaults.Inflected(part, gender, name, c)
}

func Firstname(gender Gender, name string, c Case) string {
	return Inflect(FirstName, gender, name, c)
}

func Lastname(gender Gender, name string, c Case) string {
	return Inflect(LastName, gender, name, c)
}

func Middlename(gender Gender, name string, c Case) string {
	return Inflect(MiddleName, gender, name, c)
}

// DetectGender guesses gender from the middle name, then the first name, then the last name.
// Empty parts are skipped. ok is false when nothing is conclusive.
func DetectGender(lastname, firstname, middlename string) (gender Gender, ok bool) {
	return internal.Defaults.DetectGender(lastname, firstname, middlename)
}

// Inflector is an engine over its own rule corpus.
type Inflector struct {
	i *internal.Inflector
}

var defaultInflector = &Inflector{i: internal.Defaults}

// Default returns the engine over the embedded corpus.
func Default() *Inflector {
	return defaultInflector
}

// New builds an engine from YAML corpora in the format of the embedded ones.
// A nil rules or gender falls back to the embedded corpus.
func New(ctx context.Context, rules []byte, gender []byte) (*Inflector, error) {
	i := &internal.Inflector{}
	if err := i.Load(ctx, rules, gender); err != nil {
		return nil, err
	}
	return &Inflector{i: i}, nil
}

func (p *Inflector) Inflect(part NamePart, gender Gender, name string, c Case) string {
	return p.i.Inflected(part, gender, name, c)
}

func (p *Inflector) Firstname(gender Gender, name string, c Case) string {
	return p.Inflect(FirstName, gender, name, c)
}

func (p *Inflector) Lastname(gender Gender, name string, c Case) string {
	return p.Inflect(LastName, gender, name, c)
}

func (p *Inflector) Middlename(gender Gender, name string, c Case) string {
	return p.Inflect(MiddleName, gender, name, c)
}

func (p *Inflector) DetectGender(lastname, firstname, middlename string) (Gender, bool) {
	return p.i.DetectGender(lastname, firstname, middlename)
}
