package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

type Gender int

const (
	Male Gender = iota
	Female
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	}
	return fmt.Sprintf("Gender(%d)", int(g))
}

// GenderSet holds the genders a rule applies to.
type GenderSet uint8

const (
	MaleOnly    GenderSet = 1 << Male
	FemaleOnly  GenderSet = 1 << Female
	Androgynous           = MaleOnly | FemaleOnly
)

func (s GenderSet) Has(g Gender) bool {
	if g < Male || g > Female {
		return false
	}
	return s&(1<<g) != 0
}

func ParseGenderSet(s string) (GenderSet, error) {
	switch s {
	case "male":
		return MaleOnly, nil
	case "female":
		return FemaleOnly, nil
	case "androgynous":
		return Androgynous, nil
	}
	return 0, errors.Errorf("unknown gender %q", s)
}

type Case int

const (
	Nominative Case = iota
	Genitive
	Dative
	Accusative
	Instrumental
	Prepositional
)

// ObliqueCases is the number of cases stored per rule; Nominative is implied.
const ObliqueCases = int(Prepositional)

func (c Case) String() string {
	switch c {
	case Nominative:
		return "nominative"
	case Genitive:
		return "genitive"
	case Dative:
		return "dative"
	case Accusative:
		return "accusative"
	case Instrumental:
		return "instrumental"
	case Prepositional:
		return "prepositional"
	}
	return fmt.Sprintf("Case(%d)", int(c))
}

type NamePart int

const (
	FirstName NamePart = iota
	LastName
	MiddleName
)

func (p NamePart) String() string {
	switch p {
	case FirstName:
		return "firstname"
	case LastName:
		return "lastname"
	case MiddleName:
		return "middlename"
	}
	return fmt.Sprintf("NamePart(%d)", int(p))
}

type MatchKind int

const (
	Suffix MatchKind = iota
	Exact
)
