package internal

import (
	"context"
	_ "embed"

	"github.com/go-courier/logr"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/octohelm/petrovich/pkg/namecase"
)

var (
	//go:embed rules.yml
	EmbeddedRules []byte
	//go:embed gender.yml
	EmbeddedGender []byte
)

func init() {
	Defaults.MustLoad(context.Background(), EmbeddedRules, EmbeddedGender)
}

const tagFirstWord = "first_word"

type ruleDef struct {
	Gender string   `yaml:"gender"`
	Test   []string `yaml:"test"`
	Mods   []string `yaml:"mods"`
	Tags   []string `yaml:"tags"`
}

type ruleListDef struct {
	Exceptions []ruleDef `yaml:"exceptions"`
	Suffixes   []ruleDef `yaml:"suffixes"`
}

type rulesDef struct {
	Lastname   ruleListDef `yaml:"lastname"`
	Firstname  ruleListDef `yaml:"firstname"`
	Middlename ruleListDef `yaml:"middlename"`
}

func (d *rulesDef) lists() map[NamePart]ruleListDef {
	return map[NamePart]ruleListDef{
		FirstName:  d.Firstname,
		LastName:   d.Lastname,
		MiddleName: d.Middlename,
	}
}

type genderMappingDef struct {
	Androgynous []string `yaml:"androgynous"`
	Male        []string `yaml:"male"`
	Female      []string `yaml:"female"`
}

func (d *genderMappingDef) mapping() GenderMapping {
	lower := func(list []string) []string {
		out := make([]string, len(list))
		for i := range list {
			out[i] = namecase.Lower(list[i])
		}
		return out
	}
	return GenderMapping{
		Androgynous: lower(d.Androgynous),
		Male:        lower(d.Male),
		Female:      lower(d.Female),
	}
}

type genderHeuristicDef struct {
	Exceptions *genderMappingDef `yaml:"exceptions"`
	Suffixes   genderMappingDef  `yaml:"suffixes"`
}

type genderDef struct {
	Gender struct {
		Lastname   genderHeuristicDef `yaml:"lastname"`
		Firstname  genderHeuristicDef `yaml:"firstname"`
		Middlename genderHeuristicDef `yaml:"middlename"`
	} `yaml:"gender"`
}

func (i *Inflector) MustLoad(ctx context.Context, rules []byte, gender []byte) {
	if err := i.Load(ctx, rules, gender); err != nil {
		panic(err)
	}
}

// Load decodes and registers both corpora. Nil input falls back to the embedded one.
func (i *Inflector) Load(ctx context.Context, rules []byte, gender []byte) error {
	ctx, l := logr.FromContext(ctx).Start(ctx, "LoadCorpus")
	defer l.End()

	if rules == nil {
		rules = EmbeddedRules
	}
	if gender == nil {
		gender = EmbeddedGender
	}

	if err := i.loadRules(ctx, rules); err != nil {
		l.Warn(err)
		return err
	}

	if err := i.loadGender(ctx, gender); err != nil {
		l.Warn(err)
		return err
	}

	return nil
}

func (i *Inflector) loadRules(ctx context.Context, data []byte) error {
	def := &rulesDef{}
	if err := yaml.Unmarshal(data, def); err != nil {
		return errors.Wrap(err, "decode rules")
	}

	for _, part := range []NamePart{FirstName, LastName, MiddleName} {
		list := def.lists()[part]

		s, err := list.ruleSet(part)
		if err != nil {
			return err
		}

		if err := i.Register(s); err != nil {
			return err
		}

		logr.FromContext(ctx).WithValues(
			"part", part.String(),
			"exceptions", len(list.Exceptions),
			"suffixes", len(list.Suffixes),
		).Debug("rules registered")
	}

	return nil
}

func (d ruleListDef) ruleSet(part NamePart) (*RuleSet, error) {
	s := &RuleSet{Part: part}

	for idx, def := range d.Exceptions {
		r, err := def.rule(part, true)
		if err != nil {
			return nil, errors.Wrapf(err, "%s exception #%d", part, idx)
		}
		s.Rules = append(s.Rules, r)
	}

	for idx, def := range d.Suffixes {
		r, err := def.rule(part, false)
		if err != nil {
			return nil, errors.Wrapf(err, "%s suffix #%d", part, idx)
		}
		s.Rules = append(s.Rules, r)
	}

	return s, nil
}

func (d ruleDef) rule(part NamePart, exception bool) (*Rule, error) {
	genders, err := ParseGenderSet(d.Gender)
	if err != nil {
		return nil, err
	}

	r := &Rule{
		Genders:   genders,
		Part:      part,
		MatchKind: Suffix,
		Exception: exception,
	}
	if exception {
		r.MatchKind = Exact
	}

	if len(d.Test) == 0 {
		return nil, errors.New("empty test")
	}
	for _, t := range d.Test {
		r.Patterns = append(r.Patterns, namecase.Lower(t))
	}

	if len(d.Mods) != ObliqueCases {
		return nil, errors.Errorf("want %d mods, got %d", ObliqueCases, len(d.Mods))
	}
	for idx, m := range d.Mods {
		e, err := ParseEnding(m)
		if err != nil {
			return nil, err
		}
		r.Endings[idx] = e
	}

	for _, tag := range d.Tags {
		switch tag {
		case tagFirstWord:
			r.FirstWord = true
		default:
			return nil, errors.Errorf("unknown tag %q", tag)
		}
	}

	return r, nil
}

func (i *Inflector) loadGender(ctx context.Context, data []byte) error {
	def := &genderDef{}
	if err := yaml.Unmarshal(data, def); err != nil {
		return errors.Wrap(err, "decode gender heuristics")
	}

	for part, h := range map[NamePart]genderHeuristicDef{
		FirstName:  def.Gender.Firstname,
		LastName:   def.Gender.Lastname,
		MiddleName: def.Gender.Middlename,
	} {
		heuristic := &GenderHeuristic{
			Part:     part,
			Suffixes: h.Suffixes.mapping(),
		}
		if h.Exceptions != nil {
			m := h.Exceptions.mapping()
			heuristic.Exceptions = &m
		}

		i.RegisterGender(heuristic)

		logr.FromContext(ctx).WithValues("part", part.String()).Debug("gender heuristics registered")
	}

	return nil
}
