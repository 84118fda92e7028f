// Package lgr parses and validates Interlinear Glossed Text (IGT)
// according to the Leipzig Glossing Rules.
//
// The package splits a phrase line and a gloss line into parallel word
// and morpheme tokens, classifies how finely the two lines align, and
// decomposes each morpheme gloss into typed elements (grammatical
// abbreviations vs. lexical glosses). Validation reports violations of
// the numbered Leipzig rules rather than repairing input.
package lgr

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// SeparatorKind identifies what a morpheme-level boundary marker means.
type SeparatorKind int

const (
	// SepNone marks the absence of a separator (e.g. before the first
	// morpheme of a word).
	SepNone SeparatorKind = iota
	// SepAffix is the ordinary morpheme boundary "-" (LGR Rule 2).
	SepAffix
	// SepClitic is the clitic boundary "=" (LGR Rule 2).
	SepClitic
	// SepReduplication is the reduplication boundary "~" (LGR Rule 10).
	SepReduplication
)

// Separator pairs a boundary marker with its kind and the Leipzig rule
// that introduces it.
type Separator struct {
	Text string
	Kind SeparatorKind
	Rule int
}

// Policy defines the recognized separators per granularity level.
//
// Resolution order: whitespace splits a line into words; the morpheme
// separators split a word into morphemes; within one morpheme gloss the
// element separator joins sub-abbreviations and the category separator
// splits off trailing category elements.
type Policy struct {
	// MorphemeSeparators delimit morphemes within a word. All of them
	// must be single runes.
	MorphemeSeparators []Separator

	// ElementSeparator joins sub-abbreviations inside one gloss
	// element (LGR Rule 4), ".".
	ElementSeparator rune
	// CategorySeparator splits off category elements within a gloss
	// (LGR Rule 4C), ":".
	CategorySeparator rune
	// SecondarySeparator separates distinct gloss elements
	// (LGR Rule 4B), ";".
	SecondarySeparator rune
	// MorphophonemicSeparator marks morphophonological change
	// (LGR Rule 4D), "\".
	MorphophonemicSeparator rune
	// PatientSeparator marks patient-like arguments (LGR Rule 4E), ">".
	PatientSeparator rune

	// Dangling allows a word to begin or end with a morpheme separator
	// with no text on the outer side, marking a bound prefix or suffix
	// (Multi-CAST convention). The empty outer morpheme is kept and
	// flagged instead of being reported as a violation.
	Dangling bool

	// Classify decides whether a gloss token is a grammatical
	// abbreviation or a lexical gloss. Defaults to DefaultClassify.
	Classify func(string) ElementKind

	abbrs   map[string]string
	sepKind map[rune]Separator
}

// DefaultPolicy returns the separator policy of the Leipzig Glossing
// Rules with the standard abbreviation dictionary.
func DefaultPolicy() *Policy {
	p := &Policy{
		MorphemeSeparators: []Separator{
			{Text: "-", Kind: SepAffix, Rule: 2},
			{Text: "=", Kind: SepClitic, Rule: 2},
			{Text: "~", Kind: SepReduplication, Rule: 10},
		},
		ElementSeparator:        '.',
		CategorySeparator:       ':',
		SecondarySeparator:      ';',
		MorphophonemicSeparator: '\\',
		PatientSeparator:        '>',
		Dangling:                false,
		Classify:                DefaultClassify,
		abbrs:                   standardAbbrs(),
	}
	if err := p.buildLookup(); err != nil {
		panic(fmt.Sprintf("invalid default policy: %v", err))
	}
	return p
}

// buildLookup precomputes the rune lookup for morpheme separators and
// rejects markers that collide with the element-level separators.
func (p *Policy) buildLookup() error {
	p.sepKind = make(map[rune]Separator, len(p.MorphemeSeparators))
	elementLevel := map[rune]bool{
		p.ElementSeparator:        true,
		p.CategorySeparator:       true,
		p.SecondarySeparator:      true,
		p.MorphophonemicSeparator: true,
		p.PatientSeparator:        true,
	}
	for _, sep := range p.MorphemeSeparators {
		r, size := utf8.DecodeRuneInString(sep.Text)
		if sep.Text == "" || size != len(sep.Text) {
			return fmt.Errorf("morpheme separator %q must be a single character", sep.Text)
		}
		if _, exists := p.sepKind[r]; exists {
			return fmt.Errorf("morpheme separator %q is defined twice", sep.Text)
		}
		if elementLevel[r] {
			return fmt.Errorf("morpheme separator %q collides with a gloss element separator", sep.Text)
		}
		p.sepKind[r] = sep
	}
	return nil
}

// separator returns the separator definition for r, or ok=false if r is
// not a morpheme separator under this policy.
func (p *Policy) separator(r rune) (Separator, bool) {
	sep, ok := p.sepKind[r]
	return sep, ok
}

// SplitWords splits a line into words on one-or-more whitespace.
func (p *Policy) SplitWords(line string) []string {
	return strings.Fields(line)
}

// SplitMorphemes splits a word (or a word gloss) into morpheme segments
// and the separators between them. len(segments) == len(separators)+1;
// separators[i] sits between segments[i] and segments[i+1]. A leading
// or trailing separator yields an empty outer segment, so counts stay
// comparable between the word and gloss lines.
func (p *Policy) SplitMorphemes(word string) (segments []string, separators []Separator) {
	var cur strings.Builder
	for _, r := range word {
		if sep, ok := p.separator(r); ok {
			segments = append(segments, cur.String())
			separators = append(separators, sep)
			cur.Reset()
			continue
		}
		cur.WriteRune(r)
	}
	segments = append(segments, cur.String())
	return segments, separators
}

// StripSeparators removes all morpheme separators from s.
func (p *Policy) StripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if _, ok := p.separator(r); ok {
			return -1
		}
		return r
	}, s)
}

// Expansion returns the human-readable expansion of a grammatical
// abbreviation, accounting for person prefixes (so "1SG" expands to
// "first person singular"). ok is false for unknown abbreviations.
func (p *Policy) Expansion(abbr string) (string, bool) {
	if exp, ok := p.abbrs[abbr]; ok {
		return exp, true
	}
	if person, ok := persons[abbrPerson(abbr)]; ok {
		if exp, ok := p.abbrs[abbr[1:]]; ok {
			return person + " " + exp, true
		}
	}
	return "", false
}

// IsStandardAbbr reports whether abbr is a standard Leipzig
// abbreviation, optionally with a person prefix.
func (p *Policy) IsStandardAbbr(abbr string) bool {
	_, ok := p.Expansion(abbr)
	return ok
}

func abbrPerson(abbr string) string {
	if len(abbr) > 1 {
		return abbr[:1]
	}
	return ""
}

// PolicyFile is the YAML representation of policy overrides. Omitted
// sections keep the compiled-in defaults; non-empty sections replace
// them wholesale, except abbreviations, which merge over the standard
// dictionary.
type PolicyFile struct {
	Separators    []SeparatorRule `yaml:"separators,omitempty"`
	Dangling      *bool           `yaml:"dangling,omitempty"`
	Abbreviations []AbbrRule      `yaml:"abbreviations,omitempty"`
}

// SeparatorRule declares one morpheme-level separator.
type SeparatorRule struct {
	Text string `yaml:"text"`
	Kind string `yaml:"kind"` // "affix", "clitic" or "reduplication"
	Rule int    `yaml:"rule,omitempty"`
}

// AbbrRule declares one grammatical abbreviation and its expansion.
type AbbrRule struct {
	Abbr      string `yaml:"abbr"`
	Expansion string `yaml:"expansion"`
}

var separatorKinds = map[string]SeparatorKind{
	"affix":         SepAffix,
	"clitic":        SepClitic,
	"reduplication": SepReduplication,
}

// LoadPolicyFile loads and parses a YAML policy file.
func LoadPolicyFile(filename string) (*PolicyFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file '%s': %w", filename, err)
	}
	var pf PolicyFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in policy file '%s': %w", filename, err)
	}
	return &pf, nil
}

// ApplyPolicyToDefaults applies the overrides from a PolicyFile on top
// of DefaultPolicy. Returns an error for conflicting or malformed
// separator definitions.
func ApplyPolicyToDefaults(pf *PolicyFile) (*Policy, error) {
	p := DefaultPolicy()

	if len(pf.Separators) > 0 {
		p.MorphemeSeparators = nil
		for _, rule := range pf.Separators {
			kind, ok := separatorKinds[rule.Kind]
			if !ok {
				return nil, fmt.Errorf("unknown separator kind '%s' for %q", rule.Kind, rule.Text)
			}
			p.MorphemeSeparators = append(p.MorphemeSeparators, Separator{
				Text: rule.Text,
				Kind: kind,
				Rule: rule.Rule,
			})
		}
	}

	if pf.Dangling != nil {
		p.Dangling = *pf.Dangling
	}

	for _, rule := range pf.Abbreviations {
		if rule.Abbr == "" {
			return nil, fmt.Errorf("abbreviation rule with empty abbr")
		}
		p.abbrs[rule.Abbr] = rule.Expansion
	}

	if err := p.buildLookup(); err != nil {
		return nil, err
	}
	return p, nil
}

// DefaultPolicyFile returns the default policy in its file
// representation, suitable for YAML output as a starting point for
// customization.
func DefaultPolicyFile() *PolicyFile {
	p := DefaultPolicy()
	pf := &PolicyFile{Dangling: &p.Dangling}
	kindNames := map[SeparatorKind]string{
		SepAffix:         "affix",
		SepClitic:        "clitic",
		SepReduplication: "reduplication",
	}
	for _, sep := range p.MorphemeSeparators {
		pf.Separators = append(pf.Separators, SeparatorRule{
			Text: sep.Text,
			Kind: kindNames[sep.Kind],
			Rule: sep.Rule,
		})
	}
	return pf
}
