package lgr

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Conformance is the achieved alignment level of one IGT, ordered by
// strictness. It is a pure classification of the tokenized structure,
// computed once at construction.
type Conformance int

const (
	// Unaligned: no reliable word-for-word correspondence (the word
	// counts of phrase and gloss differ).
	Unaligned Conformance = iota
	// WordAligned: word counts match, but within at least one word the
	// morpheme counts differ.
	WordAligned
	// MorphemeAligned: every word's morpheme count matches between
	// phrase and gloss.
	MorphemeAligned
)

func (c Conformance) String() string {
	switch c {
	case MorphemeAligned:
		return "morpheme-aligned"
	case WordAligned:
		return "word-aligned"
	default:
		return "unaligned"
	}
}

// Violation is one detected breach of a numbered Leipzig Glossing Rule.
type Violation struct {
	// Rule is the Leipzig rule number.
	Rule int
	// Message is a fixed-format, reproducible description.
	Message string
	// Word is the index of the offending word, or -1 for phrase-level
	// violations.
	Word int
}

func (v Violation) Error() string {
	return fmt.Sprintf("LGR rule %d: %s", v.Rule, v.Message)
}

// Abbr is one grammatical abbreviation occurring in a gloss, with its
// expansion ("" when unknown).
type Abbr struct {
	Abbr      string
	Expansion string
}

// IGT is one interlinear glossed phrase: an object-language line and a
// morpheme-by-morpheme gloss line, plus an optional free translation.
// It is immutable once constructed; word structure, conformance level
// and rule violations are computed at construction.
type IGT struct {
	// ID is an opaque external identifier, preserved for diagnostics
	// only; alignment logic never uses it.
	ID string
	// Translation is the optional free translation.
	Translation string
	// Properties carries opaque metadata attached by a collaborator.
	Properties map[string]string

	phrase []string
	gloss  []string
	words  []GlossedWord

	conformance Conformance
	violations  []Violation
	policy      *Policy
}

// New constructs an IGT from a phrase line and a gloss line under the
// default policy. It fails only on missing input: without both lines no
// alignment is possible. translation may be empty.
func New(phrase, gloss, translation string) (*IGT, error) {
	return NewWithPolicy(phrase, gloss, translation, nil)
}

// NewWithPolicy is New with an explicit separator policy. A nil policy
// means DefaultPolicy.
func NewWithPolicy(phrase, gloss, translation string, p *Policy) (*IGT, error) {
	if p == nil {
		p = DefaultPolicy()
	}
	if strings.TrimSpace(phrase) == "" {
		return nil, fmt.Errorf("igt: phrase is required")
	}
	if strings.TrimSpace(gloss) == "" {
		return nil, fmt.Errorf("igt: gloss is required")
	}
	return build(p.SplitWords(phrase), p.SplitWords(gloss), translation, p)
}

// NewFromWords constructs an IGT from pre-tokenized word lists, as
// supplied by dataset collaborators that store analyzed words rather
// than a single string. A nil policy means DefaultPolicy.
func NewFromWords(phrase, gloss []string, translation string, p *Policy) (*IGT, error) {
	if p == nil {
		p = DefaultPolicy()
	}
	if len(phrase) == 0 {
		return nil, fmt.Errorf("igt: phrase is required")
	}
	if len(gloss) == 0 {
		return nil, fmt.Errorf("igt: gloss is required")
	}
	return build(phrase, gloss, translation, p)
}

func build(phrase, gloss []string, translation string, p *Policy) (*IGT, error) {
	igt := &IGT{
		Translation: translation,
		phrase:      phrase,
		gloss:       gloss,
		policy:      p,
	}

	if len(phrase) != len(gloss) {
		igt.violations = append(igt.violations, Violation{
			Rule: 1,
			Word: -1,
			Message: fmt.Sprintf("number of words (%d) does not match number of word glosses (%d)",
				len(phrase), len(gloss)),
		})
	}

	n := min(len(phrase), len(gloss))
	aligned := true
	for i := 0; i < n; i++ {
		gw := newGlossedWord(phrase[i], gloss[i], p)
		igt.words = append(igt.words, gw)
		if !gw.Aligned {
			aligned = false
			igt.violations = append(igt.violations, Violation{
				Rule: 2,
				Word: i,
				Message: fmt.Sprintf("number of morphemes does not match number of morpheme glosses: %s :: %s",
					gw.Word, gw.Gloss),
			})
		}
		igt.violations = append(igt.violations, checkWord(&gw, i)...)
	}

	switch {
	case len(phrase) != len(gloss):
		igt.conformance = Unaligned
	case !aligned:
		igt.conformance = WordAligned
	default:
		igt.conformance = MorphemeAligned
	}
	return igt, nil
}

// checkWord derives the morpheme-level violations of one aligned word
// pair: inconsistent separators and empty units outside the explicit
// dangling case.
func checkWord(gw *GlossedWord, i int) []Violation {
	var vv []Violation
	for j, gm := range gw.Morphemes {
		if j > 0 && gm.Sep.Text != gm.GlossSep.Text {
			rule := 2
			if gm.Sep.Kind == SepReduplication || gm.GlossSep.Kind == SepReduplication {
				rule = 10
			}
			vv = append(vv, Violation{
				Rule: rule,
				Word: i,
				Message: fmt.Sprintf("mismatch of element separators in word and gloss: %s :: %s",
					gw.Word, gw.Gloss),
			})
		}
		if gm.Dangling {
			continue
		}
		if gm.Morpheme == "" {
			vv = append(vv, Violation{
				Rule:    2,
				Word:    i,
				Message: fmt.Sprintf("empty morpheme %d in word: %s", j, gw.Word),
			})
		} else if len(gm.Gloss.Elements) == 0 {
			vv = append(vv, Violation{
				Rule:    2,
				Word:    i,
				Message: fmt.Sprintf("empty gloss for morpheme %s in word: %s", gm.Morpheme, gw.Word),
			})
		}
	}
	return vv
}

// Conformance returns the achieved alignment level.
func (igt *IGT) Conformance() Conformance {
	return igt.conformance
}

// Words returns the aligned word pairs in order.
func (igt *IGT) Words() []GlossedWord {
	return igt.words
}

// Phrase returns the word tokens of the object-language line.
func (igt *IGT) Phrase() []string {
	return igt.phrase
}

// Gloss returns the word tokens of the gloss line.
func (igt *IGT) Gloss() []string {
	return igt.gloss
}

// PhraseText returns the object-language line as a single string.
func (igt *IGT) PhraseText() string {
	return strings.Join(igt.phrase, " ")
}

// GlossText returns the gloss line as a single string.
func (igt *IGT) GlossText() string {
	return strings.Join(igt.gloss, " ")
}

// PrimaryText reconstructs the unsegmented text: morpheme separators
// and null signs removed (LGR Rule 6).
func (igt *IGT) PrimaryText() string {
	words := make([]string, 0, len(igt.phrase))
	for _, w := range igt.phrase {
		w = strings.ReplaceAll(igt.policy.StripSeparators(w), "∅", "")
		if w != "" {
			words = append(words, w)
		}
	}
	return strings.Join(words, " ")
}

// Violations returns every detected rule violation, in document order.
func (igt *IGT) Violations() []Violation {
	return igt.violations
}

// translationAbbrDef matches one "ABBR = expansion" definition inside a
// parenthesized run of the translation, e.g. "(G4 = 4th gender)".
var translationAbbrDef = regexp.MustCompile(`^([A-Z0-9]+)\s*=\s*(.+)$`)

var parenthesized = regexp.MustCompile(`\(([^()]*)\)`)

// translationAbbrs collects ad-hoc abbreviation definitions that
// authors append to the free translation (LGR Rule 3).
func (igt *IGT) translationAbbrs() map[string]string {
	defs := make(map[string]string)
	for _, group := range parenthesized.FindAllStringSubmatch(igt.Translation, -1) {
		for _, part := range strings.Split(group[1], ",") {
			if m := translationAbbrDef.FindStringSubmatch(strings.TrimSpace(part)); m != nil {
				defs[m[1]] = strings.TrimSpace(m[2])
			}
		}
	}
	return defs
}

// GlossAbbrs returns the grammatical abbreviations occurring in the
// gloss, ordered by first occurrence. Expansions are resolved from
// translation-declared definitions first, then from the standard
// dictionary; unknown abbreviations get an empty expansion.
func (igt *IGT) GlossAbbrs() []Abbr {
	custom := igt.translationAbbrs()
	seen := make(map[string]bool)
	var abbrs []Abbr
	for _, gw := range igt.words {
		for _, gm := range gw.Morphemes {
			for _, e := range gm.Gloss.Elements {
				for _, a := range e.SubAbbrs() {
					if seen[a] {
						continue
					}
					seen[a] = true
					exp, ok := custom[a]
					if !ok {
						exp, _ = igt.policy.Expansion(a)
					}
					abbrs = append(abbrs, Abbr{Abbr: a, Expansion: exp})
				}
			}
		}
	}
	return abbrs
}

// Pretty renders the IGT for humans: primary text, the segmented
// phrase and gloss lines tab-aligned, the translation in corner quotes,
// and one "ABBR = expansion" line per known abbreviation.
func (igt *IGT) Pretty() string {
	var b strings.Builder
	b.WriteString(igt.PrimaryText())
	b.WriteByte('\n')
	b.WriteString(strings.Join(igt.phrase, "\t"))
	b.WriteByte('\n')
	b.WriteString(strings.Join(igt.gloss, "\t"))
	b.WriteByte('\n')
	if igt.Translation != "" {
		b.WriteString("‘" + igt.Translation + "’\n")
	}
	expanded := false
	for _, a := range igt.GlossAbbrs() {
		if a.Expansion == "" {
			continue
		}
		if !expanded {
			b.WriteByte('\n')
			expanded = true
		}
		fmt.Fprintf(&b, "%s = %s\n", a.Abbr, a.Expansion)
	}
	return b.String()
}

// Pprint writes the Pretty rendering to w.
func (igt *IGT) Pprint(w io.Writer) {
	fmt.Fprint(w, igt.Pretty())
}

// Check validates the IGT against the numbered Leipzig rules and
// returns the violations. In lenient mode (strict=false) the error is
// always nil and callers inspect the returned violations. In strict
// mode the first violation is returned as the error; strict verbose
// mode joins all of them. Verbose mode writes the human rendering to
// stdout first, regardless of outcome.
func (igt *IGT) Check(strict, verbose bool) ([]Violation, error) {
	return igt.CheckTo(os.Stdout, strict, verbose)
}

// CheckTo is Check with an explicit destination for verbose output.
func (igt *IGT) CheckTo(w io.Writer, strict, verbose bool) ([]Violation, error) {
	if verbose {
		igt.Pprint(w)
	}
	vv := igt.violations
	if len(vv) == 0 || !strict {
		return vv, nil
	}
	if !verbose {
		return vv, vv[0]
	}
	errs := make([]error, len(vv))
	for i, v := range vv {
		errs[i] = v
	}
	return vv, errors.Join(errs...)
}
