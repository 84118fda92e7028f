package lgr

import "strings"

// ElementKind is the two-way classification of a gloss element.
type ElementKind int

const (
	// Lexical is a free-form translation token, e.g. "earth".
	Lexical ElementKind = iota
	// Grammatical is an uppercase abbreviation token, e.g. "1SG.SUBJ".
	Grammatical
)

func (k ElementKind) String() string {
	if k == Grammatical {
		return "grammatical"
	}
	return "lexical"
}

// Enclosure identifies the bracket variant an element was written in.
type Enclosure int

const (
	// EncNone is a plain, unenclosed element.
	EncNone Enclosure = iota
	// EncInfix is an element in angle brackets (LGR Rule 9).
	EncInfix
	// EncNonovert is an element in square brackets (LGR Rule 6).
	EncNonovert
	// EncInherent is an element in round brackets (LGR Rule 7).
	EncInherent
)

// GlossElement is one typed element of a morpheme gloss. Sub-tokens
// joined by the element separator ("1SG.SUBJ") form a single element;
// Parts holds them in order.
type GlossElement struct {
	Parts     []string
	Kind      ElementKind
	Enclosure Enclosure

	// AfterColon marks elements after the first category separator.
	// They participate in classification identically but are exempt
	// from morpheme-count-matching rules.
	AfterColon bool
	// AfterSemicolon marks elements introduced by ";" (LGR Rule 4B).
	AfterSemicolon bool
	// Morphophonemic marks elements introduced by "\" (LGR Rule 4D).
	Morphophonemic bool
	// PatientLike marks elements introduced by ">" (LGR Rule 4E).
	PatientLike bool
}

// Text returns the element as written, with sub-tokens rejoined.
func (e GlossElement) Text() string {
	return strings.Join(e.Parts, ".")
}

// Concept returns the element's concept-index key: the literal
// abbreviation for grammatical elements, the space-normalized
// translation for lexical ones.
func (e GlossElement) Concept() string {
	if e.Kind == Grammatical {
		return e.Text()
	}
	return strings.ReplaceAll(strings.Join(e.Parts, " "), "_", " ")
}

// SubAbbrs returns the element's sub-abbreviations, skipping bare
// person digits (LGR Rule 5). Empty for lexical elements.
func (e GlossElement) SubAbbrs() []string {
	if e.Kind != Grammatical {
		return nil
	}
	var abbrs []string
	for _, part := range e.Parts {
		if !allDigits(part) {
			abbrs = append(abbrs, part)
		}
	}
	return abbrs
}

// Gloss is the gloss string of one morpheme, decomposed into typed
// elements. Raw keeps the string as written.
type Gloss struct {
	Raw      string
	Elements []GlossElement
}

// AgentLike reports whether element i is the agent-like argument of a
// following patient-like element (LGR Rule 4E, "2DU>3SG").
func (g Gloss) AgentLike(i int) bool {
	return i >= 0 && i+1 < len(g.Elements) && g.Elements[i+1].PatientLike
}

// GrammaticalConcepts returns the grammatical elements in order.
func (g Gloss) GrammaticalConcepts() []string {
	var concepts []string
	for _, e := range g.Elements {
		if e.Kind == Grammatical {
			concepts = append(concepts, e.Concept())
		}
	}
	return concepts
}

// LexicalConcepts returns the lexical elements in order.
func (g Gloss) LexicalConcepts() []string {
	var concepts []string
	for _, e := range g.Elements {
		if e.Kind == Lexical {
			concepts = append(concepts, e.Concept())
		}
	}
	return concepts
}

// DefaultClassify classifies a gloss token by surface shape: tokens
// consisting entirely of uppercase ASCII letters and digits are
// grammatical (closed-class heuristic; dictionary membership is not
// required), everything else is lexical.
func DefaultClassify(token string) ElementKind {
	if token == "" {
		return Lexical
	}
	for _, r := range token {
		if !(r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return Lexical
		}
	}
	return Grammatical
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var enclosures = map[rune]struct {
	close rune
	kind  Enclosure
}{
	'<': {'>', EncInfix},
	'[': {']', EncNonovert},
	'(': {')', EncInherent},
}

// rawToken is one scanned piece of a morpheme gloss before grouping.
type rawToken struct {
	text      string
	sep       rune // separator that introduced the token, 0 for none
	enclosure Enclosure
}

// ParseGloss decomposes one morpheme's gloss string into typed
// elements. It is a pure function: any string has a valid
// decomposition, including the degenerate single-lexical-element case;
// the empty string decomposes into zero elements (a violation reported
// at validation time, not here).
func ParseGloss(raw string, p *Policy) Gloss {
	classify := p.Classify
	if classify == nil {
		classify = DefaultClassify
	}

	tokens := scanGlossTokens(raw, p)

	g := Gloss{Raw: raw}
	inCategory := false
	for _, tok := range tokens {
		if tok.sep == p.CategorySeparator {
			inCategory = true
		}
		kind := classify(tok.text)
		if n := len(g.Elements); n > 0 && tok.sep == p.ElementSeparator &&
			g.Elements[n-1].Kind == kind && g.Elements[n-1].Enclosure == tok.enclosure {
			g.Elements[n-1].Parts = append(g.Elements[n-1].Parts, tok.text)
			continue
		}
		g.Elements = append(g.Elements, GlossElement{
			Parts:          []string{tok.text},
			Kind:           kind,
			Enclosure:      tok.enclosure,
			AfterColon:     inCategory,
			AfterSemicolon: tok.sep == p.SecondarySeparator,
			Morphophonemic: tok.sep == p.MorphophonemicSeparator,
			PatientLike:    tok.sep == p.PatientSeparator,
		})
	}
	return g
}

// scanGlossTokens splits a morpheme gloss on the element-level
// separators and enclosures. Empty segments are dropped, so a gloss may
// legitimately start with a separator (required for infixes such as
// "<ACTFOC>buy").
func scanGlossTokens(raw string, p *Policy) []rawToken {
	var tokens []rawToken
	var cur strings.Builder
	sep := rune(0)

	flush := func(next rune) {
		if cur.Len() > 0 {
			tokens = append(tokens, rawToken{text: cur.String(), sep: sep})
			cur.Reset()
		}
		sep = next
	}

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if enc, ok := enclosures[r]; ok {
			flush(r)
			// Consume up to the matching end marker; the enclosed
			// content splits on the element separator.
			var inner strings.Builder
			for i++; i < len(runes) && runes[i] != enc.close; i++ {
				inner.WriteRune(runes[i])
			}
			encSep := r
			for _, part := range strings.Split(inner.String(), string(p.ElementSeparator)) {
				if part == "" {
					continue
				}
				tokens = append(tokens, rawToken{text: part, sep: encSep, enclosure: enc.kind})
				encSep = p.ElementSeparator
			}
			sep = 0
			continue
		}
		switch r {
		case p.ElementSeparator, p.CategorySeparator, p.SecondarySeparator,
			p.MorphophonemicSeparator, p.PatientSeparator:
			flush(r)
		default:
			cur.WriteRune(r)
		}
	}
	flush(0)
	return tokens
}
