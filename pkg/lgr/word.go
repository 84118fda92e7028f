package lgr

import "strings"

// GlossedMorpheme is one aligned (morpheme, gloss) pair within a word.
type GlossedMorpheme struct {
	// Morpheme is the object-language surface string.
	Morpheme string
	// Gloss is the decomposed morpheme gloss.
	Gloss Gloss
	// Sep is the separator preceding the morpheme on the word line
	// (zero Separator for the first morpheme).
	Sep Separator
	// GlossSep is the separator preceding the morpheme gloss on the
	// gloss line. It must agree with Sep; disagreement is a rule
	// violation.
	GlossSep Separator
	// Dangling marks the empty outer morpheme of a word that begins or
	// ends with a separator under the Multi-CAST convention. Dangling
	// morphemes keep alignment counts consistent and are exempt from
	// the empty-morpheme rule.
	Dangling bool
}

// GrammaticalConcepts returns the grammatical abbreviation strings of
// the morpheme's gloss, in order.
func (gm *GlossedMorpheme) GrammaticalConcepts() []string {
	return gm.Gloss.GrammaticalConcepts()
}

// LexicalConcepts returns the free-form lexical gloss strings of the
// morpheme's gloss, in order.
func (gm *GlossedMorpheme) LexicalConcepts() []string {
	return gm.Gloss.LexicalConcepts()
}

// GlossedWord is one aligned (word, word gloss) pair within an IGT.
type GlossedWord struct {
	// Word and Gloss are the raw aligned strings from the phrase and
	// gloss lines.
	Word  string
	Gloss string
	// Morphemes holds the aligned morpheme pairs. When the two sides
	// disagree on morpheme count the pairs are zipped positionally up
	// to the shorter side; the mismatch surfaces at validation time.
	Morphemes []GlossedMorpheme
	// Aligned reports whether both sides split into the same number of
	// morphemes.
	Aligned bool
}

// newGlossedWord tokenizes one aligned word pair. Count mismatches are
// recorded, never raised: partially-malformed input stays inspectable.
func newGlossedWord(word, gloss string, p *Policy) GlossedWord {
	gw := GlossedWord{Word: word, Gloss: gloss}

	wordSegs, wordSeps := p.SplitMorphemes(word)
	glossSegs, glossSeps := p.SplitMorphemes(gloss)
	gw.Aligned = len(wordSegs) == len(glossSegs)

	n := min(len(wordSegs), len(glossSegs))
	for j := 0; j < n; j++ {
		gm := GlossedMorpheme{
			Morpheme: wordSegs[j],
			Gloss:    ParseGloss(glossSegs[j], p),
		}
		if j > 0 {
			gm.Sep = wordSeps[j-1]
			gm.GlossSep = glossSeps[j-1]
		}
		if p.Dangling && wordSegs[j] == "" && glossSegs[j] == "" &&
			(j == 0 || j == len(wordSegs)-1) && n > 1 {
			gm.Dangling = true
		}
		gw.Morphemes = append(gw.Morphemes, gm)
	}
	return gw
}

// WordFromMorphemes re-joins the morpheme surfaces with their recorded
// separators. For an aligned word this reproduces Word exactly.
func (gw *GlossedWord) WordFromMorphemes() string {
	var b strings.Builder
	for j, gm := range gw.Morphemes {
		if j > 0 {
			b.WriteString(gm.Sep.Text)
		}
		b.WriteString(gm.Morpheme)
	}
	return b.String()
}

// GlossFromMorphemes re-joins the morpheme glosses with their recorded
// separators. For an aligned word this reproduces Gloss exactly.
func (gw *GlossedWord) GlossFromMorphemes() string {
	var b strings.Builder
	for j, gm := range gw.Morphemes {
		if j > 0 {
			b.WriteString(gm.GlossSep.Text)
		}
		b.WriteString(gm.Gloss.Raw)
	}
	return b.String()
}
