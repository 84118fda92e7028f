package lgr

import (
	"fmt"
	"io"
)

// ConceptKind selects which side of the gloss decomposition a concept
// query targets.
type ConceptKind string

const (
	// GrammarConcepts indexes grammatical abbreviation elements.
	GrammarConcepts ConceptKind = "grammar"
	// LexiconConcepts indexes free-form lexical gloss elements.
	LexiconConcepts ConceptKind = "lexicon"
)

// ConceptRef points back into the owning corpus structure: IGT index,
// word index within the IGT, morpheme index within the word.
type ConceptRef struct {
	IGT      int
	Word     int
	Morpheme int
}

func (r ConceptRef) String() string {
	return fmt.Sprintf("%d:%d:%d", r.IGT, r.Word, r.Morpheme)
}

// Corpus is an ordered, indexable collection of IGT instances. The
// concept index is a weak, rebuildable view over it: recomputed in full
// on request, never incrementally patched.
type Corpus struct {
	igts []*IGT
}

// NewCorpus builds a corpus over the given IGTs, preserving order.
func NewCorpus(igts ...*IGT) *Corpus {
	return &Corpus{igts: igts}
}

// Len returns the number of IGTs.
func (c *Corpus) Len() int {
	return len(c.igts)
}

// Get returns the IGT at index i.
func (c *Corpus) Get(i int) *IGT {
	return c.igts[i]
}

// IGTs returns the underlying ordered collection.
func (c *Corpus) IGTs() []*IGT {
	return c.igts
}

// Concepts builds the inverted concept index for one concept kind: a
// mapping from concept string to its ordered reference list. Order
// within each list follows traversal order (IGT, then word, then
// morpheme); downstream consumers rely on it to present "first
// occurrence" consistently. Only aligned material is indexed: a
// concept-to-form pairing is meaningless where alignment failed.
func (c *Corpus) Concepts(kind ConceptKind) map[string][]ConceptRef {
	index := make(map[string][]ConceptRef)
	for i, igt := range c.igts {
		if igt.Conformance() == Unaligned {
			continue
		}
		for wi, gw := range igt.Words() {
			if !gw.Aligned {
				continue
			}
			for mi, gm := range gw.Morphemes {
				if gm.Morpheme == "" {
					continue
				}
				ref := ConceptRef{IGT: i, Word: wi, Morpheme: mi}
				var concepts []string
				switch kind {
				case GrammarConcepts:
					concepts = gm.GrammaticalConcepts()
				case LexiconConcepts:
					concepts = gm.LexicalConcepts()
				}
				for _, concept := range concepts {
					index[concept] = append(index[concept], ref)
				}
			}
		}
	}
	return index
}

// Stats counts examples, words and morphemes over the phrase lines,
// regardless of alignment.
func (c *Corpus) Stats() (examples, words, morphemes int) {
	examples = len(c.igts)
	for _, igt := range c.igts {
		for _, w := range igt.Phrase() {
			words++
			segs, _ := igt.policy.SplitMorphemes(w)
			for _, s := range segs {
				if s != "" {
					morphemes++
				}
			}
		}
	}
	return examples, words, morphemes
}

// ConformanceStats returns the histogram of conformance levels.
func (c *Corpus) ConformanceStats() map[Conformance]int {
	stats := make(map[Conformance]int)
	for _, igt := range c.igts {
		stats[igt.Conformance()]++
	}
	return stats
}

// CheckAll writes a gloss-checking report for every IGT to w and
// returns the number of reported problems. level 1 reports word-count
// mismatches; level 2 additionally reports morpheme-count mismatches
// within words.
func (c *Corpus) CheckAll(w io.Writer, level int) int {
	count := 0
	for i, igt := range c.igts {
		id := igt.ID
		if id == "" {
			id = fmt.Sprintf("%d", i)
		}
		if level >= 1 && igt.Conformance() == Unaligned {
			count++
			fmt.Fprintf(w, "[%s : word level]\n%s\n%s\n---\n", id, igt.PhraseText(), igt.GlossText())
		}
		if level >= 2 {
			for wi, gw := range igt.Words() {
				if gw.Aligned {
					continue
				}
				count++
				fmt.Fprintf(w, "[%s:%d : morpheme level]\n%s\n%s\n---\n", id, wi, gw.Word, gw.Gloss)
			}
		}
	}
	return count
}
