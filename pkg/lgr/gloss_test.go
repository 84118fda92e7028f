package lgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultClassify(t *testing.T) {
	tests := []struct {
		token    string
		expected ElementKind
	}{
		{"ABL", Grammatical},
		{"2DL", Grammatical},
		{"ZZZ", Grammatical},
		{"1", Grammatical},
		{"stone", Lexical},
		{"1Pl", Lexical},
		{"earth", Lexical},
		{"", Lexical},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := DefaultClassify(tt.token); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParseGlossElements(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		gloss    string
		concepts map[ElementKind][]string
	}{
		{"1SG.SUBJ", map[ElementKind][]string{Grammatical: {"1SG.SUBJ"}}},
		{"earth", map[ElementKind][]string{Lexical: {"earth"}}},
		{"mach", map[ElementKind][]string{Lexical: {"mach"}}},
		{"come.out", map[ElementKind][]string{Lexical: {"come out"}}},
		{"come_out", map[ElementKind][]string{Lexical: {"come out"}}},
		{"get.dark:PRS", map[ElementKind][]string{Lexical: {"get dark"}, Grammatical: {"PRS"}}},
		{"exist:REDUP:all", map[ElementKind][]string{Lexical: {"exist", "all"}, Grammatical: {"REDUP"}}},
		{"to.ART.PL", map[ElementKind][]string{Lexical: {"to"}, Grammatical: {"ART.PL"}}},
		{"eat.they.shall", map[ElementKind][]string{Lexical: {"eat they shall"}}},
		{"DEF:CL", map[ElementKind][]string{Grammatical: {"DEF", "CL"}}},
	}

	for _, tt := range tests {
		t.Run(tt.gloss, func(t *testing.T) {
			g := ParseGloss(tt.gloss, policy)
			assert.Equal(t, tt.concepts[Grammatical], g.GrammaticalConcepts())
			assert.Equal(t, tt.concepts[Lexical], g.LexicalConcepts())
		})
	}
}

func TestParseGlossSecondarySeparator(t *testing.T) {
	g := ParseGloss("to.run;to_walk", DefaultPolicy())
	require.Len(t, g.Elements, 2)
	assert.Equal(t, []string{"to run", "to walk"}, g.LexicalConcepts())
	assert.False(t, g.Elements[0].AfterSemicolon)
	assert.True(t, g.Elements[1].AfterSemicolon)
}

func TestParseGlossCategoryRegion(t *testing.T) {
	g := ParseGloss("get.dark:PRS", DefaultPolicy())
	require.Len(t, g.Elements, 2)
	assert.False(t, g.Elements[0].AfterColon)
	assert.True(t, g.Elements[1].AfterColon)
}

func TestParseGlossEnclosures(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		gloss     string
		elements  int
		enclosure Enclosure
		enclosed  string
	}{
		{"boy[NOM.SG]", 2, EncNonovert, "NOM.SG"},
		{"tree(G4)", 2, EncInherent, "G4"},
		{"<ACTFOC>buy", 2, EncInfix, "ACTFOC"},
		{"leave<PRS>", 2, EncInfix, "PRS"},
	}

	for _, tt := range tests {
		t.Run(tt.gloss, func(t *testing.T) {
			g := ParseGloss(tt.gloss, policy)
			require.Len(t, g.Elements, tt.elements)
			var enclosed *GlossElement
			for i := range g.Elements {
				if g.Elements[i].Enclosure == tt.enclosure {
					enclosed = &g.Elements[i]
				}
			}
			require.NotNil(t, enclosed, "no element with enclosure %v", tt.enclosure)
			assert.Equal(t, tt.enclosed, enclosed.Text())
			assert.Equal(t, Grammatical, enclosed.Kind)
		})
	}
}

func TestParseGlossMorphophonemic(t *testing.T) {
	g := ParseGloss(`PST\break`, DefaultPolicy())
	require.Len(t, g.Elements, 2)
	assert.Equal(t, Grammatical, g.Elements[0].Kind)
	assert.True(t, g.Elements[1].Morphophonemic)
	assert.Equal(t, []string{"break"}, g.LexicalConcepts())
}

func TestParseGlossAgentLike(t *testing.T) {
	g := ParseGloss("2DU>3SG", DefaultPolicy())
	require.Len(t, g.Elements, 2)
	assert.True(t, g.Elements[1].PatientLike)
	assert.True(t, g.AgentLike(0))
	assert.False(t, g.AgentLike(1))
	assert.Equal(t, []string{"2DU", "3SG"}, g.GrammaticalConcepts())
}

func TestParseGlossEmpty(t *testing.T) {
	g := ParseGloss("", DefaultPolicy())
	assert.Empty(t, g.Elements)
	assert.Equal(t, "", g.Raw)
}

func TestSubAbbrs(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		gloss    string
		expected []string
	}{
		{"GEN.PL", []string{"GEN", "PL"}},
		{"PRS.1.PL", []string{"PRS", "PL"}}, // bare person digits are not abbreviations
		{"1SG", []string{"1SG"}},
		{"mach", nil},
	}

	for _, tt := range tests {
		t.Run(tt.gloss, func(t *testing.T) {
			g := ParseGloss(tt.gloss, policy)
			require.Len(t, g.Elements, 1)
			assert.Equal(t, tt.expected, g.Elements[0].SubAbbrs())
		})
	}
}

func TestClassifyOverride(t *testing.T) {
	policy := DefaultPolicy()
	policy.Classify = func(token string) ElementKind {
		// A corpus that glosses proper nouns in caps can force them
		// lexical.
		if token == "JAKARTA" {
			return Lexical
		}
		return DefaultClassify(token)
	}
	g := ParseGloss("JAKARTA", policy)
	assert.Equal(t, []string{"JAKARTA"}, g.LexicalConcepts())
	assert.Empty(t, g.GrammaticalConcepts())
}
