package lgr

import (
	"strings"
	"testing"
)

func TestSplitMorphemes(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		word     string
		segments string // expected segments, space-joined
		seps     string // expected separators, in order
	}{
		{"yerak~rak-im", "yerak rak im", "~-"},
		{"palasi=lu", "palasi lu", "="},
		{"abur-u-n", "abur u n", "--"},
		{"2DU>3SG-FUT-poke", "2DU>3SG FUT poke", "--"},
		{"Jakarta", "Jakarta", ""},
		{"-im", " im", "-"},
		{"abur-", "abur ", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			segments, seps := policy.SplitMorphemes(tt.word)
			if got := strings.Join(segments, " "); got != tt.segments {
				t.Errorf("Expected segments %q, got %q", tt.segments, got)
			}
			var sepText strings.Builder
			for _, s := range seps {
				sepText.WriteString(s.Text)
			}
			if sepText.String() != tt.seps {
				t.Errorf("Expected separators %q, got %q", tt.seps, sepText.String())
			}
			if len(segments) != len(seps)+1 {
				t.Errorf("Expected %d segments for %d separators, got %d",
					len(seps)+1, len(seps), len(segments))
			}
		})
	}
}

func TestSplitMorphemesKinds(t *testing.T) {
	policy := DefaultPolicy()
	_, seps := policy.SplitMorphemes("palasi=lu~lu-im")
	if len(seps) != 3 {
		t.Fatalf("Expected 3 separators, got %d", len(seps))
	}
	expected := []SeparatorKind{SepClitic, SepReduplication, SepAffix}
	for i, kind := range expected {
		if seps[i].Kind != kind {
			t.Errorf("Separator %d: expected kind %v, got %v", i, kind, seps[i].Kind)
		}
	}
}

func TestSplitWords(t *testing.T) {
	policy := DefaultPolicy()
	words := policy.SplitWords("Mereka  di  Jakarta sekarang.")
	if len(words) != 4 {
		t.Errorf("Expected 4 words, got %d: %v", len(words), words)
	}
}

func TestStripSeparators(t *testing.T) {
	policy := DefaultPolicy()
	if got := policy.StripSeparators("a-b=c~d"); got != "abcd" {
		t.Errorf("Expected 'abcd', got %q", got)
	}
}

func TestApplyPolicyToDefaults(t *testing.T) {
	pf := &PolicyFile{
		Separators: []SeparatorRule{{Text: "#", Kind: "affix", Rule: 2}},
	}
	policy, err := ApplyPolicyToDefaults(pf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	segments, _ := policy.SplitMorphemes("a#d")
	if strings.Join(segments, " ") != "a d" {
		t.Errorf("Expected custom separator to split 'a#d', got %v", segments)
	}
	// The default separators are replaced wholesale.
	segments, _ = policy.SplitMorphemes("a-d")
	if len(segments) != 1 {
		t.Errorf("Expected '-' to no longer split, got %v", segments)
	}
}

func TestApplyPolicyToDefaultsAbbreviations(t *testing.T) {
	pf := &PolicyFile{
		Abbreviations: []AbbrRule{{Abbr: "ACTFOC", Expansion: "actor focus"}},
	}
	policy, err := ApplyPolicyToDefaults(pf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	exp, ok := policy.Expansion("ACTFOC")
	if !ok || exp != "actor focus" {
		t.Errorf("Expected merged abbreviation, got %q (%v)", exp, ok)
	}
	// The standard dictionary stays available.
	if !policy.IsStandardAbbr("OBL") {
		t.Error("Expected standard abbreviations to survive the merge")
	}
}

func TestApplyPolicyToDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		file PolicyFile
	}{
		{"unknown kind", PolicyFile{Separators: []SeparatorRule{{Text: "-", Kind: "bogus"}}}},
		{"multi-rune separator", PolicyFile{Separators: []SeparatorRule{{Text: "--", Kind: "affix"}}}},
		{"duplicate separator", PolicyFile{Separators: []SeparatorRule{
			{Text: "-", Kind: "affix"}, {Text: "-", Kind: "clitic"}}}},
		{"element-level collision", PolicyFile{Separators: []SeparatorRule{{Text: ".", Kind: "affix"}}}},
		{"empty abbreviation", PolicyFile{Abbreviations: []AbbrRule{{Abbr: ""}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ApplyPolicyToDefaults(&tt.file); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestExpansion(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		abbr     string
		expected string
		known    bool
	}{
		{"OBL", "oblique", true},
		{"GEN", "genitive", true},
		{"FUT", "future", true},
		{"NEG", "negation, negative", true},
		{"1SG", "first person singular", true},
		{"1PL", "first person plural", true},
		{"2DU", "second person dual", true},
		{"SUBJ", "", false},
		{"A1SG", "", false},
		{"ZZZ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.abbr, func(t *testing.T) {
			exp, ok := policy.Expansion(tt.abbr)
			if ok != tt.known {
				t.Errorf("Expected known=%v, got %v", tt.known, ok)
			}
			if exp != tt.expected {
				t.Errorf("Expected expansion %q, got %q", tt.expected, exp)
			}
			if policy.IsStandardAbbr(tt.abbr) != tt.known {
				t.Errorf("IsStandardAbbr(%q) disagrees with Expansion", tt.abbr)
			}
		})
	}
}

func TestDefaultPolicyFile(t *testing.T) {
	pf := DefaultPolicyFile()
	if len(pf.Separators) != 3 {
		t.Fatalf("Expected 3 separators, got %d", len(pf.Separators))
	}
	policy, err := ApplyPolicyToDefaults(pf)
	if err != nil {
		t.Fatalf("Default policy file must re-apply cleanly: %v", err)
	}
	segments, _ := policy.SplitMorphemes("abur-u=n")
	if len(segments) != 3 {
		t.Errorf("Expected re-applied defaults to split as before, got %v", segments)
	}
}
