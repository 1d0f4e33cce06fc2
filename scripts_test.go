package glyphnames

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestScriptSuffixesUnique(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	seen := map[string]string{}
	for designation, suffix := range ScriptSuffixes {
		if other, ok := seen[suffix]; ok {
			t.Errorf("suffix %q assigned to both %q and %q", suffix, other, designation)
		}
		seen[suffix] = designation
	}
}

func TestScriptSuffixesWellFormed(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for designation, suffix := range ScriptSuffixes {
		if suffix == "" || suffix != strings.ToLower(suffix) {
			t.Errorf("suffix %q of %q is not a lowercase tag", suffix, designation)
		}
		for _, r := range suffix {
			if r < 'a' || r > 'z' {
				t.Errorf("suffix %q of %q contains non-letter %q", suffix, designation, r)
			}
		}
	}
}

func TestScriptDetectionAnchored(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// A script word in the middle of a name is part of the character's
	// identity, never a script match.
	tests := []struct {
		name  string
		glyph string
	}{
		{"FULLWIDTH LATIN SMALL LETTER A", "fullwidthLatinSmallA"},
		{"HALFWIDTH KATAKANA LETTER SMALL A", "halfwidthKatakanaSmallA"},
		{"SQUARE ERA NAME REIWA", "squareEraNameReiwa"},
	}
	for _, tc := range tests {
		if got := glyph(1, tc.name); got != tc.glyph {
			t.Errorf("expected %q to map to %q, got %q", tc.name, tc.glyph, got)
		}
	}
}

func TestScriptDetectionLongestMatch(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tests := []struct {
		name  string
		glyph string
	}{
		{"CAUCASIAN ALBANIAN LETTER ALT", "alt-aghb"},
		{"KHITAN SMALL SCRIPT CHARACTER-18B00", "character18b00-kits"},
		{"OLD TURKIC LETTER ORKHON A", "turkicOrkhonA-old"},
		{"TAI LE LETTER KA", "leKa-tai"},
	}
	for _, tc := range tests {
		if got := glyph(1, tc.name); got != tc.glyph {
			t.Errorf("expected %q to map to %q, got %q", tc.name, tc.glyph, got)
		}
	}
}

func TestScriptWordEchoRemoved(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// All occurrences of the matched designation words disappear, not
	// only the leading ones.
	tr := &transducer{raw: "GREEK CAPITAL LETTER GREEK OMEGA"}
	tr.tokens = strings.Fields(tr.raw)
	tr.detectScript()
	if tr.suffix != "gr" {
		t.Fatalf("expected suffix gr, got %q", tr.suffix)
	}
	for _, tok := range tr.tokens {
		if tok == "GREEK" {
			t.Errorf("designation word GREEK survived in %v", tr.tokens)
		}
	}
}
