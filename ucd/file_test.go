package ucd

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

const unicodeDataFragment = `0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
0061;LATIN SMALL LETTER A;Ll;0;L;;;;;N;;;0041;;0041
0627;ARABIC LETTER ALEF;Lo;0;AL;;;;;N;;;;;
3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;
4DBF;<CJK Ideograph Extension A, Last>;Lo;0;L;;;;;N;;;;;
`

func TestLoadFile(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	src, err := LoadFile(strings.NewReader(unicodeDataFragment))
	if err != nil {
		t.Fatalf("cannot load fragment: %v", err)
	}
	c := src.CharacterData(0x41)
	if c.Name != "LATIN CAPITAL LETTER A" || c.Category != "Lu" {
		t.Errorf("unexpected record for U+0041: %+v", c)
	}
	c = src.CharacterData(0x627)
	if c.Name != "ARABIC LETTER ALEF" {
		t.Errorf("unexpected record for U+0627: %+v", c)
	}
}

func TestLoadFileRanges(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	src, err := LoadFile(strings.NewReader(unicodeDataFragment))
	if err != nil {
		t.Fatalf("cannot load fragment: %v", err)
	}
	// Range members resolve to the bracketed label, i.e. a placeholder.
	c := src.CharacterData(0x3500)
	if c.Name != "<CJK Ideograph Extension A>" {
		t.Errorf("expected range label for U+3500, got %q", c.Name)
	}
	if !c.IsPlaceholder() {
		t.Errorf("range member U+3500 must be a placeholder")
	}
	if c.Category != "Lo" {
		t.Errorf("expected category Lo for U+3500, got %q", c.Category)
	}
	// Outside any range and any single record: empty record.
	if c = src.CharacterData(0x5000); !c.IsPlaceholder() || c.Name != "" {
		t.Errorf("expected empty record for U+5000, got %+v", c)
	}
}

func TestLoadFileUnterminatedRange(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	_, err := LoadFile(strings.NewReader("3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;\n"))
	if err == nil {
		t.Errorf("expected error for unterminated First/Last range")
	}
}
