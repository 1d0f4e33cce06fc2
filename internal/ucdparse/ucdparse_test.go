package ucdparse

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestParseSingleItems(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	input := `# a comment line
0041;LATIN CAPITAL LETTER A;Lu
0061;LATIN SMALL LETTER A;Ll   # trailing comment

`
	var tokens []*Token
	err := Parse(strings.NewReader(input), func(token *Token) {
		tokens = append(tokens, token)
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 data lines, got %d", len(tokens))
	}
	from, to := tokens[0].Range()
	if from != 0x41 || to != 0x41 {
		t.Errorf("expected single rune U+0041, got %#U..%#U", from, to)
	}
	if tokens[0].Field(1) != "LATIN CAPITAL LETTER A" {
		t.Errorf("unexpected field 1: %q", tokens[0].Field(1))
	}
	if tokens[1].Comment != "trailing comment" {
		t.Errorf("unexpected comment: %q", tokens[1].Comment)
	}
}

func TestParseRuneRange(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	input := "0030..0039;Nd\n"
	var tokens []*Token
	err := Parse(strings.NewReader(input), func(token *Token) {
		tokens = append(tokens, token)
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected 1 data line, got %d", len(tokens))
	}
	from, to := tokens[0].Range()
	if from != 0x30 || to != 0x39 {
		t.Errorf("expected range U+0030..U+0039, got %#U..%#U", from, to)
	}
}

func TestParseErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	inputs := []string{
		"XYZ;not a codepoint\n",
		"0039..0030;inverted\n",
		"110000;out of range\n",
	}
	for _, input := range inputs {
		err := Parse(strings.NewReader(input), func(*Token) {})
		if err == nil {
			t.Errorf("expected parse error for %q", input)
		}
	}
}
