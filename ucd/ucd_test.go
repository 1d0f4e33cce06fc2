package ucd

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestRuneNamesSource(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	src := RuneNames()
	c := src.CharacterData('A')
	if c.Name != "LATIN CAPITAL LETTER A" {
		t.Errorf("expected name of 'A', got %q", c.Name)
	}
	if c.Category != "Lu" {
		t.Errorf("expected category Lu for 'A', got %q", c.Category)
	}
	if c.IsPlaceholder() {
		t.Errorf("'A' must not be a placeholder")
	}
}

func TestPlaceholders(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tests := []rune{
		0x0000,   // <control>
		0xE000,   // private use
		0xD800,   // surrogate
		0x10FFFE, // noncharacter
	}
	src := RuneNames()
	for _, r := range tests {
		if c := src.CharacterData(r); !c.IsPlaceholder() {
			t.Errorf("expected %#U to be a placeholder, name is %q", r, c.Name)
		}
	}
}

func TestSourceIsTotal(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	src := RuneNames()
	// Out-of-range lookups answer with an empty record, they never panic.
	for _, r := range []rune{-1, 0x110000} {
		c := src.CharacterData(r)
		if !c.IsPlaceholder() {
			t.Errorf("expected out-of-range %#x to be a placeholder", r)
		}
	}
}

func TestCategoryAlias(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tests := []struct {
		r     rune
		alias string
	}{
		{'A', "Lu"},
		{'a', "Ll"},
		{'0', "Nd"},
		{0x0301, "Mn"}, // COMBINING ACUTE ACCENT
		{' ', "Zs"},
	}
	for _, tc := range tests {
		if got := categoryAlias(tc.r); got != tc.alias {
			t.Errorf("category of %#U: expected %q, got %q", tc.r, tc.alias, got)
		}
	}
}
