package ucd

import (
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// Character is the read-only record a Source supplies per codepoint. It is
// fetched fresh per call and never cached by the consumer.
type Character struct {
	Codepoint rune
	Name      string // official Unicode name, or a "<…>" placeholder, or empty
	Category  string // two-letter general category alias ("Lu", "Mn"), may be empty
}

// IsPlaceholder reports whether the record carries no usable character
// name: the name is absent, or it is one of the "<…>"-bracketed range
// labels ("<control>", "<CJK Ideograph Extension A>") the name table uses
// for codepoints without individual names.
func (c Character) IsPlaceholder() bool {
	return c.Name == "" || strings.HasPrefix(c.Name, "<")
}

// Source provides character data per codepoint. Implementations are
// read-only and total: CharacterData never blocks and never fails, it
// answers unassigned codepoints with a placeholder record.
//
// Sources must be safe for concurrent use.
type Source interface {
	CharacterData(r rune) Character
}

// RuneNames returns the default character-data source, backed by the
// Unicode name table of golang.org/x/text/unicode/runenames. The general
// category is resolved from the standard library's range tables.
func RuneNames() Source {
	return runeNamesSource{}
}

type runeNamesSource struct{}

func (runeNamesSource) CharacterData(r rune) Character {
	if r < 0 || r > 0x10FFFF {
		return Character{Codepoint: r}
	}
	return Character{
		Codepoint: r,
		Name:      runenames.Name(r),
		Category:  categoryAlias(r),
	}
}
