package ucd

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/glyphnames/internal/ucdparse"
)

// FileSource is a Source parsed from a UnicodeData.txt snapshot. It serves
// audits against a pinned UCD revision, decoupled from whatever Unicode
// version the x/text name table happens to ship.
type FileSource struct {
	chars  map[rune]Character
	ranges []charRange
}

// charRange covers a "…, First>"/"…, Last>" line pair of UnicodeData.txt,
// e.g. the CJK unified ideograph blocks. Members have no individual names
// and resolve to the bracketed range label.
type charRange struct {
	from, to rune
	label    string
	category string
}

// LoadFile parses a UnicodeData.txt snapshot into a FileSource.
func LoadFile(r io.Reader) (*FileSource, error) {
	src := &FileSource{chars: make(map[rune]Character)}
	var pending *charRange
	err := ucdparse.Parse(r, func(token *ucdparse.Token) {
		cp, _ := token.Range()
		name := token.Field(1)
		category := token.Field(2)
		switch {
		case strings.HasSuffix(name, ", First>"):
			pending = &charRange{
				from:     cp,
				label:    strings.TrimSuffix(name, ", First>") + ">",
				category: category,
			}
		case strings.HasSuffix(name, ", Last>"):
			if pending != nil {
				pending.to = cp
				src.ranges = append(src.ranges, *pending)
				pending = nil
			}
		default:
			src.chars[cp] = Character{Codepoint: cp, Name: name, Category: category}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("cannot load UnicodeData file: %w", err)
	}
	if pending != nil {
		return nil, fmt.Errorf("unterminated codepoint range %q", pending.label)
	}
	tracer().Infof("loaded %d characters and %d ranges", len(src.chars), len(src.ranges))
	return src, nil
}

// CharacterData is part of the Source interface.
func (s *FileSource) CharacterData(r rune) Character {
	if c, ok := s.chars[r]; ok {
		return c
	}
	for _, rng := range s.ranges {
		if r >= rng.from && r <= rng.to {
			return Character{Codepoint: r, Name: rng.label, Category: rng.category}
		}
	}
	return Character{Codepoint: r}
}
