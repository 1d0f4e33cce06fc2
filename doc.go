/*
Package glyphnames derives glyph names from Unicode character names.

Font-engineering tools need a short, stable, ASCII identifier for every
glyph they touch. The official Unicode character names are none of these
things: they are long, space-separated, all-uppercase phrases such as

	ARABIC LETTER ALEF WITH MADDA ABOVE

This package transduces such a name into a compact camelCase identifier
carrying a short script tag,

	alefMaddaAbove-ar

while guaranteeing that no two named codepoints collapse onto the same
identifier, that the output is plain ASCII without underscores, and that
every codepoint — named or not — receives some symbolic representation
(unnamed codepoints fall back to the conventional "uni0020" form).

Typical Usage

The one-shot functions consult the default character-data source, which is
backed by golang.org/x/text/unicode/runenames:

	glyphnames.ForRune('ω')          // ⇒ "omega-gr"
	glyphnames.ForRune(0x0627)       // ⇒ "alef-ar"
	glyphnames.ForRune(0x0000)       // ⇒ "uni0000"

Clients holding their own character data — for example a pinned
UnicodeData.txt snapshot loaded with package ucd — hand records in
directly:

	c := ucd.Character{Codepoint: 0x00C6, Name: "LATIN CAPITAL LETTER AE"}
	glyphnames.ForCharacter(c)       // ⇒ "AE-lat"

For whole-repertoire work there is a lazy catalog which enumerates every
named codepoint, optionally sharded over parallel workers:

	cat := glyphnames.NewCatalog(ucd.RuneNames())
	cat.Each(func(e glyphnames.Entry) bool {
	    fmt.Printf("U+%04X %s -> %s\n", e.Codepoint, e.Name, e.GlyphName)
	    return true
	})

How It Works

A name runs through a fixed pipeline of rule stages: the name is split
into word tokens; a leading script designation is recognized (longest
match) and converted into the trailing script tag; descriptive category
and case words (LETTER, MARK, SMALL, …) are dropped — unless one of a set
of disambiguation rules determines that this particular occurrence is the
only thing telling two characters apart; filler words are removed;
script-specific special forms (combining marks, Hangul jamo positions,
Hebrew accents, Runic transliteration lists, Cuneiform compounds, Latin
ligatures) are rewritten; finally the remaining tokens are assembled into
a camelCase body with the recorded suffix words and the script tag.

The transform is a pure function of the character record. There is no
shared mutable state; all lookup tables are immutable after process
start, so calls may run concurrently without coordination.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphnames

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to glyphs.names .
func tracer() tracing.Trace {
	return tracing.Select("glyphs.names")
}
