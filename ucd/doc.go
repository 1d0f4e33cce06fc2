/*
Package ucd supplies per-codepoint character data to the glyph-name
transducer.

The transducer only ever reads one record per codepoint: the official
character name plus, for surrounding tooling, the general category. Package
ucd abstracts where that record comes from behind the Source interface.

The default source (RuneNames) is backed by the Unicode name table shipped
with golang.org/x/text and needs no external files. For reproducible
full-range audits, LoadFile parses a pinned UnicodeData.txt snapshot into a
Source instead.

Sources are total over [0, 0x10FFFF]: a lookup never fails, it answers with
a placeholder record for unassigned, control, private-use and surrogate
codepoints. Character.IsPlaceholder tells the two cases apart.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ucd

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to glyphs.ucd .
func tracer() tracing.Trace {
	return tracing.Select("glyphs.ucd")
}
