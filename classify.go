package glyphnames

import "strings"

// Word sets of the classifier. Membership makes a word a removal
// *candidate* only: whether a concrete occurrence is removed is decided by
// the keep-rules below, evaluated per name before any token is touched.
//
// RADICAL, NUMBER, DIGIT and IDEOGRAPH never appear here. They are
// disambiguating by construction (NUMBER ONE vs DIGIT ONE, KANGXI RADICAL
// vs the plain ideograph) and are always retained.
var (
	dropCategories = map[string]bool{
		"LETTER":      true,
		"MARK":        true,
		"SIGN":        true,
		"SYMBOL":      true,
		"PUNCTUATION": true,
		"ACCENT":      true,
		"SYLLABLE":    true,
		"SYLLABICS":   true,
		"LIGATURE":    true,
		"SEPARATOR":   true,
		"CHARACTER":   true,
	}

	caseIndicators = map[string]bool{
		"CAPITAL": true,
		"SMALL":   true,
	}

	// Filler words. AND and OR are not in this set: they are load-bearing
	// (LOGICAL AND, N-ARY LOGICAL OR) and never removed.
	connectingWords = map[string]bool{
		"WITH": true,
		"OF":   true,
		"FOR":  true,
		"THE":  true,
		"TO":   true,
	}
)

// Script allow-lists gating individual keep-rules. Keys are script
// designations as recorded by detectScript.
var (
	// Scripts where LETTER vs SIGN is a meaningful distinction of
	// otherwise identically named characters.
	signKeepScripts = map[string]bool{
		"DEVANAGARI": true,
		"BENGALI":    true,
		"GURMUKHI":   true,
		"GUJARATI":   true,
		"ORIYA":      true,
		"TAMIL":      true,
		"TELUGU":     true,
		"KANNADA":    true,
		"MALAYALAM":  true,
		"SINHALA":    true,
		"TIBETAN":    true,
		"MYANMAR":    true,
		"KHMER":      true,
		"LAO":        true,
		"THAI":       true,
		"ARABIC":     true,
	}

	// Scripts with a case distinction in which a bare "LETTER X" (neither
	// SMALL nor CAPITAL) names a third, caseless character. The dropped
	// LETTER comes back as a trailing "Letter" suffix word for these.
	letterSuffixScripts = map[string]bool{
		"LATIN":    true,
		"GREEK":    true,
		"CYRILLIC": true,
		"GEORGIAN": true,
		"CHEROKEE": true,
		"LIMBU":    true,
		"PHAGS-PA": true,
	}

	// Scripts whose MARK characters shadow same-named LETTER or SIGN
	// characters. No script in current UCD data needs this; the gate
	// exists so the rule stays testable.
	markKeepScripts = map[string]bool{}

	// Scripts with alternate "SYMBOL" letterforms of regular letters
	// (GREEK PHI SYMBOL vs GREEK SMALL LETTER PHI).
	symbolKeepScripts = map[string]bool{
		"GREEK": true,
	}
)

// classify walks the token sequence once, evaluates every keep-rule into a
// must-keep index set, and only then filters. Decoupling decision from
// mutation keeps the rules independent of removal order.
func (t *transducer) classify() {
	mustKeep := make(map[int]bool)
	for i, tok := range t.tokens {
		switch {
		case tok == "CAPITAL":
			if t.isSmallCapital(i) {
				mustKeep[i] = true
			} else {
				t.isCapital = true
			}
		case tok == "SMALL":
			if t.keepSmall() {
				mustKeep[i] = true
			}
		case tok == "SYMBOL":
			if t.keepSymbol(i) {
				mustKeep[i] = true
			}
		case tok == "PUNCTUATION":
			if t.keepPunctuation() {
				mustKeep[i] = true
			}
		case tok == "ACCENT":
			if t.keepAccent() {
				mustKeep[i] = true
			}
		case tok == "MARK":
			if t.keepMark() {
				mustKeep[i] = true
			}
		case tok == "SIGN":
			if t.keepSign() {
				mustKeep[i] = true
			}
		case tok == "LETTER":
			if t.keepLetterAsSuffix() {
				t.letterSuffix = true
			}
		case tok == "SYLLABLE":
			t.syllableTag = "Syllable"
		case tok == "SYLLABICS":
			t.syllableTag = "Syllabics"
		}
	}
	out := t.tokens[:0]
	for i, tok := range t.tokens {
		if (dropCategories[tok] || caseIndicators[tok]) && !mustKeep[i] {
			continue
		}
		out = append(out, tok)
	}
	t.tokens = out
}

// keepSmall retains SMALL for small capitals, for syllabary size variants,
// and on every script-less name: modifier letters, halfwidth/fullwidth
// forms and the small form variants all pair SMALL against an otherwise
// identical name without it. With a script tag present, SMALL is a case
// marker exactly when LETTER or LIGATURE co-occurs.
func (t *transducer) keepSmall() bool {
	if t.has("CAPITAL") {
		return true
	}
	if t.isSyllabarySize() {
		return true
	}
	if t.suffix == "" {
		return true
	}
	return !t.has("LETTER") && !t.has("LIGATURE")
}

// isSmallCapital reports whether the CAPITAL at index i forms the SMALL
// CAPITAL letterform bigram. Such a CAPITAL describes the glyph shape, not
// the letter's case, and stays a content word: LATIN CAPITAL LETTER SMALL
// CAPITAL I must not reduce to the same tokens as LATIN LETTER SMALL
// CAPITAL I.
func (t *transducer) isSmallCapital(i int) bool {
	return i > 0 && t.tokens[i-1] == "SMALL"
}

// isSyllabarySize reports whether SMALL denotes a glyph-size variant of a
// kana syllabary character. Checked against the raw name because halfwidth
// forms bury the syllabary word mid-name, out of reach of the
// start-anchored script detector.
func (t *transducer) isSyllabarySize() bool {
	return strings.Contains(t.raw, "HIRAGANA") || strings.Contains(t.raw, "KATAKANA")
}

// keepSymbol retains SYMBOL in the SYMBOL FOR idiom, in script-less names
// (plain symbol variants), and for scripts with alternate symbol
// letterforms.
func (t *transducer) keepSymbol(i int) bool {
	if i+1 < len(t.tokens) && t.tokens[i+1] == "FOR" {
		return true
	}
	if t.suffix == "" {
		return true
	}
	return symbolKeepScripts[t.script]
}

// keepPunctuation retains PUNCTUATION on script-less names (PUNCTUATION
// SPACE vs SPACE) and for Hebrew, where punctuation-type marks share base
// names with accents and points. The Hebrew occurrence is later converted
// into a trailing suffix by the rewriter.
func (t *transducer) keepPunctuation() bool {
	if t.suffix == "" {
		return true
	}
	return t.script == "HEBREW"
}

// keepAccent retains ACCENT for Hebrew only. Script-less accent names
// (GRAVE ACCENT, COMBINING GRAVE ACCENT) drop it: no pair of names differs
// in the bare ACCENT word alone, and the combining forms take their
// trailing Combining word instead.
func (t *transducer) keepAccent() bool {
	return t.script == "HEBREW"
}

// keepMark drops MARK only as a redundancy next to LETTER.
func (t *transducer) keepMark() bool {
	if !t.has("LETTER") {
		return true
	}
	return markKeepScripts[t.script]
}

// keepSign retains SIGN for script-less names (COLON vs COLON SIGN) and
// for scripts where LETTER vs SIGN distinguishes same-named characters.
func (t *transducer) keepSign() bool {
	if t.suffix == "" {
		return true
	}
	return signKeepScripts[t.script]
}

// keepLetterAsSuffix decides whether the dropped LETTER re-surfaces as a
// trailing "Letter" suffix word: only for caseless letters of scripts that
// otherwise have case, where LETTER X would collide with SMALL LETTER X.
func (t *transducer) keepLetterAsSuffix() bool {
	if !letterSuffixScripts[t.script] {
		return false
	}
	return !t.has("SMALL") && !t.has("CAPITAL")
}

// filterConnectingWords removes filler words, but never down to an empty
// sequence: a few characters are literally named by a filler word
// (Ethiopic syllables TO and THE) and keep it as their payload. FOR stays
// when it completes a SYMBOL FOR idiom.
func (t *transducer) filterConnectingWords() {
	content := 0
	for _, tok := range t.tokens {
		if !connectingWords[tok] {
			content++
		}
	}
	if content == 0 {
		return
	}
	out := t.tokens[:0]
	for i, tok := range t.tokens {
		if connectingWords[tok] {
			if tok == "FOR" && i > 0 && t.tokens[i-1] == "SYMBOL" {
				out = append(out, tok)
			}
			continue
		}
		out = append(out, tok)
	}
	t.tokens = out
}

// has reports whether word occurs in the current token sequence.
func (t *transducer) has(word string) bool {
	for _, tok := range t.tokens {
		if tok == word {
			return true
		}
	}
	return false
}
