package glyphnames

import "strings"

// Runic structural descriptors. Multi-letter tokens from this set describe
// the rune's shape, not a transliteration, and never justify pruning the
// single-letter transliteration next to them.
var runicStructural = map[string]bool{
	"DOTTED": true,
	"LONG":   true,
	"BRANCH": true,
	"SHORT":  true,
	"GOLDEN": true,
}

// rewriteSpecialForms applies the script- and pattern-specific transforms.
// Each transform is independently gated; the order below is fixed so that
// suffix words never overwrite one another.
func (t *transducer) rewriteSpecialForms() {
	t.rewriteCombining()
	t.rewriteCuneiform()
	t.rewriteRunic()
	t.rewriteHebrew()
	t.rewriteHangul()
	t.detectLigature()
}

// rewriteCombining handles combining marks. Their names carry no script
// designation (COMBINING GRAVE ACCENT), so no script tag competes with the
// trailing "Combining" suffix word.
func (t *transducer) rewriteCombining() {
	if t.suffix != "" || !strings.Contains(t.raw, "COMBINING") {
		return
	}
	t.tokens = removeWord(t.tokens, "COMBINING")
	t.combining = true
}

// rewriteCuneiform removes the TIMES operator word from Cuneiform compound
// sign names, keeping both operands: A TIMES BAD becomes "a bad". Keeping
// the operands is what keeps compounds apart from their bare base signs
// and from each other.
func (t *transducer) rewriteCuneiform() {
	if t.script != "CUNEIFORM" {
		return
	}
	t.tokens = removeWord(t.tokens, "TIMES")
}

// rewriteRunic splits hyphenated rune names into their words, then prunes
// single-letter transliteration variants when a multi-letter
// transliteration is present (FEHU FEOH FE F lists four historical
// transliterations of one rune). Structural descriptors do not count as
// transliterations, so DOTTED-N keeps its N.
func (t *transducer) rewriteRunic() {
	if t.script != "RUNIC" {
		return
	}
	hyphenated := false
	for _, tok := range t.tokens {
		if strings.Contains(tok, "-") {
			hyphenated = true
			break
		}
	}
	if hyphenated {
		// Splitting grows the sequence, so this cannot reuse the token
		// buffer in place: appending past the read cursor would clobber
		// tokens not yet visited.
		split := make([]string, 0, len(t.tokens)+2)
		for _, tok := range t.tokens {
			if strings.Contains(tok, "-") {
				for _, sub := range strings.Split(tok, "-") {
					if sub != "" {
						split = append(split, sub)
					}
				}
				continue
			}
			split = append(split, tok)
		}
		t.tokens = split
	}

	hasSingle := false
	hasTransliteration := false
	for _, tok := range t.tokens {
		if len(tok) == 1 {
			hasSingle = true
		} else if !runicStructural[tok] {
			hasTransliteration = true
		}
	}
	if !hasSingle || !hasTransliteration {
		return
	}
	out := t.tokens[:0]
	for _, tok := range t.tokens {
		if len(tok) == 1 {
			continue
		}
		out = append(out, tok)
	}
	t.tokens = out
}

// rewriteHebrew converts a retained ACCENT or PUNCTUATION word into a
// trailing suffix word, for Hebrew only: ETNAHTA-style accents and
// punctuation share base names with points there. Script-less names that
// retain PUNCTUATION (PUNCTUATION SPACE) keep it as an ordinary token.
func (t *transducer) rewriteHebrew() {
	if t.script != "HEBREW" {
		return
	}
	switch {
	case t.has("ACCENT"):
		t.tokens = removeWord(t.tokens, "ACCENT")
		t.hebrewTag = "Accent"
	case t.has("PUNCTUATION"):
		t.tokens = removeWord(t.tokens, "PUNCTUATION")
		t.hebrewTag = "Punctuation"
	}
}

// rewriteHangul tags conjoining jamo with their syllable position. The
// positional words are checked on the raw name: KIYEOK as CHOSEONG,
// JUNGSEONG and JONGSEONG are three distinct characters whose names differ
// in nothing else.
func (t *transducer) rewriteHangul() {
	if t.script != "HANGUL" {
		return
	}
	switch {
	case strings.Contains(t.raw, "CHOSEONG"):
		t.tokens = removeWord(t.tokens, "CHOSEONG")
		t.hangulTag = "Cho"
	case strings.Contains(t.raw, "JUNGSEONG"):
		t.tokens = removeWord(t.tokens, "JUNGSEONG")
		t.hangulTag = "Jung"
	case strings.Contains(t.raw, "JONGSEONG"):
		t.tokens = removeWord(t.tokens, "JONGSEONG")
		t.hangulTag = "Jong"
	}
}

// detectLigature marks Latin capital ligatures (AE, OE, IJ): a leading
// token of two or three letters under the capital flag keeps its uppercase
// spelling instead of being title-cased.
func (t *transducer) detectLigature() {
	if t.script != "LATIN" || !t.isCapital || len(t.tokens) == 0 {
		return
	}
	first := t.tokens[0]
	if len(first) < 2 || len(first) > 3 {
		return
	}
	for _, r := range first {
		if r < 'A' || r > 'Z' {
			return
		}
	}
	t.ligature = true
}
