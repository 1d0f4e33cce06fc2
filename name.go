package glyphnames

import (
	"context"
	"fmt"
	"strings"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/glyphnames/ucd"
)

// transducer carries the state of one name transduction: the token buffer
// shared by the pipeline stages and the side flags they record. It lives
// for a single call and is pooled, as transducers are created in large
// numbers during full-range scans.
type transducer struct {
	codepoint rune
	raw       string   // the unmodified character name, for substring checks
	tokens    []string // mutated in place by the stages

	script string // matched script designation, e.g. "CAUCASIAN ALBANIAN"
	suffix string // its suffix code, e.g. "aghb"

	isCapital bool
	ligature  bool
	combining bool

	// Trailing suffix words, appended in fixed order by assemble.
	hebrewTag    string // "Accent" or "Punctuation"
	syllableTag  string // "Syllable" or "Syllabics"
	letterSuffix bool
	hangulTag    string // "Cho", "Jung" or "Jong"
}

// Transducers are short-lived and small; we pool them.
type transducerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalTransducerPool *transducerPool

func init() {
	globalTransducerPool = &transducerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			t := &transducer{}
			return t, nil
		})
	globalTransducerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalTransducerPool.opool = pool.NewObjectPool(globalTransducerPool.ctx, factory, config)
}

// newPooledTransducer returns a transducer for one character, pre-filled
// with codepoint and raw name. The transducer is pooled for efficiency.
func newPooledTransducer(codepoint rune, name string) *transducer {
	o, err := globalTransducerPool.opool.BorrowObject(globalTransducerPool.ctx)
	if err != nil {
		return &transducer{codepoint: codepoint, raw: name}
	}
	t := o.(*transducer)
	t.reset()
	t.codepoint = codepoint
	t.raw = name
	return t
}

// Clears the transducer and puts it back into the pool.
func (t *transducer) releaseIntoPool() {
	t.reset()
	_ = globalTransducerPool.opool.ReturnObject(globalTransducerPool.ctx, t)
}

func (t *transducer) reset() {
	t.codepoint = 0
	t.raw = ""
	t.tokens = t.tokens[:0]
	t.script = ""
	t.suffix = ""
	t.isCapital = false
	t.ligature = false
	t.combining = false
	t.hebrewTag = ""
	t.syllableTag = ""
	t.letterSuffix = false
	t.hangulTag = ""
}

// ForRune returns the glyph name for a codepoint, resolving its character
// name through the default source (see package ucd). Unnamed codepoints
// get the fallback name; ForRune never fails.
func ForRune(r rune) string {
	return ForCharacter(ucd.RuneNames().CharacterData(r))
}

// ForCharacter returns the glyph name for an externally supplied character
// record, e.g. one loaded from a pinned UnicodeData.txt snapshot.
func ForCharacter(c ucd.Character) string {
	if c.IsPlaceholder() {
		return Fallback(c.Codepoint)
	}
	t := newPooledTransducer(c.Codepoint, c.Name)
	defer t.releaseIntoPool()
	return t.transduce()
}

// Fallback returns the placeholder glyph name for a codepoint without a
// usable character name: "uni" plus at least four uppercase hex digits.
func Fallback(r rune) string {
	return fmt.Sprintf("uni%04X", r)
}

// transduce runs the pipeline stages over the token buffer. Stage order is
// fixed; later stages rely on the flags of earlier ones.
func (t *transducer) transduce() string {
	t.tokens = append(t.tokens[:0], strings.Fields(t.raw)...)
	t.detectScript()
	t.classify()
	t.filterConnectingWords()
	t.rewriteSpecialForms()
	if len(t.tokens) == 0 {
		tracer().Debugf("name %q reduced to nothing, falling back", t.raw)
		return Fallback(t.codepoint)
	}
	glyph := t.assemble()
	tracer().Debugf("U+%04X %q -> %q", t.codepoint, t.raw, glyph)
	return glyph
}

// assemble is the casing engine and suffix assembler. The first token is
// kept uppercase for ligatures, title-cased under the capital flag, and
// lowercased otherwise; every further token is title-cased. Hyphens inside
// a token are folded away (see renderToken), so the only hyphen surviving
// into the output is the script-suffix separator.
func (t *transducer) assemble() string {
	var b strings.Builder
	for i, tok := range t.tokens {
		t.renderToken(&b, tok, i == 0)
	}
	if t.combining {
		b.WriteString("Combining")
	}
	b.WriteString(t.hebrewTag)
	b.WriteString(t.syllableTag)
	if t.letterSuffix {
		b.WriteString("Letter")
	}
	b.WriteString(t.hangulTag)
	glyph := b.String()
	// fathatan, dammatan, kasratan
	if t.suffix == "ar" && strings.HasSuffix(glyph, "tan") {
		glyph = strings.TrimSuffix(glyph, "tan") + "Tanween"
	}
	if t.suffix != "" {
		glyph += "-" + t.suffix
	}
	return glyph
}

func (t *transducer) renderToken(b *strings.Builder, tok string, first bool) {
	subs := strings.Split(tok, "-")
	head := 0
	for head < len(subs) && subs[head] == "" {
		head++
	}
	for j := head; j < len(subs); j++ {
		sub := subs[j]
		if sub == "" {
			continue
		}
		switch {
		case j > head:
			// Hyphen continuations fold in lowercase, so ARROW-TAIL stays
			// apart from ARROW WITH TAIL once WITH is filtered out. Hangul
			// keeps the camel boundary instead: the jamo sequence O-E must
			// not merge with the fused digraph OE.
			if t.script == "HANGUL" {
				b.WriteString(title(sub))
			} else {
				b.WriteString(strings.ToLower(sub))
			}
		case head > 0:
			// A leading hyphen names a character of its own (TIBETAN
			// LETTER -A). The casing the position would normally get is
			// flipped, keeping the pair apart from its unhyphenated
			// sibling.
			if first && !t.isCapital {
				b.WriteString(title(sub))
			} else {
				b.WriteString(strings.ToLower(sub))
			}
		case first && t.ligature:
			b.WriteString(sub)
		case first && !t.isCapital:
			b.WriteString(strings.ToLower(sub))
		default:
			b.WriteString(title(sub))
		}
	}
}

// title upcases the first byte and downcases the rest. Tokens are ASCII by
// construction (UCD names draw from A–Z, 0–9, hyphen and space only).
func title(s string) string {
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
