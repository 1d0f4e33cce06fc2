package glyphnames

import (
	"sort"
	"strings"
)

// ScriptSuffixes maps a script designation (the word or word sequence
// opening a Unicode character name) to the short tag appended to glyph
// names of that script. The table is a process-wide constant: it is
// consulted read-only after package initialization.
//
// Every tag is unique. This is a correctness property, not a convenience:
// two scripts sharing a tag would let otherwise identical base names
// collide (see TestScriptSuffixesUnique).
var ScriptSuffixes = map[string]string{
	// Major world scripts
	"ARABIC":    "ar",
	"LATIN":     "lat",
	"GREEK":     "gr",
	"CYRILLIC":  "cyr",
	"HEBREW":    "he",
	"ARMENIAN":  "arm",
	"SYRIAC":    "syrc",
	"THAANA":    "thaa",
	"SAMARITAN": "samr",
	"MANDAIC":   "mand",
	// Indic scripts
	"DEVANAGARI":  "dev",
	"BENGALI":     "bn",
	"GURMUKHI":    "gur",
	"GUJARATI":    "guj",
	"ORIYA":       "ori",
	"TAMIL":       "tam",
	"TELUGU":      "tel",
	"KANNADA":     "kan",
	"MALAYALAM":   "mal",
	"SINHALA":     "sin",
	"GRANTHA":     "gran",
	"BRAHMI":      "brah",
	"KAITHI":      "kthi",
	"SHARADA":     "shrd",
	"BHAIKSUKI":   "bhks",
	"KHUDAWADI":   "sind",
	"MODI":        "modi",
	"NEWA":        "newa",
	"DOGRA":       "dogr",
	"TAKRI":       "takr",
	"TIRHUTA":     "tirh",
	"SIDDHAM":     "sidd",
	"MAHAJANI":    "mahj",
	"MULTANI":     "mult",
	"KHOJKI":      "khoj",
	"AHOM":        "ahom",
	"NANDINAGARI": "nand",
	"SAURASHTRA":  "saur",
	// Southeast Asian scripts
	"THAI":      "th",
	"LAO":       "lao",
	"MYANMAR":   "mya",
	"KHMER":     "khm",
	"JAVANESE":  "java",
	"BALINESE":  "bali",
	"CHAM":      "cham",
	"SUNDANESE": "sund",
	"BATAK":     "batk",
	"BUGINESE":  "bugi",
	"BUHID":     "buhd",
	"HANUNOO":   "hano",
	"TAGALOG":   "tglg",
	"TAGBANWA":  "tagb",
	"REJANG":    "rjng",
	"CHAKMA":    "cakm",
	"KAYAH LI":  "kali",
	"TAI":       "tai", // covers Tai Le, Tai Tham, Tai Viet, …
	// Tibetan & Himalayan
	"TIBETAN":      "tib",
	"LEPCHA":       "lepc",
	"LIMBU":        "limb",
	"MEETEI MAYEK": "mtei",
	"OL CHIKI":     "olck",
	"SORA SOMPENG": "sora",
	"WARANG CITI":  "wara",
	"MRO":          "mroo",
	"PAU CIN HAU":  "pauc",
	// East Asian scripts
	"HAN":                 "han",
	"HANGUL":              "ko",
	"HIRAGANA":            "hira",
	"KATAKANA":            "kata",
	"HENTAIGANA":          "hent",
	"BOPOMOFO":            "bop",
	"YI":                  "yi",
	"NUSHU":               "nshu",
	"TANGUT":              "tang",
	"KHITAN SMALL SCRIPT": "kits",
	// African scripts
	"ETHIOPIC":    "eth",
	"VAI":         "vai",
	"BAMUM":       "bam",
	"ADLAM":       "adlm",
	"NKO":         "nko",
	"TIFINAGH":    "tfng",
	"OSMANYA":     "osma",
	"BASSA VAH":   "bass",
	"MENDE":       "men",
	"MEDEFAIDRIN": "medf",
	"MAKASAR":     "maka",
	"MEROITIC":    "mero",
	"EGYPTIAN":    "egy",
	"COPTIC":      "cop",
	// American scripts
	"CHEROKEE": "chr",
	"CANADIAN": "can",
	"DESERET":  "dsrt",
	"OSAGE":    "osge",
	// Central Asian scripts
	"MONGOLIAN": "mon",
	"PHAGS-PA":  "phag",
	"SOGDIAN":   "sogd",
	"OLD":       "old", // covers Old Italic, Old Persian, Old Turkic, …
	// Historical European scripts
	"GEORGIAN":   "geo",
	"GLAGOLITIC": "glag",
	"OGHAM":      "ogh",
	"RUNIC":      "run",
	"GOTHIC":     "goth",
	"ELBASAN":    "elba",
	"LYCIAN":     "lyci",
	"LYDIAN":     "lydi",
	"CARIAN":     "cari",
	"SHAVIAN":    "shaw",
	"DUPLOYAN":   "dupl",
	// Ancient Near Eastern scripts
	"CUNEIFORM":              "xsux",
	"ANATOLIAN":              "hluw",
	"LINEAR":                 "lin", // covers Linear A and Linear B
	"CYPRIOT":                "cprt",
	"CYPRO-MINOAN":           "cpmn",
	"PHOENICIAN":             "phnx",
	"IMPERIAL ARAMAIC":       "arc",
	"AVESTAN":                "avst",
	"UGARITIC":               "ugar",
	"KHAROSHTHI":             "khar",
	"MANICHAEAN":             "mani",
	"INSCRIPTIONAL PARTHIAN": "prti",
	"INSCRIPTIONAL PAHLAVI":  "phli",
	"PSALTER PAHLAVI":        "phlp",
	"PALMYRENE":              "palm",
	"NABATAEAN":              "nbat",
	"HATRAN":                 "hatr",
	"ELYMAIC":                "elym",
	"CHORASMIAN":             "chrs",
	"CAUCASIAN ALBANIAN":     "aghb",
	// Other scripts
	"MASARAM":          "gonm",
	"GUNJALA":          "gong",
	"DIVES AKURU":      "diak",
	"WANCHO":           "wcho",
	"YEZIDI":           "yezi",
	"MIAO":             "plrd",
	"PAHAWH HMONG":     "hmng",
	"HANIFI ROHINGYA":  "rohg",
	"MARCHEN":          "marc",
	"SOYOMBO":          "soyo",
	"ZANABAZAR SQUARE": "zanb",
	"LISU":             "lisu",
}

// scriptEntry is one designation of ScriptSuffixes, pre-split into words.
type scriptEntry struct {
	words  []string
	suffix string
}

// scriptTable holds all designations ordered by descending word count, so
// that a linear search finds the longest match first ("KHITAN SMALL
// SCRIPT" before any single-word designation).
var scriptTable []scriptEntry

func init() {
	for designation, suffix := range ScriptSuffixes {
		scriptTable = append(scriptTable, scriptEntry{
			words:  strings.Fields(designation),
			suffix: suffix,
		})
	}
	sort.SliceStable(scriptTable, func(i, j int) bool {
		if len(scriptTable[i].words) != len(scriptTable[j].words) {
			return len(scriptTable[i].words) > len(scriptTable[j].words)
		}
		// Equal word count: any fixed order will do; keep it deterministic.
		return strings.Join(scriptTable[i].words, " ") < strings.Join(scriptTable[j].words, " ")
	})
}

// detectScript looks for a script designation anchored at the start of the
// token sequence. Designations never match mid-sequence: a script word
// showing up later in a name ("FULLWIDTH LATIN SMALL LETTER A") is part of
// the character's identity, not of its script.
//
// On a match the designation's words are removed wherever they occur in
// the sequence, since some names echo the script word after the category
// words, and the matched entry is recorded on the transducer. The longest
// designation wins.
func (t *transducer) detectScript() {
	for _, entry := range scriptTable {
		if !matchesAtStart(t.tokens, entry.words) {
			continue
		}
		t.script = strings.Join(entry.words, " ")
		t.suffix = entry.suffix
		for _, w := range entry.words {
			t.tokens = removeWord(t.tokens, w)
		}
		tracer().P("script", t.script).Debugf("script suffix %q", t.suffix)
		return
	}
}

func matchesAtStart(tokens []string, words []string) bool {
	if len(tokens) < len(words) {
		return false
	}
	for i, w := range words {
		if tokens[i] != w {
			return false
		}
	}
	return true
}

// removeWord drops every occurrence of word, in place.
func removeWord(tokens []string, word string) []string {
	out := tokens[:0]
	for _, tok := range tokens {
		if tok != word {
			out = append(out, tok)
		}
	}
	return out
}
