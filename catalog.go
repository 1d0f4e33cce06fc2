package glyphnames

import (
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/glyphnames/ucd"
)

// MaxCodepoint bounds catalog enumeration: codepoints live in
// [0, MaxCodepoint).
const MaxCodepoint rune = 0x110000

// Entry is one row of a catalog enumeration: a named codepoint together
// with its generated glyph name.
type Entry struct {
	Codepoint rune
	Name      string
	GlyphName string
}

// Catalog enumerates glyph names over the full codepoint range, backed by
// a character-data source. A Catalog holds no state besides the source and
// may be shared between goroutines.
type Catalog struct {
	src ucd.Source
}

// NewCatalog returns a catalog over the given source. A nil source selects
// the default one (see ucd.RuneNames).
func NewCatalog(src ucd.Source) *Catalog {
	if src == nil {
		src = ucd.RuneNames()
	}
	return &Catalog{src: src}
}

// Each calls fn for every codepoint with a resolvable, non-placeholder
// name, in ascending codepoint order. fn returning false stops the
// enumeration. Each is lazy: nothing is precomputed, and restarting is
// just calling it again.
func (c *Catalog) Each(fn func(Entry) bool) {
	for cp := rune(0); cp < MaxCodepoint; cp++ {
		char := c.src.CharacterData(cp)
		if char.IsPlaceholder() {
			continue
		}
		e := Entry{Codepoint: cp, Name: char.Name, GlyphName: ForCharacter(char)}
		if !fn(e) {
			return
		}
	}
}

// Scan enumerates like Each, but sharded over the given number of worker
// goroutines. Transduction is a pure function of the character record, so
// the shards need no coordination; entries arrive on the returned channel
// in no particular order. The channel is closed when the range is
// exhausted.
func (c *Catalog) Scan(workers int) <-chan Entry {
	if workers < 1 {
		workers = 1
	}
	out := make(chan Entry, workers)
	var wg sync.WaitGroup
	shard := (MaxCodepoint + rune(workers) - 1) / rune(workers)
	for w := 0; w < workers; w++ {
		from := rune(w) * shard
		to := from + shard
		if to > MaxCodepoint {
			to = MaxCodepoint
		}
		wg.Add(1)
		go func(from, to rune) {
			defer wg.Done()
			for cp := from; cp < to; cp++ {
				char := c.src.CharacterData(cp)
				if char.IsPlaceholder() {
					continue
				}
				out <- Entry{Codepoint: cp, Name: char.Name, GlyphName: ForCharacter(char)}
			}
		}(from, to)
	}
	go func() {
		wg.Wait()
		tracer().Infof("catalog scan over %d workers finished", workers)
		close(out)
	}()
	return out
}

// Collision is a glyph name produced by more than one named codepoint,
// with the offending codepoints in ascending order.
type Collision struct {
	GlyphName  string
	Codepoints []rune
}

// Collisions audits the full codepoint range for duplicate glyph names.
// An empty result is the uniqueness guarantee holding for the catalog's
// source. The report is sorted by glyph name.
func (c *Catalog) Collisions() []Collision {
	seen := make(map[string][]rune)
	c.Each(func(e Entry) bool {
		seen[e.GlyphName] = append(seen[e.GlyphName], e.Codepoint)
		return true
	})
	report := treemap.NewWithStringComparator()
	for glyph, cps := range seen {
		if len(cps) > 1 {
			report.Put(glyph, cps)
		}
	}
	collisions := make([]Collision, 0, report.Size())
	report.Each(func(key interface{}, value interface{}) {
		collisions = append(collisions, Collision{
			GlyphName:  key.(string),
			Codepoints: value.([]rune),
		})
	})
	if len(collisions) > 0 {
		tracer().Errorf("glyph name audit found %d collisions", len(collisions))
	}
	return collisions
}
