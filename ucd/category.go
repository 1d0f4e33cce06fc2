package ucd

import (
	"sort"
	"unicode"
)

// The two-letter general categories, with their stdlib range tables, in
// alias order. Built once at process start; read-only afterwards.
var categoryTables []categoryTable

type categoryTable struct {
	alias string
	table *unicode.RangeTable
}

func init() {
	aliases := make([]string, 0, len(unicode.Categories))
	for alias := range unicode.Categories {
		if len(alias) == 2 { // skip the one-letter aggregates
			aliases = append(aliases, alias)
		}
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		categoryTables = append(categoryTables, categoryTable{
			alias: alias,
			table: unicode.Categories[alias],
		})
	}
}

// categoryAlias resolves the two-letter general category of a rune ("Lu",
// "Mn", …). Unassigned codepoints yield the empty string.
func categoryAlias(r rune) string {
	for _, c := range categoryTables {
		if unicode.Is(c.table, r) {
			return c.alias
		}
	}
	return ""
}
