/* Package ucdparse provides a parser for Unicode Character Database files.

Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

Data lines consist of semicolon-separated fields, the first of which is a
codepoint or a codepoint range ("0061" or "0030..0039"). Everything after a
'#' is comment.
*/
package ucdparse

import "fmt"

// Token subsumes the properties of one data line of a UCD file.
type Token struct {
	LineNo   int      // line within the input source
	runeFrom rune     // first/single rune
	runeTo   rune     // final rune of range (may be identical to runeFrom)
	Fields   []string // semicolon-separated fields, whitespace-trimmed
	Comment  string   // rest-of-line comment, if any
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at %d %#U..%#U %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.Fields)
}

// Field gets field #i (0…n) from the current data item. Field 0 is the
// codepoint field, better accessed through Range.
func (token *Token) Field(i int) string {
	if i < 0 || i >= len(token.Fields) {
		return ""
	}
	return token.Fields[i]
}

// Range gets the character range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}
