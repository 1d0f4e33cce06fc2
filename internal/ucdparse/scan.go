package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse iterates over each data line of a UCD file and calls callback f on
// it. Comment-only and empty lines are skipped.
func Parse(r io.Reader, f func(token *Token)) error {
	if r == nil {
		return errors.New("no input present")
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		comment := ""
		if i := strings.IndexByte(line, '#'); i >= 0 {
			comment = strings.TrimSpace(line[i+1:])
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ";")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		from, to, err := parseRuneRange(fields[0])
		if err != nil {
			return fmt.Errorf("ucd line %d: %w", lineno, err)
		}
		f(&Token{
			LineNo:   lineno,
			runeFrom: from,
			runeTo:   to,
			Fields:   fields,
			Comment:  comment,
		})
	}
	return scanner.Err()
}

// parseRuneRange parses the leading codepoint field: a single hex
// codepoint or a "from..to" range.
func parseRuneRange(s string) (from, to rune, err error) {
	if i := strings.Index(s, ".."); i >= 0 {
		if from, err = parseRune(s[:i]); err != nil {
			return 0, 0, err
		}
		if to, err = parseRune(s[i+2:]); err != nil {
			return 0, 0, err
		}
		if to < from {
			return 0, 0, fmt.Errorf("inverted codepoint range %q", s)
		}
		return from, to, nil
	}
	if from, err = parseRune(s); err != nil {
		return 0, 0, err
	}
	return from, from, nil
}

func parseRune(s string) (rune, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("not a codepoint: %q", s)
	}
	if n > 0x10FFFF {
		return 0, fmt.Errorf("codepoint out of range: %q", s)
	}
	return rune(n), nil
}
