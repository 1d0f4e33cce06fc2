/*
Command glyphnames inspects and audits generated glyph names.

Usage

Three subcommands operate on the glyph-name catalog:

   glyphnames char <character>

prints a single-character analysis: codepoint, Unicode name, general
category, the user's locale, and the generated glyph name. The argument
must be exactly one character.

   glyphnames render

streams the whole catalog, one "U+XXXX NAME -> glyphname" line per named
codepoint.

   glyphnames audit [-ucd UnicodeData.txt] [-workers n]

runs the full-range audit — duplicate glyph names, charset violations,
underscores — and exits non-zero if any invariant is broken. With -ucd the
audit runs against a pinned UnicodeData.txt snapshot instead of the
built-in name table.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/glyphnames"
	"github.com/npillmayer/glyphnames/ucd"
	"golang.org/x/text/language"
)

var logger = log.New(os.Stderr, "glyphnames: ", 0)

// glyphNamePattern is the output contract: ASCII, camelCase body, optional
// script suffix, no underscores.
var glyphNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*(-[a-z]+)?$`)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		logger.Println("usage: glyphnames char|render|audit")
		os.Exit(2)
	}
	var err error
	switch cmd := flag.Arg(0); cmd {
	case "char":
		err = charCommand(flag.Args()[1:])
	case "render":
		err = renderCommand()
	case "audit":
		err = auditCommand(flag.Args()[1:])
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

// charCommand analyzes a single character given as the sole argument.
func charCommand(args []string) error {
	if len(args) != 1 || utf8.RuneCountInString(args[0]) != 1 {
		return fmt.Errorf("char: need exactly one character argument")
	}
	r, _ := utf8.DecodeRuneInString(args[0])
	c := ucd.RuneNames().CharacterData(r)
	name := c.Name
	if name == "" {
		name = "(no name)"
	}
	fmt.Printf("codepoint: U+%04X\n", r)
	fmt.Printf("name:      %s\n", name)
	fmt.Printf("category:  %s\n", c.Category)
	fmt.Printf("locale:    %s\n", userLocale())
	fmt.Printf("glyph:     %s\n", glyphnames.ForCharacter(c))
	return nil
}

// userLocale detects the user's IETF locale from the environment, with an
// en-US default.
func userLocale() string {
	locale, err := jj.DetectIETF()
	if err != nil {
		locale = "en-US"
	}
	lang := language.Make(locale)
	script, _ := lang.Script()
	return fmt.Sprintf("%s (script %s)", locale, script)
}

// renderCommand streams the full catalog to stdout.
func renderCommand() error {
	cat := glyphnames.NewCatalog(nil)
	cat.Each(func(e glyphnames.Entry) bool {
		fmt.Printf("U+%04X %s -> %s\n", e.Codepoint, e.Name, e.GlyphName)
		return true
	})
	return nil
}

// auditCommand checks the uniqueness and charset invariants over the full
// codepoint range.
func auditCommand(args []string) error {
	flags := flag.NewFlagSet("audit", flag.ExitOnError)
	ucdFile := flags.String("ucd", "", "audit against a pinned UnicodeData.txt snapshot")
	workers := flags.Int("workers", 4, "parallel scan workers")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var src ucd.Source
	if *ucdFile != "" {
		f, err := os.Open(*ucdFile)
		if err != nil {
			return fmt.Errorf("audit: %w", err)
		}
		defer f.Close()
		src, err = ucd.LoadFile(f)
		if err != nil {
			return fmt.Errorf("audit: %w", err)
		}
	}
	cat := glyphnames.NewCatalog(src)

	violations := 0
	checked := 0
	for e := range cat.Scan(*workers) {
		checked++
		if strings.ContainsRune(e.GlyphName, '_') || !glyphNamePattern.MatchString(e.GlyphName) {
			violations++
			logger.Printf("U+%04X %q -> malformed glyph name %q", e.Codepoint, e.Name, e.GlyphName)
		}
	}
	collisions := cat.Collisions()
	for _, coll := range collisions {
		var cps []string
		for _, cp := range coll.Codepoints {
			cps = append(cps, fmt.Sprintf("U+%04X", cp))
		}
		logger.Printf("glyph name %q generated for %s", coll.GlyphName, strings.Join(cps, ", "))
	}
	logger.Printf("audited %d named codepoints: %d malformed, %d collisions",
		checked, violations, len(collisions))
	if violations > 0 || len(collisions) > 0 {
		return fmt.Errorf("audit failed")
	}
	return nil
}
