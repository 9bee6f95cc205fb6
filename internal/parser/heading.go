// Package parser extracts headings, cross-references, deadlines and todos
// from reStructuredText-style quick-reference files.
package parser

import (
	"strings"
	"unicode/utf8"
)

// headingChars are the underline characters recognized as section markers.
const headingChars = "=-`'.~*+^"

// IsHeading reports whether cur is a section heading underlined by next.
//
// A heading must be at least 3 characters after trailing whitespace is
// trimmed, and next must be a single punctuation character from
// headingChars repeated to exactly the heading's width. Widths are
// character counts, not byte counts, so non-ASCII headings line up with
// their underlines.
func IsHeading(cur, next string) bool {
	cur = strings.TrimRight(cur, " \t\r\n")
	next = strings.TrimRight(next, " \t\r\n")

	width := utf8.RuneCountInString(cur)
	if width < 3 {
		return false
	}
	if width != utf8.RuneCountInString(next) {
		return false
	}

	c, _ := utf8.DecodeRuneInString(next)
	if !strings.ContainsRune(headingChars, c) {
		return false
	}
	return next == strings.Repeat(string(c), width)
}
