package parser

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aidanlsb/quickrefs/internal/index"
)

var (
	refPattern      = regexp.MustCompile("`(.*?)`_")
	deadlinePattern = regexp.MustCompile(":deadline:`(.*?)`")
	todoPattern     = regexp.MustCompile(":todo:`(.*?)`")
)

// ParseFile scans path and appends every extracted record to idx.
//
// Lines are walked pairwise so each line can be checked against its
// successor for the heading underline convention; the file's final line is
// never a heading candidate. A heading line carries no other annotations.
// Every other line is scanned for all three inline patterns, and each match
// records a value copy of the most recent heading as its section (nil when
// no heading precedes it).
//
// A deadline annotation whose text has no colon separating the date from
// the description aborts the parse with an error; build treats that as
// fatal rather than writing a partial index.
func ParseFile(path string, idx *index.Index) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	lines := strings.Split(string(content), "\n")
	// A trailing newline produces a final empty element; drop it so the
	// last real line is the end of the pairwise walk.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var current *index.Heading
	for i := 0; i+1 < len(lines); i++ {
		cur, next := lines[i], lines[i+1]
		lineNum := i + 1

		if IsHeading(cur, next) {
			level, _ := utf8.DecodeRuneInString(strings.TrimRight(next, " \t\r\n"))
			h := index.Heading{
				File:    path,
				Line:    lineNum,
				Heading: strings.TrimSpace(cur),
				Level:   string(level),
			}
			idx.Headings = append(idx.Headings, h)
			current = &h
			continue
		}

		for _, m := range refPattern.FindAllStringSubmatch(cur, -1) {
			idx.References = append(idx.References, index.Reference{
				File:      path,
				Line:      lineNum,
				Reference: strings.TrimSpace(m[1]),
				Section:   sectionCopy(current),
			})
		}

		for _, m := range deadlinePattern.FindAllStringSubmatch(cur, -1) {
			when, what, ok := strings.Cut(m[1], ":")
			if !ok {
				return fmt.Errorf("%s:%d: malformed deadline %q: missing ':' between date and description", path, lineNum, m[1])
			}
			idx.Deadlines = append(idx.Deadlines, index.Deadline{
				File:    path,
				Line:    lineNum,
				When:    strings.TrimSpace(when),
				What:    strings.TrimSpace(what),
				Section: sectionCopy(current),
			})
		}

		for _, m := range todoPattern.FindAllStringSubmatch(cur, -1) {
			idx.Todos = append(idx.Todos, index.Todo{
				File:    path,
				Line:    lineNum,
				What:    strings.TrimSpace(m[1]),
				Section: sectionCopy(current),
			})
		}
	}

	return nil
}

// sectionCopy returns an independent copy of the current heading, so the
// stored record never aliases the headings list.
func sectionCopy(h *index.Heading) *index.Heading {
	if h == nil {
		return nil
	}
	c := *h
	return &c
}
