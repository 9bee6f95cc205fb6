// Package dates parses the date expressions found in deadline annotations.
//
// Annotations are written by hand, so alongside the canonical YYYY-MM-DD
// form the parser accepts a handful of explicit layouts and falls back to
// natural-language expressions ("tomorrow", "next friday").
package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// layouts are tried in order before the natural-language fallback.
var layouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

var nl = newNaturalParser()

func newNaturalParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// ParseWhen parses a deadline date expression. Relative expressions are
// resolved against now.
func ParseWhen(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("invalid date: empty")
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	r, err := nl.Parse(s, now)
	if err == nil && r != nil {
		return r.Time, nil
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", s)
}

// DayOffset returns the signed number of calendar days from now to t.
// Both instants are compared as dates; time of day is ignored.
func DayOffset(t, now time.Time) int {
	a := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b).Hours() / 24)
}
