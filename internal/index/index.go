// Package index defines the record types extracted from a quick-reference
// tree and the persisted aggregate that the jumplist commands read.
package index

// Heading is a detected section title: the title text plus the underline
// character that determines its level.
type Heading struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Heading string `json:"heading"`
	Level   string `json:"level"`
}

// IsMajor reports whether the heading is underlined with one of the two
// top-level characters and should appear in navigation listings.
func (h Heading) IsMajor() bool {
	return h.Level == "=" || h.Level == "-"
}

// Reference is an inline cross-reference marker found on a line.
// Section is a value copy of the most recent heading in the same file,
// or nil when no heading precedes the marker.
type Reference struct {
	File      string   `json:"file"`
	Line      int      `json:"line"`
	Reference string   `json:"reference"`
	Section   *Heading `json:"section"`
}

// Deadline is a dated action item: What to do by When.
type Deadline struct {
	File    string   `json:"file"`
	Line    int      `json:"line"`
	What    string   `json:"what"`
	When    string   `json:"when"`
	Section *Heading `json:"section"`
}

// Todo is an open action item with no date.
type Todo struct {
	File    string   `json:"file"`
	Line    int      `json:"line"`
	What    string   `json:"what"`
	Section *Heading `json:"section"`
}

// Index aggregates every record extracted from a scanned tree.
// Lists are in scan order: files in sorted path order, lines ascending
// within a file. Records are never mutated after creation; a build only
// appends.
type Index struct {
	Headings   []Heading   `json:"headings"`
	References []Reference `json:"references"`
	Deadlines  []Deadline  `json:"deadlines"`
	Todos      []Todo      `json:"todos"`
}

// New returns an empty index ready for a build pass.
func New() *Index {
	return &Index{
		Headings:   []Heading{},
		References: []Reference{},
		Deadlines:  []Deadline{},
		Todos:      []Todo{},
	}
}
