package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aidanlsb/quickrefs/internal/index"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.rst")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFileHeadingsAndSections(t *testing.T) {
	content := strings.Join([]string{
		"Setup",
		"-----",
		"",
		":todo:`write docs`",
		"",
		"Deploy",
		"======",
		"",
		":todo:`add ci`",
		"",
		"",
	}, "\n")
	path := writeTemp(t, content)

	idx := index.New()
	if err := ParseFile(path, idx); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(idx.Headings) != 2 {
		t.Fatalf("expected 2 headings, got %d: %+v", len(idx.Headings), idx.Headings)
	}
	if h := idx.Headings[0]; h.Heading != "Setup" || h.Level != "-" || h.Line != 1 {
		t.Errorf("unexpected first heading: %+v", h)
	}
	if h := idx.Headings[1]; h.Heading != "Deploy" || h.Level != "=" || h.Line != 6 {
		t.Errorf("unexpected second heading: %+v", h)
	}

	if len(idx.Todos) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(idx.Todos))
	}
	if s := idx.Todos[0].Section; s == nil || s.Heading != "Setup" || s.Level != "-" {
		t.Errorf("first todo should belong to Setup, got %+v", idx.Todos[0].Section)
	}
	if s := idx.Todos[1].Section; s == nil || s.Heading != "Deploy" {
		t.Errorf("second todo should belong to Deploy, got %+v", idx.Todos[1].Section)
	}
}

func TestParseFileAnnotationsBeforeAnyHeading(t *testing.T) {
	path := writeTemp(t, ":todo:`orphan task`\nsee `the manual`_\n")

	idx := index.New()
	if err := ParseFile(path, idx); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(idx.Todos) != 1 || idx.Todos[0].Section != nil {
		t.Errorf("todo before any heading must have nil section: %+v", idx.Todos)
	}
}

func TestParseFileReferences(t *testing.T) {
	content := strings.Join([]string{
		"Links",
		"=====",
		"see `install guide`_ and `faq`_",
		"",
		"",
	}, "\n")
	path := writeTemp(t, content)

	idx := index.New()
	if err := ParseFile(path, idx); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(idx.References) != 2 {
		t.Fatalf("expected 2 references, got %d: %+v", len(idx.References), idx.References)
	}
	if idx.References[0].Reference != "install guide" || idx.References[1].Reference != "faq" {
		t.Errorf("unexpected reference texts: %+v", idx.References)
	}
	if idx.References[0].Line != 3 {
		t.Errorf("expected references on line 3, got %d", idx.References[0].Line)
	}
}

func TestParseFileDeadlineSplit(t *testing.T) {
	path := writeTemp(t, ":deadline:`2025-01-01: renew cert`\n\n")

	idx := index.New()
	if err := ParseFile(path, idx); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(idx.Deadlines) != 1 {
		t.Fatalf("expected 1 deadline, got %d", len(idx.Deadlines))
	}
	d := idx.Deadlines[0]
	if d.When != "2025-01-01" || d.What != "renew cert" {
		t.Errorf("unexpected deadline split: when=%q what=%q", d.When, d.What)
	}
}

func TestParseFileDeadlineWhatKeepsLaterColons(t *testing.T) {
	path := writeTemp(t, ":deadline:`2025-06-01: rotate key: prod`\n\n")

	idx := index.New()
	if err := ParseFile(path, idx); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d := idx.Deadlines[0]; d.What != "rotate key: prod" {
		t.Errorf("split must be on the first colon only, got what=%q", d.What)
	}
}

func TestParseFileMalformedDeadlineFails(t *testing.T) {
	path := writeTemp(t, ":deadline:`no colon here`\n\n")

	idx := index.New()
	err := ParseFile(path, idx)
	if err == nil {
		t.Fatal("expected malformed deadline to fail the parse")
	}
	if !strings.Contains(err.Error(), ":1:") {
		t.Errorf("error should carry file:line context, got: %v", err)
	}
}

func TestParseFileHeadingLineCarriesNoAnnotations(t *testing.T) {
	// The heading text itself matches the reference pattern, but heading
	// detection wins and the line is not scanned for annotations.
	content := strings.Join([]string{
		"a `ref`_ here",
		"-------------",
		"",
	}, "\n")
	path := writeTemp(t, content)

	idx := index.New()
	if err := ParseFile(path, idx); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(idx.Headings) != 1 || len(idx.References) != 0 {
		t.Errorf("heading line must not be annotation-scanned: %+v %+v", idx.Headings, idx.References)
	}
}

func TestParseFileFinalLineNotScanned(t *testing.T) {
	// The last line has no successor: it is never a heading candidate and
	// is not scanned for annotations.
	path := writeTemp(t, "first line\n:todo:`only on the final line`\n")

	idx := index.New()
	if err := ParseFile(path, idx); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(idx.Todos) != 0 {
		t.Errorf("final line must not be scanned, got %+v", idx.Todos)
	}
}

func TestParseFileMixedAnnotationsOnOneLine(t *testing.T) {
	path := writeTemp(t, "see `guide`_ :todo:`check guide`\n\n")

	idx := index.New()
	if err := ParseFile(path, idx); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(idx.References) != 1 || len(idx.Todos) != 1 {
		t.Errorf("one line can match several kinds: refs=%+v todos=%+v", idx.References, idx.Todos)
	}
}

func TestParseFileSectionIsValueCopy(t *testing.T) {
	content := strings.Join([]string{
		"Setup",
		"-----",
		":todo:`a`",
		":todo:`b`",
		"",
	}, "\n")
	path := writeTemp(t, content)

	idx := index.New()
	if err := ParseFile(path, idx); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(idx.Todos) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(idx.Todos))
	}
	if idx.Todos[0].Section == idx.Todos[1].Section {
		t.Errorf("sections must be independent copies, not a shared pointer")
	}
	if *idx.Todos[0].Section != *idx.Todos[1].Section {
		t.Errorf("section copies should carry identical values")
	}
}

func TestParseFileNonASCIIHeading(t *testing.T) {
	content := strings.Join([]string{
		"Café Über",
		"---------",
		":todo:`restock beans`",
		"",
		"",
	}, "\n")
	path := writeTemp(t, content)

	idx := index.New()
	if err := ParseFile(path, idx); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(idx.Headings) != 1 {
		t.Fatalf("expected 1 heading, got %d: %+v", len(idx.Headings), idx.Headings)
	}
	if h := idx.Headings[0]; h.Heading != "Café Über" || h.Level != "-" {
		t.Errorf("unexpected heading: %+v", h)
	}
	if s := idx.Todos[0].Section; s == nil || s.Heading != "Café Über" {
		t.Errorf("todo should keep its non-ASCII section, got %+v", s)
	}
}

func TestParseFileUnreadableFails(t *testing.T) {
	idx := index.New()
	if err := ParseFile(filepath.Join(t.TempDir(), "missing.rst"), idx); err == nil {
		t.Fatal("expected an error for an unreadable file")
	}
}
