package index

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func sampleIndex() *Index {
	setup := Heading{File: "notes/a.rst", Line: 1, Heading: "Setup", Level: "-"}
	return &Index{
		Headings: []Heading{
			setup,
			{File: "notes/a.rst", Line: 10, Heading: "Deploy", Level: "="},
		},
		References: []Reference{
			{File: "notes/a.rst", Line: 3, Reference: "install guide", Section: &setup},
		},
		Deadlines: []Deadline{
			{File: "notes/a.rst", Line: 4, When: "2025-01-01", What: "renew cert", Section: &setup},
		},
		Todos: []Todo{
			{File: "notes/a.rst", Line: 5, What: "write docs", Section: &setup},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	idx := sampleIndex()

	if err := Save(idx, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !reflect.DeepEqual(idx, loaded) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", idx, loaded)
	}

	got := loaded.Todos[0].Section
	if got == nil || got.Heading != "Setup" || got.Level != "-" {
		t.Errorf("section association not reconstructed: %+v", got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")

	if err := Save(sampleIndex(), path); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := Save(New(), path); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Headings) != 0 || len(loaded.Todos) != 0 {
		t.Errorf("expected empty index after overwrite, got %+v", loaded)
	}
}

func TestLoadMissingFileReturnsEmptyIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	idx, err := Load(path)
	if err != nil {
		t.Fatalf("missing index file must not be an error, got: %v", err)
	}
	if len(idx.Headings) != 0 || len(idx.References) != 0 || len(idx.Deadlines) != 0 || len(idx.Todos) != 0 {
		t.Errorf("expected empty index, got %+v", idx)
	}
}

func TestLoadCorruptContentFails(t *testing.T) {
	cases := map[string]string{
		"not json":       `{"headings": [`,
		"unknown field":  `{"headings":[],"references":[],"deadlines":[],"todos":[],"extra":1}`,
		"missing key":    `{"headings":[],"references":[],"deadlines":[]}`,
		"zero line":      `{"headings":[{"file":"a.rst","line":0,"heading":"X","level":"="}],"references":[],"deadlines":[],"todos":[]}`,
		"empty level":    `{"headings":[{"file":"a.rst","line":1,"heading":"X","level":""}],"references":[],"deadlines":[],"todos":[]}`,
		"record no file": `{"headings":[],"references":[],"deadlines":[],"todos":[{"line":2,"what":"x","section":null}]}`,
		"bad section":    `{"headings":[],"references":[],"deadlines":[],"todos":[{"file":"a.rst","line":2,"what":"x","section":{"file":"","line":1,"heading":"X","level":"="}}]}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "index.json")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("expected load to fail for %s", name)
			}
		})
	}
}

func TestLoadNullSectionAllowed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	content := `{"headings":[],"references":[{"file":"a.rst","line":2,"reference":"x","section":null}],"deadlines":[],"todos":[]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	idx, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(idx.References) != 1 || idx.References[0].Section != nil {
		t.Errorf("expected one reference with nil section, got %+v", idx.References)
	}
}

func TestIsMajor(t *testing.T) {
	cases := []struct {
		level string
		want  bool
	}{
		{"=", true},
		{"-", true},
		{"~", false},
		{"^", false},
		{"*", false},
	}
	for _, c := range cases {
		h := Heading{Level: c.level}
		if h.IsMajor() != c.want {
			t.Errorf("IsMajor(%q) = %v, want %v", c.level, !c.want, c.want)
		}
	}
}
