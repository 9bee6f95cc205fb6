package index

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aidanlsb/quickrefs/internal/atomicfile"
)

// Save serializes the index to path as a single JSON document,
// overwriting any existing file. The write is atomic (temp file + rename).
func Save(idx *Index, path string) error {
	data, err := json.Marshal(idx)
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	if err := atomicfile.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write index %s: %w", path, err)
	}
	return nil
}

// Load reads the index at path.
//
// A file that cannot be opened or read is not an error: a diagnostic goes
// to stderr and an empty index is returned, so a missing index file behaves
// exactly like an empty one. A file that opened but does not decode or
// validate is a hard error; callers are expected to abort.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening %s: %v\n", path, err)
		return New(), nil
	}

	idx, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse index %s: %w", path, err)
	}
	return idx, nil
}

// decode parses and validates the serialized index form. Unknown fields and
// structurally invalid records are rejected rather than defaulted.
func decode(data []byte) (*Index, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var idx Index
	if err := dec.Decode(&idx); err != nil {
		return nil, err
	}

	if idx.Headings == nil || idx.References == nil || idx.Deadlines == nil || idx.Todos == nil {
		return nil, fmt.Errorf("missing one of the headings/references/deadlines/todos keys")
	}

	for i, h := range idx.Headings {
		if err := validateHeading(h); err != nil {
			return nil, fmt.Errorf("headings[%d]: %w", i, err)
		}
	}
	for i, r := range idx.References {
		if err := validateRecord(r.File, r.Line, r.Section); err != nil {
			return nil, fmt.Errorf("references[%d]: %w", i, err)
		}
	}
	for i, d := range idx.Deadlines {
		if err := validateRecord(d.File, d.Line, d.Section); err != nil {
			return nil, fmt.Errorf("deadlines[%d]: %w", i, err)
		}
	}
	for i, t := range idx.Todos {
		if err := validateRecord(t.File, t.Line, t.Section); err != nil {
			return nil, fmt.Errorf("todos[%d]: %w", i, err)
		}
	}

	return &idx, nil
}

func validateHeading(h Heading) error {
	if h.File == "" {
		return fmt.Errorf("missing file")
	}
	if h.Line < 1 {
		return fmt.Errorf("invalid line %d", h.Line)
	}
	if h.Heading == "" {
		return fmt.Errorf("missing heading text")
	}
	if len(h.Level) != 1 {
		return fmt.Errorf("invalid level %q", h.Level)
	}
	return nil
}

func validateRecord(file string, line int, section *Heading) error {
	if file == "" {
		return fmt.Errorf("missing file")
	}
	if line < 1 {
		return fmt.Errorf("invalid line %d", line)
	}
	if section != nil {
		if err := validateHeading(*section); err != nil {
			return fmt.Errorf("section: %w", err)
		}
	}
	return nil
}
