package cli

import (
	"github.com/aidanlsb/quickrefs/internal/index"
)

// loadIndexForCommand loads the index named by the flag (or the configured
// default). A missing index file is not an error and yields an empty index;
// a present-but-corrupt one aborts the command.
func loadIndexForCommand(flagValue string) (*index.Index, error) {
	idx, err := index.Load(resolveIndexFile(flagValue))
	if err != nil {
		return nil, handleError(ErrIndexCorrupt, err, "Rebuild the index with 'qri build'")
	}
	return idx, nil
}

// sectionOf returns the heading text a record belongs to, or "" when the
// record precedes every heading in its file.
func sectionOf(section *index.Heading) string {
	if section == nil {
		return ""
	}
	return section.Heading
}
