// Package scanner selects the files a build pass will parse.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extension is the file suffix that marks a quick-reference document.
const Extension = ".rst"

// FilesToParse walks the tree below the current directory and returns the
// distinct quick-reference files in lexicographic order.
//
// If workdir is non-empty the process first changes into it, so every path
// in the result (and everything the caller resolves afterwards, including
// the index file) is relative to that directory. Unreadable subdirectories
// are skipped and the walk continues.
func FilesToParse(workdir string) ([]string, error) {
	if workdir != "" {
		if err := os.Chdir(workdir); err != nil {
			return nil, fmt.Errorf("chdir %s: %w", workdir, err)
		}
	}

	seen := make(map[string]struct{})
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries do not fail the scan.
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), Extension) {
			seen[path] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}

	files := make([]string, 0, len(seen))
	for path := range seen {
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}
