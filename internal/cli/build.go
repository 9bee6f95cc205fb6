package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/quickrefs/internal/index"
	"github.com/aidanlsb/quickrefs/internal/parser"
	"github.com/aidanlsb/quickrefs/internal/scanner"
)

var (
	buildWorkdir string
	buildOutput  string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the index by scanning a quick-reference tree",
	Long: `Scans the tree below the working directory for .rst files, extracts
headings, cross-references, deadlines and todos, and writes the index file.

Any file that fails to parse aborts the build; no partial index is written.

Examples:
  qri build
  qri build -C ~/notes/quickrefs
  qri build -C ~/notes/quickrefs -o refs.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := scanner.FilesToParse(buildWorkdir)
		if err != nil {
			return handleError(ErrScanFailed, err, "")
		}

		idx := index.New()
		for _, file := range files {
			if err := parser.ParseFile(file, idx); err != nil {
				return handleError(ErrParseFailed, err, "Fix the annotation and rerun 'qri build'")
			}
		}

		output := resolveIndexFile(buildOutput)
		if err := index.Save(idx, output); err != nil {
			return handleError(ErrIndexWriteFailed, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"output":     output,
				"files":      len(files),
				"headings":   len(idx.Headings),
				"references": len(idx.References),
				"deadlines":  len(idx.Deadlines),
				"todos":      len(idx.Todos),
			}, nil)
			return nil
		}

		fmt.Printf("indexed %d files into %s (%d headings, %d references, %d deadlines, %d todos)\n",
			len(files), output, len(idx.Headings), len(idx.References), len(idx.Deadlines), len(idx.Todos))
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildWorkdir, "chdir", "C", "", "Switch to this directory before scanning")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", `Index file to write (default "index.json")`)
	rootCmd.AddCommand(buildCmd)
}
