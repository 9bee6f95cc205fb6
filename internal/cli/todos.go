package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/quickrefs/internal/index"
	"github.com/aidanlsb/quickrefs/internal/ui"
)

// TodoJSON is the JSON representation of a todo jumplist entry.
type TodoJSON struct {
	Section string `json:"section,omitempty"`
	What    string `json:"what"`
	File    string `json:"file"`
	Line    int    `json:"line"`
}

var (
	todoJumplistIndexFile string
	todoJumplistColor     bool
)

var todoJumplistCmd = &cobra.Command{
	Use:   "todo-jumplist",
	Short: "Print the todo jumplist",
	Long: `Prints one tab-separated line per todo in scan order: a label (section
and description), the file and the line number.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := loadIndexForCommand(todoJumplistIndexFile)
		if err != nil || idx == nil {
			return err
		}

		if isJSONOutput() {
			items := make([]TodoJSON, len(idx.Todos))
			for i, t := range idx.Todos {
				items[i] = TodoJSON{Section: sectionOf(t.Section), What: t.What, File: t.File, Line: t.Line}
			}
			outputSuccess(map[string]interface{}{"items": items}, &Meta{Count: len(items)})
			return nil
		}

		colored := colorEnabled(todoJumplistColor)
		for _, t := range idx.Todos {
			fmt.Printf("%s\t%s\t%s\n",
				todoLabel(t, colored),
				paint(t.File, ui.File, colored),
				paint(strconv.Itoa(t.Line), ui.Line, colored))
		}
		return nil
	},
}

// todoLabel renders "Section: write docs", or just the description for
// todos that precede every heading.
func todoLabel(t index.Todo, colored bool) string {
	if t.Section == nil {
		return t.What
	}
	return fmt.Sprintf("%s: %s", paint(t.Section.Heading, ui.Section, colored), t.What)
}

func init() {
	todoJumplistCmd.Flags().StringVarP(&todoJumplistIndexFile, "index-file", "i", "", `Index file (default "index.json")`)
	todoJumplistCmd.Flags().BoolVarP(&todoJumplistColor, "color", "c", false, "Force color output")
	rootCmd.AddCommand(todoJumplistCmd)
}
