package cli

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/quickrefs/internal/dates"
	"github.com/aidanlsb/quickrefs/internal/index"
	"github.com/aidanlsb/quickrefs/internal/ui"
)

// DeadlineJSON is the JSON representation of a deadline jumplist entry.
type DeadlineJSON struct {
	Section   string `json:"section,omitempty"`
	When      string `json:"when"`
	DaysUntil int    `json:"days_until"`
	What      string `json:"what"`
	File      string `json:"file"`
	Line      int    `json:"line"`
}

var (
	deadlineJumplistIndexFile string
	deadlineJumplistColor     bool
)

// timeNow is stubbed in tests.
var timeNow = time.Now

var deadlineJumplistCmd = &cobra.Command{
	Use:   "deadline-jumplist",
	Short: "Print the deadline jumplist in chronological order",
	Long: `Prints one tab-separated line per deadline, sorted by the parsed date:
a label (section, raw date, signed day offset and description), the file
and the line number.

A date that cannot be parsed aborts the command; there is no fallback
ordering for unparseable dates.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := loadIndexForCommand(deadlineJumplistIndexFile)
		if err != nil || idx == nil {
			return err
		}

		now := timeNow()
		entries, err := sortDeadlines(idx.Deadlines, now)
		if err != nil {
			return handleError(ErrInvalidDate, err, "Fix the annotation and rebuild the index")
		}

		if isJSONOutput() {
			items := make([]DeadlineJSON, len(entries))
			for i, e := range entries {
				items[i] = DeadlineJSON{
					Section:   sectionOf(e.Section),
					When:      e.When,
					DaysUntil: e.offset,
					What:      e.What,
					File:      e.File,
					Line:      e.Line,
				}
			}
			outputSuccess(map[string]interface{}{"items": items}, &Meta{Count: len(items)})
			return nil
		}

		colored := colorEnabled(deadlineJumplistColor)
		for _, e := range entries {
			fmt.Printf("%s\t%s\t%s\n",
				deadlineLabel(e, colored),
				paint(e.File, ui.File, colored),
				paint(strconv.Itoa(e.Line), ui.Line, colored))
		}
		return nil
	},
}

// deadlineEntry pairs a deadline with its parsed date and day offset.
type deadlineEntry struct {
	index.Deadline
	due    time.Time
	offset int
}

// sortDeadlines parses every when field and returns the deadlines in
// ascending chronological order. Ties keep scan order.
func sortDeadlines(deadlines []index.Deadline, now time.Time) ([]deadlineEntry, error) {
	entries := make([]deadlineEntry, len(deadlines))
	for i, d := range deadlines {
		due, err := dates.ParseWhen(d.When, now)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", d.File, d.Line, err)
		}
		entries[i] = deadlineEntry{
			Deadline: d,
			due:      due,
			offset:   dates.DayOffset(due, now),
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].due.Before(entries[j].due)
	})
	return entries, nil
}

// deadlineLabel renders "Section: 2025-03-01 (+3d): renew cert", dropping
// the section part for deadlines that precede every heading.
func deadlineLabel(e deadlineEntry, colored bool) string {
	label := fmt.Sprintf("%s (%+dd): %s", e.When, e.offset, e.What)
	if e.Section == nil {
		return label
	}
	return fmt.Sprintf("%s: %s", paint(e.Section.Heading, ui.Section, colored), label)
}

func init() {
	deadlineJumplistCmd.Flags().StringVarP(&deadlineJumplistIndexFile, "index-file", "i", "", `Index file (default "index.json")`)
	deadlineJumplistCmd.Flags().BoolVarP(&deadlineJumplistColor, "color", "c", false, "Force color output")
	rootCmd.AddCommand(deadlineJumplistCmd)
}
