package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/quickrefs/internal/ui"
)

// HeadingJSON is the JSON representation of a heading jumplist entry.
type HeadingJSON struct {
	Heading string `json:"heading"`
	Level   string `json:"level"`
	File    string `json:"file"`
	Line    int    `json:"line"`
}

var (
	headingJumplistIndexFile string
	headingJumplistColor     bool

	printAllHeadingsIndexFile string

	jumpToHeadingIndexFile string
)

var headingJumplistCmd = &cobra.Command{
	Use:   "heading-jumplist",
	Short: "Print the major heading jumplist",
	Long: `Prints one tab-separated line per major heading (underlined with = or -):
heading text, file and line number, for piping into a selector.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := loadIndexForCommand(headingJumplistIndexFile)
		if err != nil || idx == nil {
			return err
		}

		if isJSONOutput() {
			items := []HeadingJSON{}
			for _, h := range idx.Headings {
				if h.IsMajor() {
					items = append(items, HeadingJSON{Heading: h.Heading, Level: h.Level, File: h.File, Line: h.Line})
				}
			}
			outputSuccess(map[string]interface{}{"items": items}, &Meta{Count: len(items)})
			return nil
		}

		colored := colorEnabled(headingJumplistColor)
		for _, h := range idx.Headings {
			if !h.IsMajor() {
				continue
			}
			fmt.Printf("%s\t%s\t%s\n",
				h.Heading,
				paint(h.File, ui.File, colored),
				paint(strconv.Itoa(h.Line), ui.Line, colored))
		}
		return nil
	},
}

var printAllHeadingsCmd = &cobra.Command{
	Use:   "print-all-headings",
	Short: "Print every major heading, one per line",
	Long:  `Prints only the heading text, for interactive fuzzy selection by an external tool.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := loadIndexForCommand(printAllHeadingsIndexFile)
		if err != nil || idx == nil {
			return err
		}

		if isJSONOutput() {
			items := []string{}
			for _, h := range idx.Headings {
				if h.IsMajor() {
					items = append(items, h.Heading)
				}
			}
			outputSuccess(map[string]interface{}{"items": items}, &Meta{Count: len(items)})
			return nil
		}

		for _, h := range idx.Headings {
			if h.IsMajor() {
				fmt.Println(h.Heading)
			}
		}
		return nil
	},
}

var jumpToHeadingCmd = &cobra.Command{
	Use:   "jump-to-heading HEADING_TEXT",
	Short: "Print file and line for every heading matching the given text",
	Long: `Prints a tab-separated file and line pair for every heading whose text
exactly equals HEADING_TEXT. Multiple matches are all printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]

		idx, err := loadIndexForCommand(jumpToHeadingIndexFile)
		if err != nil || idx == nil {
			return err
		}

		if isJSONOutput() {
			items := []HeadingJSON{}
			for _, h := range idx.Headings {
				if h.Heading == target {
					items = append(items, HeadingJSON{Heading: h.Heading, Level: h.Level, File: h.File, Line: h.Line})
				}
			}
			outputSuccess(map[string]interface{}{"target": target, "items": items}, &Meta{Count: len(items)})
			return nil
		}

		for _, h := range idx.Headings {
			if h.Heading == target {
				fmt.Printf("%s\t%d\n", h.File, h.Line)
			}
		}
		return nil
	},
}

func init() {
	headingJumplistCmd.Flags().StringVarP(&headingJumplistIndexFile, "index-file", "i", "", `Index file (default "index.json")`)
	headingJumplistCmd.Flags().BoolVarP(&headingJumplistColor, "color", "c", false, "Force color output")
	rootCmd.AddCommand(headingJumplistCmd)

	printAllHeadingsCmd.Flags().StringVarP(&printAllHeadingsIndexFile, "index-file", "i", "", `Index file (default "index.json")`)
	rootCmd.AddCommand(printAllHeadingsCmd)

	jumpToHeadingCmd.Flags().StringVarP(&jumpToHeadingIndexFile, "index-file", "i", "", `Index file (default "index.json")`)
	rootCmd.AddCommand(jumpToHeadingCmd)
}
