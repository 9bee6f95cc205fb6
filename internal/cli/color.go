package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// colorEnabled decides whether escapes are emitted. The --color flag wins,
// then the configured preference, then TTY detection: jumplist output is
// usually piped into a selector, in which case nothing is colored.
func colorEnabled(force bool) bool {
	if force {
		// Output may be piped even when forced; make lipgloss render
		// escapes regardless of what it detects.
		lipgloss.SetColorProfile(termenv.ANSI)
		return true
	}
	switch getConfig().Color {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI)
		return true
	case "never":
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// paint renders s with style when colored, and returns it untouched otherwise.
func paint(s string, style lipgloss.Style, colored bool) string {
	if !colored {
		return s
	}
	return style.Render(s)
}
