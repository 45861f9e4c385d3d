// Package render formats assistant responses for the terminal.
package render

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/term"
)

// Markdown renders a markdown string for terminal display using glamour.
// When stdout is not a terminal, or rendering fails, the input is returned
// unstyled so piping stays clean.
func Markdown(text string) string {
	if !term.IsTerminal(os.Stdout.Fd()) {
		return text
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return out
}
