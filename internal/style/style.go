// Package style renders the few decorated lines pathed writes to stderr.
// Colors are adaptive so they read on light and dark terminals.
package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var registry = map[string]lipgloss.Style{
	"Error": lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6B6B"}),
	"Warning": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#B9770E", Dark: "#F5B041"}),
	"Header": lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#1F618D", Dark: "#5DADE2"}),
	"Muted": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#7F8C8D", Dark: "#95A5A6"}),
}

// Get returns the named style, or a plain style for unknown names.
func Get(name string) lipgloss.Style {
	if s, ok := registry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Render applies the named style when enabled is true.
func Render(name, text string, enabled bool) string {
	if !enabled {
		return text
	}
	return Get(name).Render(text)
}

// IsTerminal reports whether w is a terminal, which is when styling is on.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
