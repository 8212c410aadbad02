package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Styles controls how the views draw their content.
type Styles struct {
	Title  lipgloss.Style
	Meta   lipgloss.Style
	Body   lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Rule   lipgloss.Style
}

// DefaultStyles returns unadorned styles suitable for tests and plain terminals.
func DefaultStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:  plain.Bold(true),
		Meta:   plain.Faint(true),
		Body:   plain,
		Header: plain.Bold(true),
		Cell:   plain,
		Rule:   plain.Faint(true),
	}
}

// wrap breaks text to width without styling it.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	return strings.Split(wrapped, "\n")
}

func fit(line string, width int) string {
	if ansi.StringWidth(line) > width {
		return ansi.Truncate(line, width, "…")
	}
	return line
}

// window renders the slice of lines visible through v, padded to height.
func window(lines []string, v *ScrollView, width, height int) string {
	if height <= 0 || width <= 0 {
		return ""
	}
	out := make([]string, 0, height)
	for i := 0; i < v.Gap() && len(out) < height; i++ {
		out = append(out, "")
	}
	for i := v.Top(); i < len(lines) && len(out) < height; i++ {
		out = append(out, fit(lines[i], width))
	}
	for len(out) < height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}
