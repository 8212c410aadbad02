package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/profilescroll/internal/surface"
)

// Catppuccin Mocha palette, https://catppuccin.com/palette
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorRed      lipgloss.Color = "#f38ba8"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorInfo    = colorTeal
)

// Theme is the set of styles the view draws with.
type Theme struct {
	Banner      lipgloss.Style
	Name        lipgloss.Style
	Handle      lipgloss.Style
	Bio         lipgloss.Style
	Meta        lipgloss.Style
	Stat        lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Prompt      lipgloss.Style
	Content     surface.Styles
}

// DefaultTheme returns the Catppuccin styles.
func DefaultTheme() Theme {
	base := lipgloss.NewStyle()
	return Theme{
		Banner:      base.Background(colorSurface0).Foreground(colorMauve),
		Name:        base.Bold(true).Foreground(colorAccent),
		Handle:      base.Foreground(colorSubtext0),
		Bio:         base.Foreground(colorText),
		Meta:        base.Foreground(colorOverlay0),
		Stat:        base.Bold(true).Foreground(colorBlue),
		TabActive:   base.Bold(true).Foreground(colorMantle).Background(colorFocus).Padding(0, 1),
		TabInactive: base.Foreground(colorSubtext0).Background(colorSurface1).Padding(0, 1),
		Status:      base.Foreground(colorInfo),
		StatusError: base.Foreground(colorError),
		Prompt:      base.Foreground(colorYellow),
		Content: surface.Styles{
			Title:  base.Bold(true).Foreground(colorText),
			Meta:   base.Foreground(colorOverlay0),
			Body:   base.Foreground(colorText),
			Header: base.Bold(true).Foreground(colorSuccess),
			Cell:   base.Foreground(colorText),
			Rule:   base.Foreground(colorSurface1),
		},
	}
}
