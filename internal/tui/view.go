package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// visibleHeader is how many header lines are on screen.
func (a *App) visibleHeader() int {
	full := int(a.ctrl.Geometry().Full)
	v := full - int(a.ctrl.HeaderOffset())
	if v < 0 {
		return 0
	}
	return v
}

func (a *App) tabLabels() []string {
	titles := a.ctrl.Selector().Titles()
	active := a.ctrl.Selector().Selected()
	out := make([]string, len(titles))
	for i, t := range titles {
		if i == active {
			out[i] = a.theme.TabActive.Render(t)
		} else {
			out[i] = a.theme.TabInactive.Render(t)
		}
	}
	return out
}

// tabAt maps a column on the selector line to a tab index.
func (a *App) tabAt(x int) (int, bool) {
	col := 0
	for i, l := range a.tabLabels() {
		w := lipgloss.Width(l)
		if x >= col && x < col+w {
			return i, true
		}
		col += w + 1
	}
	return 0, false
}

func clip(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(line) > width {
		return ansi.Truncate(line, width, "…")
	}
	return line
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "loading…"
	}
	if !a.loaded {
		if a.status != "" {
			return a.theme.StatusError.Render(a.status)
		}
		return "loading…"
	}

	body := a.height - footerHeight
	lines := make([]string, 0, a.height)

	full := int(a.ctrl.Geometry().Full)
	header := headerLines(a.data.Profile, a.theme, a.width, full)
	for i := int(a.ctrl.HeaderOffset()); i < len(header) && len(lines) < body; i++ {
		lines = append(lines, clip(header[i], a.width))
	}

	if len(lines) < body {
		lines = append(lines, clip(strings.Join(a.tabLabels(), " "), a.width))
	}

	// The pager is laid out for a collapsed header; while the header is
	// expanded its lower part sits below the screen edge.
	var page string
	if a.help.ShowAll {
		page = a.help.FullHelpView(a.keys.FullHelp())
	} else if pg, ok := a.ctrl.Pager().Current(); ok {
		if r := pg.Renderer(); r != nil {
			page = r.Render()
		}
	}
	if page != "" {
		for _, l := range strings.Split(page, "\n") {
			if len(lines) >= body {
				break
			}
			lines = append(lines, clip(l, a.width))
		}
	}
	for len(lines) < body {
		lines = append(lines, "")
	}

	lines = append(lines, a.footer())
	return strings.Join(lines, "\n")
}

func (a *App) footer() string {
	switch {
	case a.prompting:
		return clip(a.theme.Prompt.Render("tab: "+a.prompt+"▏"), a.width)
	case a.status != "" && a.statusErr:
		return clip(a.theme.StatusError.Render(a.status), a.width)
	case a.status != "":
		return clip(a.theme.Status.Render(a.status), a.width)
	default:
		// The full help is drawn in the page area; the footer stays one line.
		return clip(a.help.ShortHelpView(a.keys.ShortHelp()), a.width)
	}
}
