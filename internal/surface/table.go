package surface

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/profilescroll/internal/nested"
)

// TableView is a table container with a pinned header row above a scrolling
// body.
type TableView struct {
	body    *ScrollView
	columns []string
	rows    [][]string
	styles  Styles
	widths  []int
	width   int
	height  int
}

// NewTableView returns a table with the given column titles and rows.
func NewTableView(columns []string, rows [][]string, opts ...ScrollOption) *TableView {
	return &TableView{
		body:    NewScrollView(opts...),
		columns: columns,
		rows:    rows,
		styles:  DefaultStyles(),
	}
}

// Body returns the surface that actually scrolls.
func (t *TableView) Body() nested.Surface { return t.body }

// Region returns the concrete body scroll view.
func (t *TableView) Region() *ScrollView { return t.body }

func (t *TableView) SetStyles(s Styles) { t.styles = s }

// Rows returns the table rows.
func (t *TableView) Rows() [][]string { return t.rows }

// Layout splits width across columns and sizes the body to height minus the
// header row.
func (t *TableView) Layout(width, height int) {
	t.width, t.height = width, height
	t.widths = splitColumns(width, len(t.columns))
	bodyHeight := height - 1
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	t.body.Resize(float64(len(t.rows)), float64(bodyHeight))
}

func splitColumns(width, n int) []int {
	if n == 0 {
		return nil
	}
	gaps := n - 1
	usable := width - gaps
	if usable < n {
		usable = n
	}
	out := make([]int, n)
	for i := range out {
		out[i] = usable / n
	}
	out[n-1] += usable % n
	return out
}

func (t *TableView) row(cells []string, style func(string) string) string {
	parts := make([]string, len(t.widths))
	for i, w := range t.widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		cell = fit(cell, w)
		parts[i] = style(cell + strings.Repeat(" ", max(0, w-ansi.StringWidth(cell))))
	}
	return strings.Join(parts, " ")
}

func (t *TableView) Render() string {
	if t.height <= 0 || t.width <= 0 {
		return ""
	}
	header := fit(t.row(t.columns, func(s string) string { return t.styles.Header.Render(s) }), t.width)
	lines := make([]string, len(t.rows))
	for i, r := range t.rows {
		lines[i] = t.row(r, func(s string) string { return t.styles.Cell.Render(s) })
	}
	if t.height == 1 {
		return header
	}
	return header + "\n" + window(lines, t.body, t.width, t.height-1)
}
