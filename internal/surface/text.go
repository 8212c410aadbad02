package surface

// TextView is a plain scrollable view. The view itself is the scroll surface.
type TextView struct {
	*ScrollView
	text   string
	styles Styles
	lines  []string
	width  int
	height int
}

// NewTextView returns a text view over text.
func NewTextView(text string, opts ...ScrollOption) *TextView {
	return &TextView{
		ScrollView: NewScrollView(opts...),
		text:       text,
		styles:     DefaultStyles(),
	}
}

// SetStyles replaces the view's styles.
func (t *TextView) SetStyles(s Styles) { t.styles = s }

// SetText replaces the text and re-lays out the view.
func (t *TextView) SetText(text string) {
	t.text = text
	t.Layout(t.width, t.height)
}

// Layout wraps the text to width and sizes the scroll region to height.
func (t *TextView) Layout(width, height int) {
	t.width, t.height = width, height
	t.lines = wrap(t.text, width)
	t.Resize(float64(len(t.lines)), float64(height))
}

func (t *TextView) Render() string {
	styled := make([]string, len(t.lines))
	for i, l := range t.lines {
		styled[i] = t.styles.Body.Render(l)
	}
	return window(styled, t.ScrollView, t.width, t.height)
}
