package surface

import (
	"github.com/jask/profilescroll/internal/nested"
)

// Item is one entry in a ListView.
type Item struct {
	ID    string
	Title string
	Meta  string
	Body  string
}

// ListView is a list container. Its frame does not scroll; the scroll surface
// is its internal region.
type ListView struct {
	region *ScrollView
	items  []Item
	styles Styles
	lines  []string
	width  int
	height int
}

// NewListView returns a list over items.
func NewListView(items []Item, opts ...ScrollOption) *ListView {
	return &ListView{
		region: NewScrollView(opts...),
		items:  items,
		styles: DefaultStyles(),
	}
}

// ScrollRegion returns the surface that actually scrolls.
func (l *ListView) ScrollRegion() nested.Surface { return l.region }

// Region returns the concrete scroll region.
func (l *ListView) Region() *ScrollView { return l.region }

// Items returns the list entries.
func (l *ListView) Items() []Item { return l.items }

func (l *ListView) SetStyles(s Styles) { l.styles = s }

// SetItems replaces the entries and re-lays out the list.
func (l *ListView) SetItems(items []Item) {
	l.items = items
	l.Layout(l.width, l.height)
}

// Layout renders every item to lines at width and sizes the region to height.
func (l *ListView) Layout(width, height int) {
	l.width, l.height = width, height
	l.lines = l.lines[:0]
	for _, it := range l.items {
		head := l.styles.Title.Render(it.Title)
		if it.Meta != "" {
			head += " " + l.styles.Meta.Render(it.Meta)
		}
		l.lines = append(l.lines, head)
		for _, b := range wrap(it.Body, width) {
			l.lines = append(l.lines, l.styles.Body.Render(b))
		}
		l.lines = append(l.lines, "")
	}
	l.region.Resize(float64(len(l.lines)), float64(height))
}

func (l *ListView) Render() string {
	return window(l.lines, l.region, l.width, l.height)
}
