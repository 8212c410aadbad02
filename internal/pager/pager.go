package pager

import (
	"errors"
	"fmt"

	"github.com/jask/profilescroll/internal/nested"
)

// ErrPageRange is returned by JumpTo for an index outside the pager.
var ErrPageRange = errors.New("pager: page index out of range")

// ChangeFunc is called after the current page changes.
type ChangeFunc func(from, to int)

// Pager is an ordered set of pages with one current page. Pages change either
// by gesture (Next, Prev) or programmatically (JumpTo).
type Pager struct {
	pages    []Page
	surfaces []nested.Surface
	current  int
	onChange []ChangeFunc
}

// New returns an empty pager.
func New() *Pager {
	return &Pager{current: -1}
}

// SetPages replaces the pages and makes the first one current. It returns the
// resolved surface of every page, in order. Nothing changes on error.
func (p *Pager) SetPages(pages []Page) ([]nested.Surface, error) {
	surfaces := make([]nested.Surface, len(pages))
	for i, pg := range pages {
		s, err := Resolve(pg)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		surfaces[i] = s
	}
	prev := p.current
	p.pages = pages
	p.surfaces = surfaces
	p.current = -1
	if len(pages) > 0 {
		p.current = 0
	}
	if prev != p.current {
		p.notify(prev, p.current)
	}
	out := make([]nested.Surface, len(surfaces))
	copy(out, surfaces)
	return out, nil
}

// OnChange registers fn to run after every page change.
func (p *Pager) OnChange(fn ChangeFunc) {
	if fn != nil {
		p.onChange = append(p.onChange, fn)
	}
}

func (p *Pager) notify(from, to int) {
	for _, fn := range p.onChange {
		fn(from, to)
	}
}

// Len returns the number of pages.
func (p *Pager) Len() int { return len(p.pages) }

// Index returns the current page index, or -1 when empty.
func (p *Pager) Index() int { return p.current }

// Pages returns the pages in order.
func (p *Pager) Pages() []Page { return p.pages }

// Current returns the current page.
func (p *Pager) Current() (Page, bool) {
	if p.current < 0 || p.current >= len(p.pages) {
		return Page{}, false
	}
	return p.pages[p.current], true
}

// CurrentSurface returns the scroll surface of the current page.
func (p *Pager) CurrentSurface() nested.Surface {
	if p.current < 0 || p.current >= len(p.surfaces) {
		return nil
	}
	return p.surfaces[p.current]
}

// Surface returns the scroll surface of page i.
func (p *Pager) Surface(i int) nested.Surface {
	if i < 0 || i >= len(p.surfaces) {
		return nil
	}
	return p.surfaces[i]
}

// Before returns the index of the page before i, as a swipe data source would.
func (p *Pager) Before(i int) (int, bool) {
	if i-1 < 0 || i-1 >= len(p.pages) {
		return 0, false
	}
	return i - 1, true
}

// After returns the index of the page after i.
func (p *Pager) After(i int) (int, bool) {
	if i < 0 || i+1 >= len(p.pages) {
		return 0, false
	}
	return i + 1, true
}

// Next swipes to the following page. It reports whether the page changed.
func (p *Pager) Next() bool {
	next, ok := p.After(p.current)
	if !ok {
		return false
	}
	return p.set(next)
}

// Prev swipes to the preceding page.
func (p *Pager) Prev() bool {
	prev, ok := p.Before(p.current)
	if !ok {
		return false
	}
	return p.set(prev)
}

// JumpTo makes page i current.
func (p *Pager) JumpTo(i int) error {
	if i < 0 || i >= len(p.pages) {
		return fmt.Errorf("%w: %d of %d", ErrPageRange, i, len(p.pages))
	}
	p.set(i)
	return nil
}

// IndexOf returns the index of the page with key.
func (p *Pager) IndexOf(key string) (int, bool) {
	for i, pg := range p.pages {
		if pg.Key == key {
			return i, true
		}
	}
	return 0, false
}

func (p *Pager) set(i int) bool {
	if i == p.current {
		return false
	}
	prev := p.current
	p.current = i
	p.notify(prev, i)
	return true
}
