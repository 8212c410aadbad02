// Package pager holds the paged container that sits under the profile
// header: an ordered set of pages, each resolving to exactly one scroll
// surface, and a segmented selector that can jump between them.
package pager

import (
	"errors"
	"fmt"

	"github.com/jask/profilescroll/internal/nested"
)

var (
	// ErrUnknownKind is returned for a page whose Kind is not recognised.
	ErrUnknownKind = errors.New("pager: unknown page kind")
	// ErrUnresolvable is returned when the field selected by Kind is unset.
	ErrUnresolvable = errors.New("pager: page has no content for its kind")
)

// Kind selects how a page resolves to its scroll surface.
type Kind int

const (
	// KindView is a plain view that scrolls itself.
	KindView Kind = iota
	// KindList is a list container whose internal region scrolls.
	KindList
	// KindTable is a table container whose body scrolls.
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindView:
		return "view"
	case KindList:
		return "list"
	case KindTable:
		return "table"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Renderer draws a page into a fixed box.
type Renderer interface {
	Layout(width, height int)
	Render() string
}

// ViewContent is a view that is its own scroll surface.
type ViewContent interface {
	nested.Surface
	Renderer
}

// ListContent is a list container.
type ListContent interface {
	Renderer
	ScrollRegion() nested.Surface
}

// TableContent is a table container.
type TableContent interface {
	Renderer
	Body() nested.Surface
}

// Page is one content provider of the pager. Exactly the field matching Kind
// is consulted.
type Page struct {
	Key   string
	Title string
	Kind  Kind
	View  ViewContent
	List  ListContent
	Table TableContent
}

// ViewPage builds a KindView page.
func ViewPage(key, title string, v ViewContent) Page {
	return Page{Key: key, Title: title, Kind: KindView, View: v}
}

// ListPage builds a KindList page.
func ListPage(key, title string, l ListContent) Page {
	return Page{Key: key, Title: title, Kind: KindList, List: l}
}

// TablePage builds a KindTable page.
func TablePage(key, title string, t TableContent) Page {
	return Page{Key: key, Title: title, Kind: KindTable, Table: t}
}

// Resolve returns the scroll surface the coordinator should observe for p.
func Resolve(p Page) (nested.Surface, error) {
	switch p.Kind {
	case KindView:
		if p.View == nil {
			return nil, fmt.Errorf("%w: %s %q", ErrUnresolvable, p.Kind, p.Title)
		}
		return p.View, nil
	case KindList:
		if p.List == nil {
			return nil, fmt.Errorf("%w: %s %q", ErrUnresolvable, p.Kind, p.Title)
		}
		return p.List.ScrollRegion(), nil
	case KindTable:
		if p.Table == nil {
			return nil, fmt.Errorf("%w: %s %q", ErrUnresolvable, p.Kind, p.Title)
		}
		return p.Table.Body(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, p.Kind)
	}
}

// Renderer returns the drawable content of p, or nil if it has none.
func (p Page) Renderer() Renderer {
	switch p.Kind {
	case KindView:
		if p.View != nil {
			return p.View
		}
	case KindList:
		if p.List != nil {
			return p.List
		}
	case KindTable:
		if p.Table != nil {
			return p.Table
		}
	}
	return nil
}
