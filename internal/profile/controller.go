// Package profile assembles the nested scrolling profile: a collapsing header
// on an outer scroll surface, a selector, and a pager whose page surfaces are
// coordinated with the header.
package profile

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/jask/profilescroll/internal/nested"
	"github.com/jask/profilescroll/internal/pager"
	"github.com/jask/profilescroll/internal/surface"
)

// SelectorHeight is the number of lines the segmented selector occupies.
const SelectorHeight = 1

var (
	// ErrLayoutFrozen is returned when the header is reconfigured after the
	// first layout.
	ErrLayoutFrozen = errors.New("profile: header geometry is fixed after first layout")
	// ErrNotScrollable is returned for a page whose surface cannot take gestures.
	ErrNotScrollable = errors.New("profile: page surface does not accept gestures")
	// ErrClosed is returned by operations on a closed controller.
	ErrClosed = errors.New("profile: controller closed")
)

// Scroller is a surface that accepts gestures.
type Scroller interface {
	nested.Surface
	ScrollBy(dy float64) bool
	Settle() bool
	Overscrolled() bool
}

// Options configure a Controller.
type Options struct {
	FullHeight      float64
	CollapsedHeight float64
	Logger          logr.Logger
}

// State is the persisted scroll position of a profile.
type State struct {
	PageKey string
	Header  float64
	Offsets map[string]float64
}

// Controller wires the header, selector and pager to the coordination core.
type Controller struct {
	outer    *surface.ScrollView
	geometry nested.Geometry
	pager    *pager.Pager
	selector *pager.Selector
	coord    *nested.Coordinator
	registry *nested.Registry
	log      logr.Logger

	scrollers []Scroller
	width     int
	height    int
	laidOut   bool
	pending   *State
}

// New returns a controller with no pages.
func New(opts Options) *Controller {
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	c := &Controller{
		outer:    surface.NewScrollView(),
		geometry: nested.Geometry{Full: opts.FullHeight, Collapsed: opts.CollapsedHeight},
		pager:    pager.New(),
		log:      log,
	}
	c.selector = pager.NewSelector(c.pager)
	c.coord = nested.NewCoordinator(c.outer, &c.geometry, nested.WithLogger(log.WithName("coordinator")))
	c.registry = nested.NewRegistry(c.coord, nested.WithLogger(log.WithName("registry")))
	c.pager.OnChange(func(from, to int) {
		c.log.V(1).Info("page changed", "from", from, "to", to)
	})
	// Surface a bad geometry at construction rather than on the first gesture.
	c.coord.CollapseRange()
	return c
}

// Configure changes the header geometry. It is only allowed before the first
// layout. A geometry with a negative collapse range is kept, clamped to zero,
// and reported.
func (c *Controller) Configure(full, collapsed float64) error {
	if c.laidOut {
		return ErrLayoutFrozen
	}
	c.geometry = nested.Geometry{Full: full, Collapsed: collapsed}
	c.coord.CollapseRange()
	return c.geometry.Validate()
}

// Geometry returns the header geometry.
func (c *Controller) Geometry() nested.Geometry { return c.geometry }

// CollapseRange returns how far the header can scroll away.
func (c *Controller) CollapseRange() float64 { return c.coord.CollapseRange() }

// HeaderOffset returns how much of the header is hidden.
func (c *Controller) HeaderOffset() float64 { return c.outer.Offset().Y }

// Outer returns the outer scroll surface.
func (c *Controller) Outer() *surface.ScrollView { return c.outer }

func (c *Controller) Pager() *pager.Pager              { return c.pager }
func (c *Controller) Selector() *pager.Selector        { return c.selector }
func (c *Controller) Registry() *nested.Registry       { return c.registry }
func (c *Controller) Coordinator() *nested.Coordinator { return c.coord }

// SetPages installs pages and starts coordinating their surfaces. Surfaces of
// pages that are no longer present stop being observed.
func (c *Controller) SetPages(pages []pager.Page) error {
	if c.registry.Closed() {
		return ErrClosed
	}
	resolved := make([]Scroller, len(pages))
	for i, pg := range pages {
		s, err := pager.Resolve(pg)
		if err != nil {
			return err
		}
		sc, ok := s.(Scroller)
		if !ok {
			return fmt.Errorf("%w: %q", ErrNotScrollable, pg.Title)
		}
		resolved[i] = sc
	}
	surfaces, err := c.pager.SetPages(pages)
	if err != nil {
		return err
	}
	keep := make(map[nested.Surface]bool, len(surfaces))
	for _, s := range surfaces {
		keep[s] = true
	}
	for _, s := range c.registry.Surfaces() {
		if !keep[s] {
			c.registry.Unregister(s)
		}
	}
	c.registry.Register(surfaces...)
	c.scrollers = resolved
	if c.laidOut {
		c.layoutPages()
	}
	return nil
}

// PagerHeight is the height of the page area once the header is fully
// collapsed.
func (c *Controller) PagerHeight() int {
	h := c.height - int(c.geometry.Collapsed) - SelectorHeight
	if h < 1 {
		h = 1
	}
	return h
}

// Layout sizes every surface for a width by height terminal and freezes the
// header geometry.
func (c *Controller) Layout(width, height int) {
	c.width, c.height = width, height
	c.laidOut = true
	header := c.geometry.Full
	if header < 0 {
		header = 0
	}
	c.outer.Resize(header+SelectorHeight+float64(c.PagerHeight()), float64(height))
	c.layoutPages()
	if c.pending != nil {
		st := *c.pending
		c.pending = nil
		c.apply(st)
	}
}

func (c *Controller) layoutPages() {
	for _, pg := range c.pager.Pages() {
		if r := pg.Renderer(); r != nil {
			r.Layout(c.width, c.PagerHeight())
		}
	}
}

// Size returns the last layout size.
func (c *Controller) Size() (int, int) { return c.width, c.height }

// ScrollActive applies a vertical gesture to the current page. The gesture is
// delivered as a stream of one-line samples, the way a touch drag reports
// per-frame positions.
func (c *Controller) ScrollActive(dy float64) bool {
	i := c.pager.Index()
	if i < 0 || i >= len(c.scrollers) {
		return false
	}
	s := c.scrollers[i]
	// A new gesture starts from rest.
	if s.Overscrolled() {
		s.Settle()
	}
	moved := false
	for dy != 0 {
		step := math.Copysign(math.Min(1, math.Abs(dy)), dy)
		dy -= step
		if s.ScrollBy(step) {
			moved = true
		}
	}
	return moved
}

// ScrollHeader applies a vertical gesture to the header itself.
func (c *Controller) ScrollHeader(dy float64) bool {
	before := c.outer.Offset().Y
	target := before + dy
	if err := c.coord.SetOuterOffset(target); err != nil {
		c.log.Error(err, "header scroll refused")
		return false
	}
	return c.outer.Offset().Y != before
}

// Settle springs every overscrolled page back into bounds.
func (c *Controller) Settle() bool {
	moved := false
	for _, s := range c.scrollers {
		if s.Settle() {
			moved = true
		}
	}
	return moved
}

// Overscrolled reports whether any page needs settling.
func (c *Controller) Overscrolled() bool {
	for _, s := range c.scrollers {
		if s.Overscrolled() {
			return true
		}
	}
	return false
}

// Snapshot captures the current scroll state.
func (c *Controller) Snapshot() State {
	st := State{Header: c.HeaderOffset(), Offsets: make(map[string]float64, c.pager.Len())}
	if pg, ok := c.pager.Current(); ok {
		st.PageKey = pg.Key
	}
	for i, pg := range c.pager.Pages() {
		st.Offsets[pg.Key] = c.scrollers[i].Offset().Y
	}
	return st
}

// Restore moves the header and pages to st. Before the first layout the
// state is held and applied when the sizes are known.
func (c *Controller) Restore(st State) {
	if !c.laidOut {
		c.pending = &st
		return
	}
	c.apply(st)
}

func (c *Controller) apply(st State) {
	if i, ok := c.pager.IndexOf(st.PageKey); ok {
		_ = c.pager.JumpTo(i)
	}
	for i, pg := range c.pager.Pages() {
		y, ok := st.Offsets[pg.Key]
		if !ok {
			continue
		}
		s := c.scrollers[i]
		if err := c.coord.Write(s, s.Offset().WithY(y)); err != nil {
			c.log.Error(err, "restore page offset", "page", pg.Key)
			continue
		}
		s.Settle()
	}
	if err := c.coord.SetOuterOffset(st.Header); err != nil {
		c.log.Error(err, "restore header offset")
	}
}

// Close stops all coordination. It is safe to call more than once.
func (c *Controller) Close() {
	c.registry.Teardown()
}
