package nested

import (
	"math"

	"github.com/go-logr/logr"
)

// DeadZone is the smallest vertical delta the coordinator reacts to.
const DeadZone = 1.0

// Decision describes what the coordinator did with one change event.
type Decision int

const (
	// DecisionIgnored means the event was suppressed or came from the outer surface.
	DecisionIgnored Decision = iota
	// DecisionDeadZone means the delta was below DeadZone.
	DecisionDeadZone
	// DecisionPassthrough means the inner surface scrolls on its own.
	DecisionPassthrough
	// DecisionReveal means the header moved back into view.
	DecisionReveal
	// DecisionCollapse means the header moved further out of view.
	DecisionCollapse
)

func (d Decision) String() string {
	switch d {
	case DecisionIgnored:
		return "ignored"
	case DecisionDeadZone:
		return "dead_zone"
	case DecisionPassthrough:
		return "passthrough"
	case DecisionReveal:
		return "reveal"
	case DecisionCollapse:
		return "collapse"
	default:
		return "unknown"
	}
}

// Option configures a Coordinator or Registry.
type Option func(*options)

type options struct {
	log logr.Logger
}

// WithLogger sets the logger used for configuration warnings and diagnostics.
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(opts []Option) options {
	o := options{log: logr.Discard()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Coordinator owns the outer surface offset and reconciles it against
// changes reported by inner surfaces.
type Coordinator struct {
	outer    Surface
	geometry GeometryProvider
	guard    Guard
	log      logr.Logger

	warned    bool
	warnedFor Geometry
}

// NewCoordinator returns a coordinator driving outer. geometry may be nil, in
// which case the header never moves.
func NewCoordinator(outer Surface, geometry GeometryProvider, opts ...Option) *Coordinator {
	o := buildOptions(opts)
	return &Coordinator{
		outer:    outer,
		geometry: geometry,
		log:      o.log,
	}
}

// Outer returns the outer surface.
func (c *Coordinator) Outer() Surface { return c.outer }

// Suppressed reports whether a coordinator write is in progress.
func (c *Coordinator) Suppressed() bool { return c.guard.Active() }

// SetGeometry swaps the geometry provider.
func (c *Coordinator) SetGeometry(g GeometryProvider) {
	c.geometry = g
	c.warned = false
}

// CollapseRange returns the current collapse range, logging a configuration
// warning the first time an invalid geometry is seen.
func (c *Coordinator) CollapseRange() float64 {
	r, err := collapseRange(c.geometry)
	if err != nil {
		g := GeometryOf(c.geometry)
		if !c.warned || c.warnedFor != g {
			c.log.Error(err, "invalid header geometry, collapse disabled",
				"fullHeight", g.Full, "collapsedVisibleHeight", g.Collapsed)
			c.warned = true
			c.warnedFor = g
		}
	}
	return r
}

// OnInnerSurfaceChanged reconciles one offset change on surface.
func (c *Coordinator) OnInnerSurfaceChanged(surface Surface, old, new Point) Decision {
	if c.guard.Active() || !identifiable(surface) || surface == c.outer || c.outer == nil {
		return DecisionIgnored
	}

	delta := old.Y - new.Y
	if math.Abs(delta) < DeadZone {
		return DecisionDeadZone
	}

	rng := c.CollapseRange()
	outer := c.outer.Offset()

	var decision Decision
	switch {
	case delta > 0 && outer.Y > 0 && new.Y < 0:
		decision = DecisionReveal
	case delta < 0 && outer.Y < rng && new.Y >= 0:
		decision = DecisionCollapse
	default:
		return DecisionPassthrough
	}

	// Both targets are fixed before either write happens.
	outerTarget := outer.WithY(clamp(outer.Y-delta, 0, rng))
	innerTarget := old

	if err := c.guard.Write(c.outer, outerTarget); err != nil {
		c.log.Error(err, "outer write refused")
		return DecisionIgnored
	}
	if err := c.guard.Write(surface, innerTarget); err != nil {
		c.log.Error(err, "inner write refused")
	}
	c.log.V(2).Info("reconciled", "decision", decision.String(),
		"delta", delta, "outer", outerTarget.Y, "inner", innerTarget.Y)
	return decision
}

// Write sets the offset of s under suppression, so the change is not
// reconciled. Hosts use it to restore saved positions.
func (c *Coordinator) Write(s Surface, p Point) error {
	return c.guard.Write(s, p)
}

// SetOuterOffset moves the header to y, clamped to the collapse range. It is
// used for programmatic header moves and restores.
func (c *Coordinator) SetOuterOffset(y float64) error {
	if c.outer == nil {
		return nil
	}
	rng := c.CollapseRange()
	return c.guard.Write(c.outer, c.outer.Offset().WithY(clamp(y, 0, rng)))
}
