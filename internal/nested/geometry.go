package nested

import (
	"errors"
	"fmt"
)

// ErrNegativeCollapseRange reports a header whose collapsed height exceeds its
// full height.
var ErrNegativeCollapseRange = errors.New("collapsed visible height exceeds full height")

// Geometry is a fixed header size. It satisfies GeometryProvider.
type Geometry struct {
	Full      float64
	Collapsed float64
}

func (g Geometry) FullHeight() float64             { return g.Full }
func (g Geometry) CollapsedVisibleHeight() float64 { return g.Collapsed }

// CollapseRange returns how far the header may scroll out of view.
func (g Geometry) CollapseRange() (float64, error) {
	return collapseRange(g)
}

// Validate reports whether the geometry yields a usable collapse range.
func (g Geometry) Validate() error {
	_, err := collapseRange(g)
	return err
}

// GeometryOf snapshots a provider. A nil provider yields the zero Geometry.
func GeometryOf(p GeometryProvider) Geometry {
	if p == nil {
		return Geometry{}
	}
	return Geometry{Full: p.FullHeight(), Collapsed: p.CollapsedVisibleHeight()}
}

// collapseRange never returns a negative range. A nil provider contributes
// nothing, so the header cannot move.
func collapseRange(p GeometryProvider) (float64, error) {
	if p == nil {
		return 0, nil
	}
	full, collapsed := p.FullHeight(), p.CollapsedVisibleHeight()
	r := full - collapsed
	if r < 0 {
		return 0, fmt.Errorf("%w: full=%g collapsed=%g", ErrNegativeCollapseRange, full, collapsed)
	}
	return r, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
