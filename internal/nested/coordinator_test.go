package nested

import (
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twitterGeometry() *Geometry {
	return &Geometry{Full: 200, Collapsed: 50}
}

func TestCoordinatorReveal(t *testing.T) {
	t.Parallel()

	outer := newFake("outer", 150)
	inner := newFake("inner", 0)
	c := NewCoordinator(outer, twitterGeometry())

	got := c.OnInnerSurfaceChanged(inner, Point{Y: -5}, Point{Y: -25})

	assert.Equal(t, DecisionReveal, got)
	assert.Equal(t, 130.0, outer.Offset().Y)
	assert.Equal(t, Point{Y: -5}, inner.Offset())
	assert.Equal(t, []Point{{Y: 130}}, outer.writes)
	assert.Equal(t, []Point{{Y: -5}}, inner.writes)
	assert.False(t, c.Suppressed())
}

func TestCoordinatorCollapse(t *testing.T) {
	t.Parallel()

	outer := newFake("outer", 0)
	inner := newFake("inner", 0)
	c := NewCoordinator(outer, twitterGeometry())

	got := c.OnInnerSurfaceChanged(inner, Point{Y: 5}, Point{Y: 25})

	assert.Equal(t, DecisionCollapse, got)
	assert.Equal(t, 20.0, outer.Offset().Y)
	assert.Equal(t, Point{Y: 5}, inner.Offset())
}

func TestCoordinatorPassthrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		outer    float64
		old, new float64
	}{
		{name: "collapsed header, list scrolling down", outer: 150, old: 10, new: 30},
		{name: "collapsed header, list scrolling up above zero", outer: 150, old: 30, new: 10},
		{name: "expanded header, list overscrolled at top", outer: 0, old: 0, new: -4},
		{name: "collapsed header, list still negative while moving down", outer: 150, old: -10, new: -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			outer := newFake("outer", tt.outer)
			inner := newFake("inner", tt.new)
			c := NewCoordinator(outer, twitterGeometry())

			got := c.OnInnerSurfaceChanged(inner, Point{Y: tt.old}, Point{Y: tt.new})

			assert.Equal(t, DecisionPassthrough, got)
			assert.Empty(t, outer.writes)
			assert.Empty(t, inner.writes)
		})
	}
}

func TestCoordinatorDeadZone(t *testing.T) {
	t.Parallel()

	for _, d := range []float64{0, 0.25, -0.5, 0.999, -0.999} {
		outer := newFake("outer", 75)
		inner := newFake("inner", 0)
		c := NewCoordinator(outer, twitterGeometry())

		got := c.OnInnerSurfaceChanged(inner, Point{Y: 3}, Point{Y: 3 - d})

		assert.Equal(t, DecisionDeadZone, got, "delta %g", d)
		assert.Empty(t, outer.writes, "delta %g", d)
		assert.Empty(t, inner.writes, "delta %g", d)
	}
}

func TestCoordinatorClampsOuter(t *testing.T) {
	t.Parallel()

	t.Run("collapse past range", func(t *testing.T) {
		t.Parallel()
		outer := newFake("outer", 140)
		inner := newFake("inner", 0)
		c := NewCoordinator(outer, twitterGeometry())

		require.Equal(t, DecisionCollapse, c.OnInnerSurfaceChanged(inner, Point{Y: 0}, Point{Y: 60}))
		assert.Equal(t, 150.0, outer.Offset().Y)
	})

	t.Run("reveal past zero", func(t *testing.T) {
		t.Parallel()
		outer := newFake("outer", 10)
		inner := newFake("inner", 0)
		c := NewCoordinator(outer, twitterGeometry())

		require.Equal(t, DecisionReveal, c.OnInnerSurfaceChanged(inner, Point{Y: 0}, Point{Y: -60}))
		assert.Equal(t, 0.0, outer.Offset().Y)
	})

	t.Run("random walk stays in range", func(t *testing.T) {
		t.Parallel()
		outer := newFake("outer", 0)
		inner := newFake("inner", 0)
		c := NewCoordinator(outer, twitterGeometry())

		steps := []float64{7, 40, -3, 90, 12, -200, 35, -1, 500, -0.5, -80, 2, 151}
		y := 0.0
		for _, s := range steps {
			c.OnInnerSurfaceChanged(inner, Point{Y: y}, Point{Y: y + s})
			y = inner.Offset().Y
			for _, w := range outer.writes {
				require.GreaterOrEqual(t, w.Y, 0.0)
				require.LessOrEqual(t, w.Y, 150.0)
			}
		}
	})
}

func TestCoordinatorIgnoresOwnWrites(t *testing.T) {
	t.Parallel()

	outer := newFake("outer", 0)
	inner := newFake("inner", 0)
	c := NewCoordinator(outer, twitterGeometry())

	var decisions []Decision
	observe := func(s Surface) {
		s.Subscribe(func(old, new Point) {
			decisions = append(decisions, c.OnInnerSurfaceChanged(s, old, new))
		})
	}
	observe(outer)
	observe(inner)

	inner.drag(20)

	// The write-backs on both surfaces are delivered while the drag is still
	// being reconciled, and are suppressed.
	assert.Equal(t, []Decision{DecisionIgnored, DecisionIgnored, DecisionCollapse}, decisions)
	assert.Equal(t, 20.0, outer.Offset().Y)
	assert.Equal(t, 0.0, inner.Offset().Y)
	assert.Len(t, inner.writes, 1)
	assert.Len(t, outer.writes, 1)
}

func TestCoordinatorIgnoresOuterAndNil(t *testing.T) {
	t.Parallel()

	outer := newFake("outer", 30)
	c := NewCoordinator(outer, twitterGeometry())

	assert.Equal(t, DecisionIgnored, c.OnInnerSurfaceChanged(outer, Point{Y: 30}, Point{Y: 0}))
	assert.Equal(t, DecisionIgnored, c.OnInnerSurfaceChanged(nil, Point{Y: 0}, Point{Y: 10}))
	assert.Empty(t, outer.writes)

	none := NewCoordinator(nil, twitterGeometry())
	assert.Equal(t, DecisionIgnored, none.OnInnerSurfaceChanged(newFake("inner", 0), Point{}, Point{Y: 10}))
	assert.NoError(t, none.SetOuterOffset(10))
}

func TestCoordinatorNilGeometry(t *testing.T) {
	t.Parallel()

	outer := newFake("outer", 0)
	inner := newFake("inner", 0)
	c := NewCoordinator(outer, nil)

	assert.Zero(t, c.CollapseRange())
	// With no range the collapse branch cannot apply.
	assert.Equal(t, DecisionPassthrough, c.OnInnerSurfaceChanged(inner, Point{Y: 0}, Point{Y: 10}))
	assert.Empty(t, outer.writes)
}

func TestCoordinatorNegativeRange(t *testing.T) {
	t.Parallel()

	var logged []string
	log := funcr.New(func(prefix, args string) {
		logged = append(logged, args)
	}, funcr.Options{})

	g := &Geometry{Full: 40, Collapsed: 60}
	outer := newFake("outer", 0)
	inner := newFake("inner", 0)
	c := NewCoordinator(outer, g, WithLogger(log))

	assert.Zero(t, c.CollapseRange())
	assert.Zero(t, c.CollapseRange())
	require.Len(t, logged, 1, "one warning per distinct geometry")
	assert.Contains(t, logged[0], "invalid header geometry")

	assert.Equal(t, DecisionPassthrough, c.OnInnerSurfaceChanged(inner, Point{Y: 0}, Point{Y: 10}))
	assert.Empty(t, outer.writes)

	g.Collapsed = 70
	c.CollapseRange()
	assert.Len(t, logged, 2)

	g.Collapsed = 10
	assert.Equal(t, 30.0, c.CollapseRange())
	assert.Len(t, logged, 2)
}

func TestCoordinatorSetOuterOffset(t *testing.T) {
	t.Parallel()

	outer := newFake("outer", 0)
	c := NewCoordinator(outer, twitterGeometry())
	calls := 0
	outer.Subscribe(func(old, new Point) {
		if c.OnInnerSurfaceChanged(outer, old, new) != DecisionIgnored {
			calls++
		}
	})

	require.NoError(t, c.SetOuterOffset(500))
	assert.Equal(t, 150.0, outer.Offset().Y)
	require.NoError(t, c.SetOuterOffset(-3))
	assert.Equal(t, 0.0, outer.Offset().Y)
	assert.Zero(t, calls)
}

func TestCoordinatorSetGeometry(t *testing.T) {
	t.Parallel()

	c := NewCoordinator(newFake("outer", 0), twitterGeometry())
	assert.Equal(t, 150.0, c.CollapseRange())

	c.SetGeometry(Geometry{Full: 8, Collapsed: 2})
	assert.Equal(t, 6.0, c.CollapseRange())
}

func TestDecisionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "reveal", DecisionReveal.String())
	assert.Equal(t, "collapse", DecisionCollapse.String())
	assert.Equal(t, "dead_zone", DecisionDeadZone.String())
	assert.Equal(t, "unknown", Decision(42).String())
}
