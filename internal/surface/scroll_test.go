package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/profilescroll/internal/nested"
)

func TestScrollViewSetOffsetNotifies(t *testing.T) {
	t.Parallel()

	v := NewScrollView(WithExtent(100, 10))
	var got [][2]nested.Point
	h := v.Subscribe(func(old, new nested.Point) { got = append(got, [2]nested.Point{old, new}) })

	v.SetOffset(nested.Point{Y: 5})
	v.SetOffset(nested.Point{Y: 5})
	require.Len(t, got, 1, "writing the current offset is silent")
	assert.Equal(t, [2]nested.Point{{}, {Y: 5}}, got[0])

	v.Unsubscribe(h)
	v.SetOffset(nested.Point{Y: 6})
	assert.Len(t, got, 1)
	assert.Zero(t, v.Subscribers())
}

func TestScrollViewUnsubscribeDuringEmit(t *testing.T) {
	t.Parallel()

	v := NewScrollView()
	calls := 0
	var h nested.Handle
	h = v.Subscribe(func(_, _ nested.Point) {
		calls++
		v.Unsubscribe(h)
	})
	v.Subscribe(func(_, _ nested.Point) { calls++ })

	v.SetOffset(nested.Point{Y: 1})
	assert.Equal(t, 2, calls)
	v.SetOffset(nested.Point{Y: 2})
	assert.Equal(t, 3, calls)
}

func TestScrollViewScrollBy(t *testing.T) {
	t.Parallel()

	v := NewScrollView(WithExtent(20, 5), WithOverscroll(2))
	assert.Equal(t, 15.0, v.MaxOffset())
	assert.True(t, v.AtTop())

	assert.True(t, v.ScrollBy(-10))
	assert.Equal(t, -2.0, v.Offset().Y)
	assert.True(t, v.Overscrolled())
	assert.Equal(t, 2, v.Gap())
	assert.Equal(t, 0, v.Top())

	assert.False(t, v.ScrollBy(-1), "already at the rubber-band limit")
	assert.False(t, v.ScrollBy(0))

	assert.True(t, v.ScrollBy(100))
	assert.Equal(t, 17.0, v.Offset().Y)
	assert.False(t, v.AtTop())
	assert.Equal(t, 17, v.Top())
}

func TestScrollViewSettleIsSilent(t *testing.T) {
	t.Parallel()

	v := NewScrollView(WithExtent(20, 5), WithOverscroll(1))
	v.ScrollBy(-1)
	calls := 0
	v.Subscribe(func(_, _ nested.Point) { calls++ })

	assert.True(t, v.Settle())
	assert.False(t, v.Settle())
	assert.Equal(t, 0.0, v.Offset().Y)
	assert.Zero(t, calls)
}

func TestScrollViewResize(t *testing.T) {
	t.Parallel()

	v := NewScrollView(WithExtent(50, 10))
	v.SetOffset(nested.Point{Y: 40})
	v.Resize(20, 10)
	assert.Equal(t, 10.0, v.Offset().Y)
	assert.Equal(t, 20.0, v.Content())
	assert.Equal(t, 10.0, v.Viewport())

	v.Resize(4, 10)
	assert.Zero(t, v.MaxOffset())
	assert.Zero(t, v.Offset().Y)
}

func TestWithOverscrollIgnoresNegative(t *testing.T) {
	t.Parallel()

	v := NewScrollView(WithExtent(10, 10), WithOverscroll(-3))
	assert.False(t, v.ScrollBy(-1))
}
