// Package surface provides the terminal scroll views that back each page of
// the profile: a plain text view, a list container and a table container.
// They implement nested.Surface and behave like a touch scroll view: gestures
// may overscroll past either edge and Settle springs them back.
package surface

import (
	"github.com/jask/profilescroll/internal/nested"
)

type subscription struct {
	handle nested.Handle
	fn     nested.ChangeFunc
}

// ScrollView is a vertical scroll region measured in terminal lines.
type ScrollView struct {
	offset     nested.Point
	content    float64
	viewport   float64
	overscroll float64
	subs       []subscription
	next       nested.Handle
}

// ScrollOption configures a ScrollView.
type ScrollOption func(*ScrollView)

// WithOverscroll sets how far a gesture may drag past either edge.
func WithOverscroll(lines float64) ScrollOption {
	return func(v *ScrollView) {
		if lines >= 0 {
			v.overscroll = lines
		}
	}
}

// WithExtent sets the initial content and viewport heights.
func WithExtent(content, viewport float64) ScrollOption {
	return func(v *ScrollView) {
		v.content = content
		v.viewport = viewport
	}
}

// NewScrollView returns a scroll view at offset zero.
func NewScrollView(opts ...ScrollOption) *ScrollView {
	v := &ScrollView{}
	for _, fn := range opts {
		fn(v)
	}
	return v
}

func (v *ScrollView) Offset() nested.Point { return v.offset }

// SetOffset moves the view and notifies subscribers. Writing the current
// offset is a no-op.
func (v *ScrollView) SetOffset(p nested.Point) {
	if p == v.offset {
		return
	}
	old := v.offset
	v.offset = p
	v.emit(old, p)
}

// Subscribe registers fn for offset changes. Callbacks run synchronously in
// subscription order.
func (v *ScrollView) Subscribe(fn nested.ChangeFunc) nested.Handle {
	v.next++
	v.subs = append(v.subs, subscription{handle: v.next, fn: fn})
	return v.next
}

func (v *ScrollView) Unsubscribe(h nested.Handle) {
	for i, s := range v.subs {
		if s.handle == h {
			v.subs = append(v.subs[:i:i], v.subs[i+1:]...)
			return
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (v *ScrollView) Subscribers() int { return len(v.subs) }

func (v *ScrollView) emit(old, new nested.Point) {
	// Callbacks may unsubscribe or write back, so iterate over a snapshot.
	subs := append([]subscription(nil), v.subs...)
	for _, s := range subs {
		s.fn(old, new)
	}
}

// MaxOffset is the largest resting offset.
func (v *ScrollView) MaxOffset() float64 {
	if m := v.content - v.viewport; m > 0 {
		return m
	}
	return 0
}

// ScrollBy applies a gesture of dy lines. Positive dy scrolls content up.
// It reports whether the offset changed.
func (v *ScrollView) ScrollBy(dy float64) bool {
	if dy == 0 {
		return false
	}
	target := v.offset.Y + dy
	lo, hi := -v.overscroll, v.MaxOffset()+v.overscroll
	if target < lo {
		target = lo
	}
	if target > hi {
		target = hi
	}
	if target == v.offset.Y {
		return false
	}
	v.SetOffset(v.offset.WithY(target))
	return true
}

// AtTop reports whether the view rests at or above its first line.
func (v *ScrollView) AtTop() bool { return v.offset.Y <= 0 }

// Overscrolled reports whether the view rests outside [0, MaxOffset].
func (v *ScrollView) Overscrolled() bool {
	return v.offset.Y < 0 || v.offset.Y > v.MaxOffset()
}

// Settle springs an overscrolled view back inside its bounds. Like the end of
// a deceleration animation, it does not notify subscribers.
func (v *ScrollView) Settle() bool {
	y := v.offset.Y
	if y < 0 {
		y = 0
	}
	if m := v.MaxOffset(); y > m {
		y = m
	}
	if y == v.offset.Y {
		return false
	}
	v.offset = v.offset.WithY(y)
	return true
}

// Resize updates the content and viewport heights and settles the offset.
func (v *ScrollView) Resize(content, viewport float64) {
	v.content = content
	v.viewport = viewport
	v.Settle()
}

// Viewport returns the visible height.
func (v *ScrollView) Viewport() float64 { return v.viewport }

// Content returns the scrollable content height.
func (v *ScrollView) Content() float64 { return v.content }

// Top returns the first fully visible line index.
func (v *ScrollView) Top() int {
	if v.offset.Y <= 0 {
		return 0
	}
	return int(v.offset.Y)
}

// Gap returns how many blank lines an overscroll past the top exposes.
func (v *ScrollView) Gap() int {
	if v.offset.Y >= 0 {
		return 0
	}
	return int(-v.offset.Y)
}
