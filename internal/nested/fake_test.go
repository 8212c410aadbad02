package nested

// fakeSurface records writes and notifies subscribers like a real view.
type fakeSurface struct {
	name   string
	offset Point
	writes []Point
	subs   map[Handle]ChangeFunc
	order  []Handle
	next   Handle
}

func newFake(name string, y float64) *fakeSurface {
	return &fakeSurface{name: name, offset: Point{Y: y}, subs: map[Handle]ChangeFunc{}}
}

func (f *fakeSurface) Offset() Point { return f.offset }

func (f *fakeSurface) SetOffset(p Point) {
	f.writes = append(f.writes, p)
	old := f.offset
	f.offset = p
	f.emit(old, p)
}

func (f *fakeSurface) Subscribe(fn ChangeFunc) Handle {
	f.next++
	f.subs[f.next] = fn
	f.order = append(f.order, f.next)
	return f.next
}

func (f *fakeSurface) Unsubscribe(h Handle) {
	delete(f.subs, h)
}

func (f *fakeSurface) emit(old, new Point) {
	for _, h := range append([]Handle(nil), f.order...) {
		if fn, ok := f.subs[h]; ok {
			fn(old, new)
		}
	}
}

// drag simulates the platform moving the view without going through a
// coordinator: the offset changes and subscribers hear about it.
func (f *fakeSurface) drag(to float64) {
	old := f.offset
	f.offset = Point{X: old.X, Y: to}
	f.emit(old, f.offset)
}

// valueSurface is a surface whose dynamic type cannot be compared.
type valueSurface struct {
	history []Point
}

func (v valueSurface) Offset() Point               { return Point{} }
func (v valueSurface) SetOffset(Point)             {}
func (v valueSurface) Subscribe(ChangeFunc) Handle { return 1 }
func (v valueSurface) Unsubscribe(Handle)          {}

// stale delivers an event to every callback ever handed out, including
// unsubscribed ones, the way a queued platform notification would.
type staleSurface struct {
	*fakeSurface
	all []ChangeFunc
}

func newStale(name string) *staleSurface {
	return &staleSurface{fakeSurface: newFake(name, 0)}
}

func (s *staleSurface) Subscribe(fn ChangeFunc) Handle {
	s.all = append(s.all, fn)
	return s.fakeSurface.Subscribe(fn)
}

func (s *staleSurface) replay(old, new Point) {
	for _, fn := range s.all {
		fn(old, new)
	}
}
