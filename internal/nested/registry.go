package nested

import (
	"reflect"

	"github.com/go-logr/logr"
)

type entry struct {
	surface Surface
	handle  Handle
	live    bool
}

// Registry tracks the inner surfaces observed by one Coordinator. Each surface
// is subscribed at most once.
type Registry struct {
	coord   *Coordinator
	log     logr.Logger
	self    *entry
	entries map[Surface]*entry
	order   []Surface
	closed  bool
}

// NewRegistry returns a registry feeding c. The outer surface is observed
// from the start; its own changes reach the coordinator and are ignored there.
func NewRegistry(c *Coordinator, opts ...Option) *Registry {
	o := buildOptions(opts)
	r := &Registry{
		coord:   c,
		log:     o.log,
		entries: make(map[Surface]*entry),
	}
	if outer := c.Outer(); outer != nil {
		r.self = r.subscribe(outer)
	}
	return r
}

func (r *Registry) subscribe(s Surface) *entry {
	e := &entry{surface: s, live: true}
	e.handle = s.Subscribe(func(old, new Point) {
		// A platform may still deliver an event queued before teardown.
		if !e.live {
			return
		}
		r.coord.OnInnerSurfaceChanged(e.surface, old, new)
	})
	return e
}

// identifiable reports whether s can be told apart by identity. Surfaces whose
// dynamic type is not comparable cannot key the observation set.
func identifiable(s Surface) bool {
	return s != nil && reflect.TypeOf(s).Comparable()
}

func (r *Registry) release(e *entry) {
	if e == nil || !e.live {
		return
	}
	e.live = false
	e.surface.Unsubscribe(e.handle)
}

// Register starts observing every surface not already observed and returns
// how many were added. Nil and duplicate surfaces are skipped.
func (r *Registry) Register(surfaces ...Surface) int {
	if r.closed {
		r.log.Info("register after teardown ignored", "count", len(surfaces))
		return 0
	}
	added := 0
	for _, s := range surfaces {
		if s == nil {
			continue
		}
		if !identifiable(s) {
			r.log.Info("surface without identity ignored", "type", reflect.TypeOf(s).String())
			continue
		}
		if s == r.coord.Outer() {
			continue
		}
		if _, ok := r.entries[s]; ok {
			continue
		}
		r.entries[s] = r.subscribe(s)
		r.order = append(r.order, s)
		added++
	}
	if added > 0 {
		r.log.V(1).Info("registered surfaces", "added", added, "total", len(r.entries))
	}
	return added
}

// Unregister stops observing s. It reports whether s was observed.
func (r *Registry) Unregister(s Surface) bool {
	if !identifiable(s) {
		return false
	}
	e, ok := r.entries[s]
	if !ok {
		return false
	}
	r.release(e)
	delete(r.entries, s)
	for i, o := range r.order {
		if o == s {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Observing reports whether s is currently observed.
func (r *Registry) Observing(s Surface) bool {
	if !identifiable(s) {
		return false
	}
	_, ok := r.entries[s]
	return ok
}

// Len returns the number of observed inner surfaces.
func (r *Registry) Len() int { return len(r.entries) }

// Surfaces returns the observed inner surfaces in registration order.
func (r *Registry) Surfaces() []Surface {
	out := make([]Surface, len(r.order))
	copy(out, r.order)
	return out
}

// Closed reports whether Teardown has run.
func (r *Registry) Closed() bool { return r.closed }

// Teardown unsubscribes every surface, including the outer surface, and
// clears the set. Calling it again does nothing.
func (r *Registry) Teardown() {
	if r.closed {
		return
	}
	r.closed = true
	for _, s := range r.order {
		r.release(r.entries[s])
	}
	r.release(r.self)
	r.entries = make(map[Surface]*entry)
	r.order = nil
	r.log.V(1).Info("registry torn down")
}
