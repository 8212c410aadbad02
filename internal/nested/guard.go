package nested

import "errors"

// ErrReentrantWrite is returned when a write is attempted from inside another
// guarded write.
var ErrReentrantWrite = errors.New("nested: guarded write already in progress")

// Guard suppresses change notifications caused by the coordinator's own
// writes. The zero value is ready to use.
type Guard struct {
	depth int
}

// Active reports whether a guarded write is in progress.
func (g *Guard) Active() bool {
	return g.depth > 0
}

// Write sets the offset of s with suppression held for the duration of the
// call. Writes never nest.
func (g *Guard) Write(s Surface, p Point) error {
	if g.depth > 0 {
		return ErrReentrantWrite
	}
	g.depth++
	defer func() { g.depth-- }()
	s.SetOffset(p)
	return nil
}
