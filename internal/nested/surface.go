package nested

//go:generate mockgen -destination=mocks/mock_surface.go -package=mocks -source=surface.go Surface,GeometryProvider

// Point is a two dimensional scroll offset.
type Point struct {
	X float64
	Y float64
}

// WithY returns p with its vertical component replaced.
func (p Point) WithY(y float64) Point {
	return Point{X: p.X, Y: y}
}

// Handle identifies one subscription on one surface.
type Handle uint64

// ChangeFunc receives the previous and current offset of a surface.
type ChangeFunc func(old, new Point)

// Surface is the capability every scrollable view exposes to the coordinator.
// Surfaces are compared by identity, so implementations must be pointer types.
type Surface interface {
	Offset() Point
	SetOffset(p Point)
	Subscribe(fn ChangeFunc) Handle
	Unsubscribe(h Handle)
}

// GeometryProvider reports the header dimensions the coordinator consults on
// every reconciliation.
type GeometryProvider interface {
	FullHeight() float64
	CollapsedVisibleHeight() float64
}
