package geometry

// Rect is an axis-aligned bounding box in grid coordinates, inclusive of
// both corners.
type Rect struct {
	P0, P1 Point
}

// NewRect builds a Rect from two corners, normalizing so P0 <= P1 on both
// axes.
func NewRect(a, b Point) Rect {
	if a.X > b.X {
		a.X, b.X = b.X, a.X
	}
	if a.Y > b.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	return Rect{P0: a, P1: b}
}

// Contains reports whether p lies within the rect (inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.P0.X && p.X <= r.P1.X && p.Y >= r.P0.Y && p.Y <= r.P1.Y
}

// Intersects reports whether r and o overlap (inclusive boundaries).
func (r Rect) Intersects(o Rect) bool {
	if r.P1.X < o.P0.X || o.P1.X < r.P0.X {
		return false
	}
	if r.P1.Y < o.P0.Y || o.P1.Y < r.P0.Y {
		return false
	}
	return true
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	p0 := Point{X: min32(r.P0.X, o.P0.X), Y: min32(r.P0.Y, o.P0.Y)}
	p1 := Point{X: max32(r.P1.X, o.P1.X), Y: max32(r.P1.Y, o.P1.Y)}
	return Rect{P0: p0, P1: p1}
}

// BoundingRectOfLine returns the Rect enclosing an OrderedLine.
func BoundingRectOfLine(l OrderedLine) Rect {
	return NewRect(l.P0(), l.P1())
}

// FineRect is the floating-point widened form of a Rect used by the spatial
// index, per spec.md §4.4: each coordinate is a Grid value +/- 0.5 so that
// adjacent geometry's boxes are guaranteed to overlap at shared grid
// points.
type FineRect struct {
	MinX, MinY, MaxX, MaxY float64
}

// ToFineRect widens r by half a grid cell on every side.
func ToFineRect(r Rect) FineRect {
	return FineRect{
		MinX: float64(r.P0.X) - 0.5,
		MinY: float64(r.P0.Y) - 0.5,
		MaxX: float64(r.P1.X) + 0.5,
		MaxY: float64(r.P1.Y) + 0.5,
	}
}

func min32(a, b Grid) Grid {
	if a < b {
		return a
	}
	return b
}

func max32(a, b Grid) Grid {
	if a > b {
		return a
	}
	return b
}
