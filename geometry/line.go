package geometry

import (
	"fmt"

	"github.com/sarchlab/logikedit/vocabulary"
)

var errInvalidArgument = vocabulary.ErrInvalidArgument

// Orientation of a Line: it is always either horizontal or vertical. This is
// distinct from vocabulary.Orientation (a cardinal direction for
// connectors) — a Line's Orientation only says which axis it runs along.
type LineOrientation int

const (
	LineHorizontal LineOrientation = iota
	LineVertical
)

// Line is a single orthogonal segment between two points. It is not
// required to be ordered; OrderedLine enforces that.
type Line struct {
	P0, P1 Point
}

// IsOrthogonal reports whether the line runs purely horizontally or purely
// vertically (and is not degenerate).
func (l Line) IsOrthogonal() bool {
	if l.P0 == l.P1 {
		return false
	}
	return l.P0.X == l.P1.X || l.P0.Y == l.P1.Y
}

// Orientation returns the axis the line runs along. Panics if the line is
// not orthogonal — callers must validate first.
func (l Line) Orientation() LineOrientation {
	if l.P0.X == l.P1.X {
		return LineVertical
	}
	if l.P0.Y == l.P1.Y {
		return LineHorizontal
	}
	panic("unreachable: non-orthogonal line has no single orientation")
}

// Length returns the Manhattan length of the line (always >= 0 once
// orthogonal).
func (l Line) Length() int {
	dx := int(l.P1.X) - int(l.P0.X)
	dy := int(l.P1.Y) - int(l.P0.Y)
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// OrderedLine is an orthogonal Line with P0 < P1 lexicographically. It is
// the canonical on-disk representation of a segment's geometry.
type OrderedLine struct {
	p0, p1 Point
}

// NewOrderedLine builds an OrderedLine from two points, reordering them if
// necessary. Returns an error if the points are equal or do not form an
// orthogonal line.
func NewOrderedLine(a, b Point) (OrderedLine, error) {
	l := Line{P0: a, P1: b}
	if !l.IsOrthogonal() {
		return OrderedLine{}, fmt.Errorf("%w: line %v is not a non-degenerate orthogonal segment", errInvalidArgument, l)
	}
	if b.Less(a) {
		a, b = b, a
	}
	return OrderedLine{p0: a, p1: b}, nil
}

// MustNewOrderedLine is NewOrderedLine but panics on error; reserved for
// tests and literal constants where the input is known valid.
func MustNewOrderedLine(a, b Point) OrderedLine {
	l, err := NewOrderedLine(a, b)
	if err != nil {
		panic(err)
	}
	return l
}

func (l OrderedLine) P0() Point { return l.p0 }
func (l OrderedLine) P1() Point { return l.p1 }

func (l OrderedLine) Line() Line { return Line{P0: l.p0, P1: l.p1} }

func (l OrderedLine) Orientation() LineOrientation { return l.Line().Orientation() }

func (l OrderedLine) Length() int { return l.Line().Length() }

// Less orders two OrderedLines lexicographically by (P0, P1), used by
// SegmentTree.Normalize to produce a canonical ordering.
func (l OrderedLine) Less(o OrderedLine) bool {
	if l.p0 != o.p0 {
		return l.p0.Less(o.p0)
	}
	return l.p1.Less(o.p1)
}

func (l OrderedLine) String() string {
	return fmt.Sprintf("%v->%v", l.p0, l.p1)
}

// PointAtOffset returns the grid point at the given offset from p0, along
// this line. The caller must ensure 0 <= offset <= Length().
func (l OrderedLine) PointAtOffset(offset int) Point {
	switch l.Orientation() {
	case LineHorizontal:
		return Point{X: l.p0.X + Grid(offset), Y: l.p0.Y}
	default:
		return Point{X: l.p0.X, Y: l.p0.Y + Grid(offset)}
	}
}

// GridPoints returns every integer grid point the line covers, from p0 to
// p1 inclusive. Used wherever a segment's full occupancy — not just its
// two endpoints — must be rasterized, e.g. collision checks against an
// obstacle strictly inside the segment's run.
func (l OrderedLine) GridPoints() []Point {
	n := l.Length()
	out := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		out[i] = l.PointAtOffset(i)
	}
	return out
}

// OffsetAlong is the inverse of PointAtOffset: the offset of p from l's P0,
// measured along l's own axis. Callers must ensure p lies on that axis —
// this is used to remap a point from one line's frame into another's after
// two collinear lines merge.
func (l OrderedLine) OffsetAlong(p Point) Offset {
	switch l.Orientation() {
	case LineHorizontal:
		return Offset(int(p.X) - int(l.p0.X))
	default:
		return Offset(int(p.Y) - int(l.p0.Y))
	}
}
