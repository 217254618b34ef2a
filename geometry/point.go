// Package geometry implements the orthogonal-line predicates, part
// arithmetic, and rectangle tests the editable-circuit core relies on. All
// coordinates are integer grid positions; floating point only appears at
// the hit-testing boundary (see ToFinePoint).
package geometry

import "fmt"

// Grid is a signed grid coordinate. The source language used a 16-bit
// range; Go has no native int16-with-overflow-trap, so this module uses
// int32 and validates the 16-bit range explicitly wherever a value crosses
// an external boundary (e.g. hit testing).
type Grid int32

const (
	GridMin Grid = -32768
	GridMax Grid = 32767
)

// InRange reports whether g is within the representable 16-bit grid range.
func (g Grid) InRange() bool { return g >= GridMin && g <= GridMax }

// Point is a single grid position.
type Point struct {
	X, Y Grid
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Less orders points lexicographically by (X, Y).
func (p Point) Less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy Grid) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// FinePoint is a floating-point hit-testing coordinate. ToFinePoint converts
// a Point without widening it; the half-cell widening of bounding boxes is
// done by FineRect/ToFineRect (rect.go).
type FinePoint struct {
	X, Y float64
}

// ToFinePoint converts p to a FinePoint, the only place floating point
// enters this module (spec.md §1 Non-goals).
func ToFinePoint(p Point) FinePoint {
	return FinePoint{X: float64(p.X), Y: float64(p.Y)}
}
