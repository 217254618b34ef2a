// Package circuitinfo provides the pure data tables describing the legal
// connector layout of every ElementType — spec.md §6.4's
// LayoutInfo::for(ElementType) collaborator. It plays the role the
// teacher's config/confignew packages play: a small registration table,
// not a simulation component.
package circuitinfo

import (
	"fmt"

	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/vocabulary"
)

// SizeKind distinguishes logic items whose footprint is fixed from ones
// whose footprint grows with their connector count (e.g. a sub-circuit).
type SizeKind int

const (
	FixedSize SizeKind = iota
	VariableSize
)

// ConnectorPosition is one connector's offset from the item's origin, in
// the item's own (unrotated) frame, together with the orientation it faces.
type ConnectorPosition struct {
	Offset      geometry.Point
	Orientation vocabulary.Orientation
}

// LayoutInfo describes the legal connector shape of one ElementType.
type LayoutInfo struct {
	InputCountRange  vocabulary.ConnectionCountRange
	OutputCountRange vocabulary.ConnectionCountRange
	SizeKind         SizeKind
	FixedSize        geometry.Rect
	InputPositions   []ConnectorPosition
	OutputPositions  []ConnectorPosition
}

var registry = map[vocabulary.ElementType]LayoutInfo{
	vocabulary.ElementAndGate:  twoInputGate(),
	vocabulary.ElementOrGate:   twoInputGate(),
	vocabulary.ElementXorGate:  twoInputGate(),
	vocabulary.ElementNotGate:  oneInputGate(),
	vocabulary.ElementBufferGate: oneInputGate(),
	vocabulary.ElementFlipFlopD: LayoutInfo{
		InputCountRange:  vocabulary.ConnectionCountRange{Min: 2, Max: 2},
		OutputCountRange: vocabulary.ConnectionCountRange{Min: 1, Max: 1},
		SizeKind:         FixedSize,
		FixedSize:        geometry.NewRect(geometry.Point{}, geometry.Point{X: 2, Y: 2}),
		InputPositions: []ConnectorPosition{
			{Offset: geometry.Point{X: 0, Y: 0}, Orientation: vocabulary.OrientationLeft},
			{Offset: geometry.Point{X: 0, Y: 2}, Orientation: vocabulary.OrientationLeft},
		},
		OutputPositions: []ConnectorPosition{
			{Offset: geometry.Point{X: 2, Y: 0}, Orientation: vocabulary.OrientationRight},
		},
	},
	vocabulary.ElementFlipFlopJK: LayoutInfo{
		InputCountRange:  vocabulary.ConnectionCountRange{Min: 3, Max: 3},
		OutputCountRange: vocabulary.ConnectionCountRange{Min: 2, Max: 2},
		SizeKind:         FixedSize,
		FixedSize:        geometry.NewRect(geometry.Point{}, geometry.Point{X: 2, Y: 3}),
		InputPositions: []ConnectorPosition{
			{Offset: geometry.Point{X: 0, Y: 0}, Orientation: vocabulary.OrientationLeft},
			{Offset: geometry.Point{X: 0, Y: 1}, Orientation: vocabulary.OrientationLeft},
			{Offset: geometry.Point{X: 0, Y: 3}, Orientation: vocabulary.OrientationLeft},
		},
		OutputPositions: []ConnectorPosition{
			{Offset: geometry.Point{X: 2, Y: 0}, Orientation: vocabulary.OrientationRight},
			{Offset: geometry.Point{X: 2, Y: 3}, Orientation: vocabulary.OrientationRight},
		},
	},
	vocabulary.ElementLED: LayoutInfo{
		InputCountRange:  vocabulary.ConnectionCountRange{Min: 1, Max: 1},
		OutputCountRange: vocabulary.ConnectionCountRange{Min: 0, Max: 0},
		SizeKind:         FixedSize,
		FixedSize:        geometry.NewRect(geometry.Point{}, geometry.Point{X: 1, Y: 1}),
		InputPositions: []ConnectorPosition{
			{Offset: geometry.Point{X: 0, Y: 0}, Orientation: vocabulary.OrientationLeft},
		},
	},
	vocabulary.ElementButton: LayoutInfo{
		InputCountRange:  vocabulary.ConnectionCountRange{Min: 0, Max: 0},
		OutputCountRange: vocabulary.ConnectionCountRange{Min: 1, Max: 1},
		SizeKind:         FixedSize,
		FixedSize:        geometry.NewRect(geometry.Point{}, geometry.Point{X: 1, Y: 1}),
		OutputPositions: []ConnectorPosition{
			{Offset: geometry.Point{X: 1, Y: 0}, Orientation: vocabulary.OrientationRight},
		},
	},
	vocabulary.ElementClockGenerator: LayoutInfo{
		InputCountRange:  vocabulary.ConnectionCountRange{Min: 0, Max: 0},
		OutputCountRange: vocabulary.ConnectionCountRange{Min: 1, Max: 1},
		SizeKind:         FixedSize,
		FixedSize:        geometry.NewRect(geometry.Point{}, geometry.Point{X: 2, Y: 2}),
		OutputPositions: []ConnectorPosition{
			{Offset: geometry.Point{X: 2, Y: 1}, Orientation: vocabulary.OrientationRight},
		},
	},
	vocabulary.ElementSubCircuit: LayoutInfo{
		InputCountRange:  vocabulary.ConnectionCountRange{Min: 0, Max: 128},
		OutputCountRange: vocabulary.ConnectionCountRange{Min: 0, Max: 128},
		SizeKind:         VariableSize,
	},
}

func twoInputGate() LayoutInfo {
	return LayoutInfo{
		InputCountRange:  vocabulary.ConnectionCountRange{Min: 2, Max: 2},
		OutputCountRange: vocabulary.ConnectionCountRange{Min: 1, Max: 1},
		SizeKind:         FixedSize,
		FixedSize:        geometry.NewRect(geometry.Point{}, geometry.Point{X: 2, Y: 2}),
		InputPositions: []ConnectorPosition{
			{Offset: geometry.Point{X: 0, Y: 0}, Orientation: vocabulary.OrientationLeft},
			{Offset: geometry.Point{X: 0, Y: 2}, Orientation: vocabulary.OrientationLeft},
		},
		OutputPositions: []ConnectorPosition{
			{Offset: geometry.Point{X: 2, Y: 1}, Orientation: vocabulary.OrientationRight},
		},
	}
}

func oneInputGate() LayoutInfo {
	return LayoutInfo{
		InputCountRange:  vocabulary.ConnectionCountRange{Min: 1, Max: 1},
		OutputCountRange: vocabulary.ConnectionCountRange{Min: 1, Max: 1},
		SizeKind:         FixedSize,
		FixedSize:        geometry.NewRect(geometry.Point{}, geometry.Point{X: 2, Y: 1}),
		InputPositions: []ConnectorPosition{
			{Offset: geometry.Point{X: 0, Y: 0}, Orientation: vocabulary.OrientationLeft},
		},
		OutputPositions: []ConnectorPosition{
			{Offset: geometry.Point{X: 2, Y: 0}, Orientation: vocabulary.OrientationRight},
		},
	}
}

// For returns the LayoutInfo registered for t. Panics if t is unregistered
// — an unregistered ElementType reaching this call is a programmer error
// (an enum-exhaustiveness violation), matching spec.md §7's
// terminate-on-unreachable rule for enum cases.
func For(t vocabulary.ElementType) LayoutInfo {
	info, ok := registry[t]
	if !ok {
		panic(fmt.Sprintf("unreachable: no LayoutInfo registered for %v", t))
	}
	return info
}

// Register adds or replaces the LayoutInfo for t, so callers embedding
// sub-circuits or custom element types can extend the table without
// modifying this package.
func Register(t vocabulary.ElementType, info LayoutInfo) {
	registry[t] = info
}

// transform rotates/translates a connector position into world space for a
// logic item placed at pos with the given orientation. Only axis-aligned
// quarter turns are supported, matching spec.md's orthogonal-only
// Non-goal.
func transform(pos geometry.Point, orientation vocabulary.Orientation, c ConnectorPosition) (geometry.Point, vocabulary.Orientation) {
	ox, oy := int(c.Offset.X), int(c.Offset.Y)
	var wx, wy int
	var facing vocabulary.Orientation

	switch orientation {
	case vocabulary.OrientationRight, vocabulary.OrientationUndirected:
		wx, wy = ox, oy
		facing = c.Orientation
	case vocabulary.OrientationLeft:
		wx, wy = -ox, oy
		facing = c.Orientation.Opposite()
	case vocabulary.OrientationUp:
		wx, wy = oy, -ox
		facing = rotateCCW(c.Orientation)
	case vocabulary.OrientationDown:
		wx, wy = -oy, ox
		facing = rotateCCW(rotateCCW(rotateCCW(c.Orientation)))
	}

	return geometry.Point{X: pos.X + geometry.Grid(wx), Y: pos.Y + geometry.Grid(wy)}, facing
}

func rotateCCW(o vocabulary.Orientation) vocabulary.Orientation {
	switch o {
	case vocabulary.OrientationRight:
		return vocabulary.OrientationUp
	case vocabulary.OrientationUp:
		return vocabulary.OrientationLeft
	case vocabulary.OrientationLeft:
		return vocabulary.OrientationDown
	case vocabulary.OrientationDown:
		return vocabulary.OrientationRight
	default:
		return o
	}
}

// IterInputLocations invokes fn once per input connector of an item of
// type t placed at pos with the given orientation, in its transformed
// world-space grid point and facing orientation.
func IterInputLocations(t vocabulary.ElementType, pos geometry.Point, orientation vocabulary.Orientation, fn func(index int, p geometry.Point, facing vocabulary.Orientation)) {
	info := For(t)
	for i, c := range info.InputPositions {
		p, facing := transform(pos, orientation, c)
		fn(i, p, facing)
	}
}

// IterOutputLocations invokes fn once per output connector of an item of
// type t placed at pos with the given orientation.
func IterOutputLocations(t vocabulary.ElementType, pos geometry.Point, orientation vocabulary.Orientation, fn func(index int, p geometry.Point, facing vocabulary.Orientation)) {
	info := For(t)
	for i, c := range info.OutputPositions {
		p, facing := transform(pos, orientation, c)
		fn(i, p, facing)
	}
}

// WorldBoundingRect returns the world-space bounding rect of an item of
// type t placed at pos with the given orientation. For VariableSize
// (sub-circuit) types, size gives the unrotated body rect, supplied by the
// caller, since sub-circuit footprint is not fixed in LayoutInfo; for other
// types size is ignored.
func WorldBoundingRect(t vocabulary.ElementType, pos geometry.Point, orientation vocabulary.Orientation, size geometry.Rect) geometry.Rect {
	info := For(t)
	base := info.FixedSize
	if info.SizeKind == VariableSize {
		base = size
	}

	corners := [2]geometry.Point{base.P0, base.P1}
	var transformed [2]geometry.Point
	for i, corner := range corners {
		p, _ := transform(pos, orientation, ConnectorPosition{Offset: corner})
		transformed[i] = p
	}
	return geometry.NewRect(transformed[0], transformed[1])
}
