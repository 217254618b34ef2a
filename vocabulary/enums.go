package vocabulary

import "fmt"

// ElementType enumerates the kinds of logic item the layout can hold. The
// concrete connector layout for each type lives in package circuitinfo, not
// here — this package only names the tag.
type ElementType int

const (
	ElementUnknown ElementType = iota
	ElementAndGate
	ElementOrGate
	ElementXorGate
	ElementNotGate
	ElementBufferGate
	ElementFlipFlopJK
	ElementFlipFlopD
	ElementLED
	ElementButton
	ElementClockGenerator
	ElementSubCircuit
)

func (e ElementType) String() string {
	switch e {
	case ElementAndGate:
		return "AndGate"
	case ElementOrGate:
		return "OrGate"
	case ElementXorGate:
		return "XorGate"
	case ElementNotGate:
		return "NotGate"
	case ElementBufferGate:
		return "BufferGate"
	case ElementFlipFlopJK:
		return "FlipFlopJK"
	case ElementFlipFlopD:
		return "FlipFlopD"
	case ElementLED:
		return "LED"
	case ElementButton:
		return "Button"
	case ElementClockGenerator:
		return "ClockGenerator"
	case ElementSubCircuit:
		return "SubCircuit"
	default:
		return fmt.Sprintf("ElementType(%d)", int(e))
	}
}

// DecorationType enumerates the kinds of non-logic decoration the layout can
// hold.
type DecorationType int

const (
	DecorationUnknown DecorationType = iota
	DecorationTextElement
)

// InsertionMode is the user-facing intent that drives a DisplayState
// transition (see ToDisplayState).
type InsertionMode int

const (
	InsertionModeTemporary InsertionMode = iota
	InsertionModeCollisions
	InsertionModeInsertOrDiscard
)

func (m InsertionMode) String() string {
	switch m {
	case InsertionModeTemporary:
		return "temporary"
	case InsertionModeCollisions:
		return "collisions"
	case InsertionModeInsertOrDiscard:
		return "insert_or_discard"
	default:
		panic(fmt.Sprintf("unreachable: InsertionMode(%d)", int(m)))
	}
}

// DisplayState is the rendered-facing state of a piece of geometry.
type DisplayState int

const (
	DisplayStateNormal DisplayState = iota
	DisplayStateValid
	DisplayStateColliding
	DisplayStateTemporary
)

// IsInserted reports whether a logic item or wire in this state counts as
// inserted (normal or valid).
func (d DisplayState) IsInserted() bool {
	return d == DisplayStateNormal || d == DisplayStateValid
}

func (d DisplayState) String() string {
	switch d {
	case DisplayStateNormal:
		return "normal"
	case DisplayStateValid:
		return "valid"
	case DisplayStateColliding:
		return "colliding"
	case DisplayStateTemporary:
		return "temporary"
	default:
		panic(fmt.Sprintf("unreachable: DisplayState(%d)", int(d)))
	}
}

// ToDisplayState maps an InsertionMode plus a collision verdict to the
// resulting DisplayState, per spec.md table in §3.
//
// insert_or_discard never returns colliding: a collision under that mode
// means the part is discarded by the caller, not placed in a colliding
// state.
func ToDisplayState(mode InsertionMode, collisionFree bool) DisplayState {
	switch mode {
	case InsertionModeTemporary:
		return DisplayStateTemporary
	case InsertionModeCollisions:
		if collisionFree {
			return DisplayStateValid
		}
		return DisplayStateColliding
	case InsertionModeInsertOrDiscard:
		return DisplayStateNormal
	default:
		panic(fmt.Sprintf("unreachable: InsertionMode(%d)", int(mode)))
	}
}

// Orientation is a cardinal direction used both for logic-item connector
// placement and for segment endpoint adjacency reasoning.
type Orientation int

const (
	OrientationUndirected Orientation = iota
	OrientationLeft
	OrientationRight
	OrientationUp
	OrientationDown
)

// Opposite returns the orientation facing the other way.
func (o Orientation) Opposite() Orientation {
	switch o {
	case OrientationLeft:
		return OrientationRight
	case OrientationRight:
		return OrientationLeft
	case OrientationUp:
		return OrientationDown
	case OrientationDown:
		return OrientationUp
	default:
		return OrientationUndirected
	}
}

// SegmentPointType classifies one endpoint of a segment, driving both
// rendering and invariant checks.
type SegmentPointType int

const (
	SegmentPointNewUnknown SegmentPointType = iota
	SegmentPointShadow
	SegmentPointCorner
	SegmentPointCross
	SegmentPointInput
	SegmentPointOutput
)

func (t SegmentPointType) String() string {
	switch t {
	case SegmentPointNewUnknown:
		return "new_unknown"
	case SegmentPointShadow:
		return "shadow_point"
	case SegmentPointCorner:
		return "corner_point"
	case SegmentPointCross:
		return "cross_point"
	case SegmentPointInput:
		return "input"
	case SegmentPointOutput:
		return "output"
	default:
		panic(fmt.Sprintf("unreachable: SegmentPointType(%d)", int(t)))
	}
}

// IsInput reports whether this endpoint type is an input connector.
func (t SegmentPointType) IsInput() bool { return t == SegmentPointInput }

// IsOutput reports whether this endpoint type is an output connector.
func (t SegmentPointType) IsOutput() bool { return t == SegmentPointOutput }

// Delay is a logic propagation delay, expressed in simulation time units.
// The core never interprets this value; it only carries it for the
// (out-of-scope) simulation engine to consume.
type Delay int64

// ConnectionCount is the number of connectors of one direction (input or
// output) on a logic item or wire, together with the legal range for that
// element type.
type ConnectionCount int

// ConnectionCountRange is an inclusive [Min, Max] legal range for a
// ConnectionCount, as reported by circuitinfo.LayoutInfo.
type ConnectionCountRange struct {
	Min ConnectionCount
	Max ConnectionCount
}

// Contains reports whether c falls within the range.
func (r ConnectionCountRange) Contains(c ConnectionCount) bool {
	return c >= r.Min && c <= r.Max
}
