package geometry

import "fmt"

// Offset is a non-negative length along an OrderedLine, measured from P0.
type Offset int

// Part is a half-open interval [Begin, End) of offsets along a line.
type Part struct {
	begin, end Offset
}

// NewPart builds a Part, validating begin < end.
func NewPart(begin, end Offset) (Part, error) {
	if begin >= end {
		return Part{}, fmt.Errorf("%w: part begin %d must be < end %d", errInvalidArgument, begin, end)
	}
	return Part{begin: begin, end: end}, nil
}

// MustNewPart is NewPart but panics on error; reserved for tests and
// literal constants where the input is known valid.
func MustNewPart(begin, end Offset) Part {
	p, err := NewPart(begin, end)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Part) Begin() Offset { return p.begin }
func (p Part) End() Offset   { return p.end }

func (p Part) Length() Offset { return p.end - p.begin }

func (p Part) String() string {
	return fmt.Sprintf("[%d, %d)", p.begin, p.end)
}

// ToLine converts a Part of an OrderedLine back into the OrderedLine
// spanning exactly that sub-range.
func (p Part) ToLine(line OrderedLine) OrderedLine {
	a := line.PointAtOffset(int(p.begin))
	b := line.PointAtOffset(int(p.end))
	return MustNewOrderedLine(a, b)
}

// FullPart returns the Part spanning an entire OrderedLine.
func FullPart(line OrderedLine) Part {
	return Part{begin: 0, end: Offset(line.Length())}
}

// PartRelation classifies how two parts relate to each other, per spec.md
// §3's closed part algebra.
type PartRelation int

const (
	RelationDisjoint PartRelation = iota
	RelationEqual
	RelationAInsideB
	RelationAInsideBTouching
	RelationBInsideA
	RelationBInsideATouching
	RelationOverlapBegin // a extends before b, they overlap at b's begin
	RelationOverlapEnd   // a extends after b, they overlap at b's end
)

// Relate classifies the relation of a to b.
func Relate(a, b Part) PartRelation {
	switch {
	case a == b:
		return RelationEqual
	case a.end <= b.begin || b.end <= a.begin:
		return RelationDisjoint
	case a.begin >= b.begin && a.end <= b.end:
		if a.begin == b.begin || a.end == b.end {
			return RelationAInsideBTouching
		}
		return RelationAInsideB
	case b.begin >= a.begin && b.end <= a.end:
		if b.begin == a.begin || b.end == a.end {
			return RelationBInsideATouching
		}
		return RelationBInsideA
	case a.begin < b.begin && a.end < b.end:
		return RelationOverlapBegin
	default:
		return RelationOverlapEnd
	}
}

// Intersect returns the overlap of a and b, and whether one exists.
func Intersect(a, b Part) (Part, bool) {
	begin := a.begin
	if b.begin > begin {
		begin = b.begin
	}
	end := a.end
	if b.end < end {
		end = b.end
	}
	if begin >= end {
		return Part{}, false
	}
	return Part{begin: begin, end: end}, true
}

// Touches reports whether a and b are disjoint but share a boundary (the
// end of one equals the begin of the other) — the condition PartSelection
// must never allow between two stored parts.
func Touches(a, b Part) bool {
	return a.end == b.begin || b.end == a.begin
}

// Shift returns p translated by delta. May produce a Part with negative
// offsets; callers are expected to validate against a bounding Part
// afterwards.
func (p Part) Shift(delta Offset) Part {
	return Part{begin: p.begin + delta, end: p.end + delta}
}

// Difference subtracts r from p, returning zero, one, or two remaining
// parts (per the case table in spec.md §4.1: disjoint keeps p whole,
// strictly-inside splits p in two, equal/containing drops p entirely,
// overlap-begin/end shrinks one side).
func Difference(p, r Part) []Part {
	overlap, ok := Intersect(p, r)
	if !ok {
		return []Part{p}
	}
	if overlap.begin <= p.begin && overlap.end >= p.end {
		return nil
	}

	var out []Part
	if p.begin < overlap.begin {
		out = append(out, Part{begin: p.begin, end: overlap.begin})
	}
	if overlap.end < p.end {
		out = append(out, Part{begin: overlap.end, end: p.end})
	}
	return out
}
