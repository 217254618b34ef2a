package layout

import (
	"fmt"
	"sort"

	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/vocabulary"
)

// SegmentTree is the ordered collection of segments belonging to one wire,
// plus a parallel list of PartSelections marking each segment's valid
// (displayed-as-valid) sub-parts.
type SegmentTree struct {
	segments []SegmentInfo
	valid    []PartSelection

	inputPosition *geometry.Point
	outputCount   vocabulary.ConnectionCount
}

// Indices returns every currently-allocated SegmentIndex, in storage order.
func (t *SegmentTree) Indices() []vocabulary.SegmentIndex {
	out := make([]vocabulary.SegmentIndex, len(t.segments))
	for i := range t.segments {
		out[i] = vocabulary.SegmentIndex(i)
	}
	return out
}

// Len returns the number of segments in the tree.
func (t *SegmentTree) Len() int { return len(t.segments) }

// Info returns the SegmentInfo at idx.
func (t *SegmentTree) Info(idx vocabulary.SegmentIndex) SegmentInfo {
	return t.segments[idx]
}

// Line returns the OrderedLine at idx.
func (t *SegmentTree) Line(idx vocabulary.SegmentIndex) geometry.OrderedLine {
	return t.segments[idx].Line
}

// Part returns the full Part spanning the segment at idx.
func (t *SegmentTree) Part(idx vocabulary.SegmentIndex) geometry.Part {
	return geometry.FullPart(t.segments[idx].Line)
}

// ValidParts returns the PartSelection of valid sub-parts at idx.
func (t *SegmentTree) ValidParts(idx vocabulary.SegmentIndex) *PartSelection {
	return &t.valid[idx]
}

// HasInput reports whether any segment in the tree has an input endpoint.
func (t *SegmentTree) HasInput() bool { return t.inputPosition != nil }

// InputPosition returns the tree's input endpoint, if any.
func (t *SegmentTree) InputPosition() (geometry.Point, bool) {
	if t.inputPosition == nil {
		return geometry.Point{}, false
	}
	return *t.inputPosition, true
}

// OutputCount returns the number of output endpoints in the tree.
func (t *SegmentTree) OutputCount() vocabulary.ConnectionCount { return t.outputCount }

func (t *SegmentTree) registerEndpoint(typ vocabulary.SegmentPointType, p geometry.Point) error {
	switch typ {
	case vocabulary.SegmentPointInput:
		if t.inputPosition != nil {
			return fmt.Errorf("%w: segment tree already has an input at %v", vocabulary.ErrStateViolation, *t.inputPosition)
		}
		pp := p
		t.inputPosition = &pp
	case vocabulary.SegmentPointOutput:
		t.outputCount++
	}
	return nil
}

func (t *SegmentTree) unregisterEndpoint(typ vocabulary.SegmentPointType, p geometry.Point) {
	switch typ {
	case vocabulary.SegmentPointInput:
		t.inputPosition = nil
	case vocabulary.SegmentPointOutput:
		t.outputCount--
	}
}

// AddSegment appends info as a new segment and returns its index.
// Registers its endpoints (input position / output count); fails if info
// would add a second input to the tree.
func (t *SegmentTree) AddSegment(info SegmentInfo) (vocabulary.SegmentIndex, error) {
	if err := t.registerEndpoint(info.P0Type, info.Line.P0()); err != nil {
		return 0, err
	}
	if err := t.registerEndpoint(info.P1Type, info.Line.P1()); err != nil {
		t.unregisterEndpoint(info.P0Type, info.Line.P0())
		return 0, err
	}

	t.segments = append(t.segments, info)
	t.valid = append(t.valid, PartSelection{})
	return vocabulary.SegmentIndex(len(t.segments) - 1), nil
}

// UpdateSegment replaces the SegmentInfo at idx. The new line must have the
// same length as the old one, so existing valid parts (offsets) remain
// meaningful; endpoints are unregistered and re-registered.
func (t *SegmentTree) UpdateSegment(idx vocabulary.SegmentIndex, info SegmentInfo) error {
	old := t.segments[idx]
	if old.Line.Length() != info.Line.Length() {
		return fmt.Errorf("%w: update_segment must preserve line length (%d != %d)",
			vocabulary.ErrInvalidArgument, old.Line.Length(), info.Line.Length())
	}

	t.unregisterEndpoint(old.P0Type, old.Line.P0())
	t.unregisterEndpoint(old.P1Type, old.Line.P1())

	if err := t.registerEndpoint(info.P0Type, info.Line.P0()); err != nil {
		// roll back
		_ = t.registerEndpoint(old.P0Type, old.Line.P0())
		_ = t.registerEndpoint(old.P1Type, old.Line.P1())
		return err
	}
	if err := t.registerEndpoint(info.P1Type, info.Line.P1()); err != nil {
		t.unregisterEndpoint(info.P0Type, info.Line.P0())
		_ = t.registerEndpoint(old.P0Type, old.Line.P0())
		_ = t.registerEndpoint(old.P1Type, old.Line.P1())
		return err
	}

	t.segments[idx] = info
	return nil
}

// ShrinkSegment rewrites the line at idx to the sub-range newPart (which
// must be inside the segment's current full part) and remaps the valid
// parts accordingly.
func (t *SegmentTree) ShrinkSegment(idx vocabulary.SegmentIndex, newPart geometry.Part) error {
	full := t.Part(idx)
	if newPart.Begin() < full.Begin() || newPart.End() > full.End() {
		return fmt.Errorf("%w: shrink_segment target %v is not inside current part %v",
			vocabulary.ErrInvalidArgument, newPart, full)
	}

	old := t.segments[idx]
	newLine := newPart.ToLine(old.Line)

	p0Type := vocabulary.SegmentPointShadow
	if newPart.Begin() == full.Begin() {
		p0Type = old.P0Type
	}
	p1Type := vocabulary.SegmentPointShadow
	if newPart.End() == full.End() {
		p1Type = old.P1Type
	}

	t.unregisterEndpoint(old.P0Type, old.Line.P0())
	t.unregisterEndpoint(old.P1Type, old.Line.P1())

	newInfo := SegmentInfo{Line: newLine, P0Type: p0Type, P1Type: p1Type}
	if err := t.registerEndpoint(newInfo.P0Type, newInfo.Line.P0()); err != nil {
		return err
	}
	if err := t.registerEndpoint(newInfo.P1Type, newInfo.Line.P1()); err != nil {
		t.unregisterEndpoint(newInfo.P0Type, newInfo.Line.P0())
		return err
	}

	var remapped PartSelection
	remapDef := CopyDef{Source: newPart, Destination: geometry.MustNewPart(0, newPart.Length())}
	if err := CopyParts(&remapped, &t.valid[idx], remapDef); err != nil {
		return err
	}

	t.segments[idx] = newInfo
	t.valid[idx] = remapped
	return nil
}

// CopySegment appends a copy of src's segment at srcIdx (optionally
// restricted to a sub-part) into t, remapping its valid parts. Returns the
// new index in t.
func (t *SegmentTree) CopySegment(src *SegmentTree, srcIdx vocabulary.SegmentIndex, part *geometry.Part) (vocabulary.SegmentIndex, error) {
	info := src.segments[srcIdx]
	srcFull := src.Part(srcIdx)

	p := srcFull
	if part != nil {
		p = *part
	}

	line := p.ToLine(info.Line)
	p0Type := vocabulary.SegmentPointShadow
	if p.Begin() == srcFull.Begin() {
		p0Type = info.P0Type
	}
	p1Type := vocabulary.SegmentPointShadow
	if p.End() == srcFull.End() {
		p1Type = info.P1Type
	}

	newIdx, err := t.AddSegment(SegmentInfo{Line: line, P0Type: p0Type, P1Type: p1Type})
	if err != nil {
		return 0, err
	}

	def := CopyDef{Source: p, Destination: geometry.MustNewPart(0, p.Length())}
	if err := CopyParts(&t.valid[newIdx], &src.valid[srcIdx], def); err != nil {
		return 0, err
	}
	return newIdx, nil
}

// SwapAndMergeSegment merges the segment at deleted into mergeTo (the two
// lines must be collinear and share an endpoint), producing a single
// segment spanning both, with valid parts the union of each mapped into
// the merged frame. mergeTo keeps its index afterwards.
func (t *SegmentTree) SwapAndMergeSegment(mergeTo, deleted vocabulary.SegmentIndex) error {
	a := t.segments[mergeTo]
	b := t.segments[deleted]

	if a.Line.Orientation() != b.Line.Orientation() {
		return fmt.Errorf("%w: cannot merge segments of different orientation", vocabulary.ErrStateViolation)
	}

	shared, ok := sharedEndpoint(a.Line, b.Line)
	if !ok {
		return fmt.Errorf("%w: segments %v and %v do not share an endpoint", vocabulary.ErrStateViolation, a.Line, b.Line)
	}

	far := func(l geometry.OrderedLine) geometry.Point {
		if l.P0() == shared {
			return l.P1()
		}
		return l.P0()
	}
	aFar, bFar := far(a.Line), far(b.Line)
	merged, err := geometry.NewOrderedLine(aFar, bFar)
	if err != nil {
		return fmt.Errorf("%w: merged segment is not a single orthogonal line", vocabulary.ErrStateViolation)
	}

	aEndType, _ := a.TypeAt(aFar)
	bEndType, _ := b.TypeAt(bFar)

	var p0Type, p1Type vocabulary.SegmentPointType
	if merged.P0() == aFar {
		p0Type, p1Type = aEndType, bEndType
	} else {
		p0Type, p1Type = bEndType, aEndType
	}

	// offset of a's far endpoint within the merged line, and a's shared
	// endpoint's offset (0 or len(a)); used to remap valid parts.
	aFarOffsetInMerged := offsetOf(merged, aFar)
	aSharedOffsetInMerged := offsetOf(merged, shared)
	bFarOffsetInMerged := offsetOf(merged, bFar)

	var newValid PartSelection
	// map a's own [0,len(a)) frame onto merged: a's offsets run from the
	// shared point to aFar.
	aSrcFull := geometry.FullPart(a.Line)
	aDestBegin, aDestEnd := aSharedOffsetInMerged, aFarOffsetInMerged
	if aDestBegin > aDestEnd {
		aDestBegin, aDestEnd = aDestEnd, aDestBegin
	}
	if err := CopyParts(&newValid, &t.valid[mergeTo], CopyDef{
		Source:      aSrcFull,
		Destination: geometry.MustNewPart(aDestBegin, aDestEnd),
	}); err != nil {
		return err
	}

	bSrcFull := geometry.FullPart(b.Line)
	bSharedOffsetInMerged := offsetOf(merged, shared)
	bDestBegin, bDestEnd := bSharedOffsetInMerged, bFarOffsetInMerged
	if bDestBegin > bDestEnd {
		bDestBegin, bDestEnd = bDestEnd, bDestBegin
	}
	if err := CopyParts(&newValid, &t.valid[deleted], CopyDef{
		Source:      bSrcFull,
		Destination: geometry.MustNewPart(bDestBegin, bDestEnd),
	}); err != nil {
		return err
	}

	t.unregisterEndpoint(a.P0Type, a.Line.P0())
	t.unregisterEndpoint(a.P1Type, a.Line.P1())
	t.unregisterEndpoint(b.P0Type, b.Line.P0())
	t.unregisterEndpoint(b.P1Type, b.Line.P1())

	newInfo := SegmentInfo{Line: merged, P0Type: p0Type, P1Type: p1Type}
	if err := t.registerEndpoint(newInfo.P0Type, newInfo.Line.P0()); err != nil {
		return err
	}
	if err := t.registerEndpoint(newInfo.P1Type, newInfo.Line.P1()); err != nil {
		t.unregisterEndpoint(newInfo.P0Type, newInfo.Line.P0())
		return err
	}

	t.segments[mergeTo] = newInfo
	t.valid[mergeTo] = newValid

	// b's endpoints were unregistered above; keep SwapAndDeleteSegment
	// from unregistering them a second time.
	t.segments[deleted].P0Type = vocabulary.SegmentPointShadow
	t.segments[deleted].P1Type = vocabulary.SegmentPointShadow
	t.SwapAndDeleteSegment(deleted)
	return nil
}

// sharedEndpoint returns the point shared by two collinear, touching
// lines, if any.
func sharedEndpoint(a, b geometry.OrderedLine) (geometry.Point, bool) {
	switch {
	case a.P0() == b.P0() || a.P0() == b.P1():
		return a.P0(), true
	case a.P1() == b.P0() || a.P1() == b.P1():
		return a.P1(), true
	default:
		return geometry.Point{}, false
	}
}

// offsetOf returns the offset of p along line. Panics if p does not lie on
// line's axis — callers must validate collinearity first.
func offsetOf(line geometry.OrderedLine, p geometry.Point) geometry.Offset {
	switch line.Orientation() {
	case geometry.LineHorizontal:
		return geometry.Offset(int(p.X) - int(line.P0().X))
	default:
		return geometry.Offset(int(p.Y) - int(line.P0().Y))
	}
}

// SwapAndDeleteSegment removes the segment at idx by moving the tree's last
// slot into idx and popping, unregistering idx's endpoints first. Returns
// the index that was relocated into idx, if any (when idx was not already
// the last slot).
func (t *SegmentTree) SwapAndDeleteSegment(idx vocabulary.SegmentIndex) (relocated *vocabulary.SegmentIndex) {
	info := t.segments[idx]
	t.unregisterEndpoint(info.P0Type, info.Line.P0())
	t.unregisterEndpoint(info.P1Type, info.Line.P1())

	last := vocabulary.SegmentIndex(len(t.segments) - 1)
	if idx != last {
		t.segments[idx] = t.segments[last]
		t.valid[idx] = t.valid[last]
		relocated = &last
	}

	t.segments = t.segments[:last]
	t.valid = t.valid[:last]
	return relocated
}

// MarkValid adds part to the valid selection at idx.
func (t *SegmentTree) MarkValid(idx vocabulary.SegmentIndex, part geometry.Part) error {
	return t.valid[idx].AddPart(part)
}

// UnmarkValid removes part from the valid selection at idx.
func (t *SegmentTree) UnmarkValid(idx vocabulary.SegmentIndex, part geometry.Part) error {
	return t.valid[idx].RemovePart(part)
}

// Normalize sorts segments (with their valid parts) lexicographically by
// line. Endpoint types stay with their segment; they are not
// re-canonicalised at coincident points.
func (t *SegmentTree) Normalize() {
	type pair struct {
		info  SegmentInfo
		valid PartSelection
	}
	pairs := make([]pair, len(t.segments))
	for i := range t.segments {
		pairs[i] = pair{info: t.segments[i], valid: t.valid[i]}
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].info.Line.Less(pairs[j].info.Line)
	})
	for i, p := range pairs {
		t.segments[i] = p.info
		t.valid[i] = p.valid
	}
}

// CalculateNormalLines returns, for each segment, the lines covering the
// complement of its valid parts — i.e. the "normal" (not-yet-valid)
// sub-ranges, as spec.md §4.2 describes.
func (t *SegmentTree) CalculateNormalLines() ([]geometry.OrderedLine, error) {
	var out []geometry.OrderedLine
	for idx := range t.segments {
		full := t.Part(vocabulary.SegmentIndex(idx))
		inv, err := t.valid[idx].InvertedSelection(full)
		if err != nil {
			return nil, err
		}
		for _, p := range inv.Parts() {
			out = append(out, p.ToLine(t.segments[idx].Line))
		}
	}
	return out, nil
}

// CalculateBoundingRect returns the smallest Rect containing every segment
// in the tree, and false if the tree is empty.
func (t *SegmentTree) CalculateBoundingRect() (geometry.Rect, bool) {
	if len(t.segments) == 0 {
		return geometry.Rect{}, false
	}
	rect := geometry.BoundingRectOfLine(t.segments[0].Line)
	for _, info := range t.segments[1:] {
		rect = rect.Union(geometry.BoundingRectOfLine(info.Line))
	}
	return rect, true
}

// CalculateConnectedSegmentsMask runs a depth-first search over the
// adjacency graph of segments (two segments are adjacent iff they share an
// endpoint), starting from whichever segment touches p0, and reports which
// segment indices are reachable. Returns an error if the tree contains a
// loop (the adjacency graph is not a tree).
func (t *SegmentTree) CalculateConnectedSegmentsMask(p0 geometry.Point) ([]bool, error) {
	reached := make([]bool, len(t.segments))
	visitedEdge := make([]bool, len(t.segments))

	adjacency := t.pointAdjacency()

	start, ok := findSegmentAt(t, p0)
	if !ok {
		return reached, nil
	}

	var dfs func(idx vocabulary.SegmentIndex, cameFrom geometry.Point) error
	dfs = func(idx vocabulary.SegmentIndex, cameFrom geometry.Point) error {
		if visitedEdge[idx] {
			return fmt.Errorf("%w: segment tree contains a loop at %v", vocabulary.ErrStateViolation, t.segments[idx].Line)
		}
		visitedEdge[idx] = true
		reached[idx] = true

		info := t.segments[idx]
		for _, end := range []geometry.Point{info.Line.P0(), info.Line.P1()} {
			if end == cameFrom {
				continue
			}
			for _, neighbor := range adjacency[end] {
				if neighbor == idx {
					continue
				}
				if reached[neighbor] {
					return fmt.Errorf("%w: segment tree contains a loop at %v", vocabulary.ErrStateViolation, t.segments[neighbor].Line)
				}
				if err := dfs(neighbor, end); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if err := dfs(start, geometry.Point{X: geometry.GridMin, Y: geometry.GridMin}); err != nil {
		return nil, err
	}
	return reached, nil
}

func (t *SegmentTree) pointAdjacency() map[geometry.Point][]vocabulary.SegmentIndex {
	m := make(map[geometry.Point][]vocabulary.SegmentIndex)
	for i, info := range t.segments {
		idx := vocabulary.SegmentIndex(i)
		m[info.Line.P0()] = append(m[info.Line.P0()], idx)
		m[info.Line.P1()] = append(m[info.Line.P1()], idx)
	}
	return m
}

func findSegmentAt(t *SegmentTree, p geometry.Point) (vocabulary.SegmentIndex, bool) {
	for i, info := range t.segments {
		if info.Line.P0() == p || info.Line.P1() == p {
			return vocabulary.SegmentIndex(i), true
		}
	}
	return 0, false
}

// CheckInvariants verifies every SegmentTree invariant from spec.md §8:
// |segments| == |valid|, every valid[i] inside [0, len(segments[i])), at
// most one input, and output_count matching the number of output
// endpoints.
func (t *SegmentTree) CheckInvariants() error {
	if len(t.segments) != len(t.valid) {
		return fmt.Errorf("%w: len(segments)=%d != len(valid)=%d", vocabulary.ErrStateViolation, len(t.segments), len(t.valid))
	}

	inputs := 0
	outputs := vocabulary.ConnectionCount(0)
	for i, info := range t.segments {
		full := geometry.FullPart(info.Line)
		for _, p := range t.valid[i].Parts() {
			if p.End() > full.End() {
				return fmt.Errorf("%w: valid part %v exceeds segment length %d", vocabulary.ErrStateViolation, p, full.End())
			}
		}
		if err := t.valid[i].CheckInvariants(); err != nil {
			return err
		}
		if info.P0Type == vocabulary.SegmentPointInput {
			inputs++
		}
		if info.P1Type == vocabulary.SegmentPointInput {
			inputs++
		}
		if info.P0Type == vocabulary.SegmentPointOutput {
			outputs++
		}
		if info.P1Type == vocabulary.SegmentPointOutput {
			outputs++
		}
	}
	if inputs > 1 {
		return fmt.Errorf("%w: segment tree has %d inputs, want at most 1", vocabulary.ErrStateViolation, inputs)
	}
	if outputs != t.outputCount {
		return fmt.Errorf("%w: cached output count %d != actual %d", vocabulary.ErrStateViolation, t.outputCount, outputs)
	}
	return nil
}

// IsContiguousTree reports whether this tree's segments form a single
// connected, acyclic graph — the requirement for every inserted wire
// (spec.md §3). An empty tree is trivially contiguous.
func (t *SegmentTree) IsContiguousTree() bool {
	if len(t.segments) == 0 {
		return true
	}
	start := t.segments[0].Line.P0()
	mask, err := t.CalculateConnectedSegmentsMask(start)
	if err != nil {
		return false
	}
	for _, reached := range mask {
		if !reached {
			return false
		}
	}
	return true
}
