package index

import (
	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/message"
)

// CacheState is what a grid point currently holds, used to decide whether a
// candidate insertion would collide (spec.md §4.4, §4.7.2).
type CacheState int

const (
	CacheStateEmpty CacheState = iota
	CacheStateElementBody
	CacheStateElementConnection
	CacheStateWireConnection
	CacheStateWireHorizontal
	CacheStateWireVertical
	CacheStateWireCornerPoint
	CacheStateWireCrossPoint
	CacheStateWireCrossing
	CacheStateElementWireConnection
)

// Collision is the point -> CacheState map every wire/logic-item insertion
// consults before committing. Only non-empty points are stored: a point
// whose state becomes CacheStateEmpty has its key deleted, and StateAt
// reads a map miss as CacheStateEmpty, so an untouched point and a
// cleared point are indistinguishable.
type Collision struct {
	state map[geometry.Point]CacheState
}

// NewCollision returns an empty Collision index.
func NewCollision() *Collision {
	return &Collision{state: make(map[geometry.Point]CacheState)}
}

// StateAt returns the CacheState at p (CacheStateEmpty if p has never been
// touched).
func (c *Collision) StateAt(p geometry.Point) CacheState {
	if s, ok := c.state[p]; ok {
		return s
	}
	return CacheStateEmpty
}

// Len returns the number of points with a non-default entry.
func (c *Collision) Len() int { return len(c.state) }

// AllocatedSize reports the index's memory footprint.
func (c *Collision) AllocatedSize() int { return len(c.state) * 24 }

func (c *Collision) set(p geometry.Point, s CacheState) {
	if s == CacheStateEmpty {
		delete(c.state, p)
		return
	}
	c.state[p] = s
}

// CanPlace reports whether candidate may legally occupy a point currently
// in state cur, per the collision rule table in spec.md §4.7.2.
func CanPlace(cur CacheState, candidate CacheState, orientationCompatible bool) (CacheState, bool) {
	if cur == CacheStateEmpty {
		return candidate, true
	}

	switch {
	case cur == CacheStateWireHorizontal && candidate == CacheStateWireVertical,
		cur == CacheStateWireVertical && candidate == CacheStateWireHorizontal:
		return CacheStateWireCrossing, true

	case (cur == CacheStateWireHorizontal || cur == CacheStateWireVertical) &&
		(candidate == CacheStateWireHorizontal || candidate == CacheStateWireVertical):
		if cur == candidate {
			// touching collinear segments at a shared endpoint: corner
			// only applies across orientations, so same-orientation
			// touching stays a plain wire line.
			return cur, true
		}
		return CacheStateWireCornerPoint, true

	case cur == CacheStateElementConnection && candidate == CacheStateWireConnection && orientationCompatible,
		cur == CacheStateWireConnection && candidate == CacheStateElementConnection && orientationCompatible:
		return CacheStateElementWireConnection, true

	case cur == CacheStateWireConnection && (candidate == CacheStateWireHorizontal || candidate == CacheStateWireVertical):
		return CacheStateWireConnection, true

	default:
		return cur, false
	}
}

// Apply records that an insertion placed candidate at p, given the current
// state, returning the resulting CacheState and whether it was
// collision-free.
func (c *Collision) Apply(p geometry.Point, candidate CacheState, orientationCompatible bool) (CacheState, bool) {
	cur := c.StateAt(p)
	next, ok := CanPlace(cur, candidate, orientationCompatible)
	if ok {
		c.set(p, next)
	}
	return next, ok
}

// Clear removes whatever state was recorded at p.
func (c *Collision) Clear(p geometry.Point) {
	delete(c.state, p)
}

// Submit implements message.Consumer. Only messages about *inserted*
// geometry affect the collision cache — temporary/colliding geometry never
// occupies it, since it has not committed to a grid point yet.
func (c *Collision) Submit(msg message.Info) {
	switch msg.Kind {
	case message.KindLogicItemInserted:
		c.applyLogicItemBody(msg.LogicItemData, true)
	case message.KindLogicItemUninserted:
		c.applyLogicItemBody(msg.LogicItemData, false)

	case message.KindSegmentInserted:
		c.applySegment(msg.SegmentInfo, true)
	case message.KindSegmentUninserted:
		c.applySegment(msg.SegmentInfo, false)
	case message.KindInsertedEndPointsUpdated:
		// Endpoint classification changed without the line itself moving;
		// the occupied points are unchanged, only their semantic meaning
		// is, so the collision cache (which only cares about geometry
		// shape) needs no update here.
	}
}

func (c *Collision) applyLogicItemBody(item layout.LogicItem, insert bool) {
	for x := item.BoundingRect.P0.X; x <= item.BoundingRect.P1.X; x++ {
		for y := item.BoundingRect.P0.Y; y <= item.BoundingRect.P1.Y; y++ {
			p := geometry.Point{X: x, Y: y}
			if insert {
				c.set(p, CacheStateElementBody)
			} else {
				c.Clear(p)
			}
		}
	}
}

func (c *Collision) applySegment(info layout.SegmentInfo, insert bool) {
	state := CacheStateWireHorizontal
	if info.Line.Orientation() == geometry.LineVertical {
		state = CacheStateWireVertical
	}
	for _, p := range info.Line.GridPoints() {
		if insert {
			c.set(p, state)
		} else {
			c.Clear(p)
		}
	}
}
