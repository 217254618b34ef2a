package editablecircuit

import (
	"fmt"

	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/index"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/message"
	"github.com/sarchlab/logikedit/selection"
	"github.com/sarchlab/logikedit/vocabulary"
)

// RectOp is one step of the visible selection's operation stack: every
// payload touching Rect is added to (or, if Subtract, removed from) the
// base selection, per spec.md §4.8's "a base selection plus a stack of
// rectangular additive/subtractive operations applied lazily".
type RectOp struct {
	Rect     geometry.Rect
	Subtract bool
}

// SetVisibleSelection names base as the selection the visible selection is
// composed on top of, clearing any previously staged rectangle operations
// — the set_visible_selection primitive of spec.md §6.2.
func (c *CircuitData) SetVisibleSelection(base vocabulary.SelectionId) error {
	if _, ok := c.Selections.Get(base); !ok {
		return fmt.Errorf("%w: unknown selection %v", vocabulary.ErrNotFound, base)
	}
	c.visibleBase = base
	c.hasVisibleBase = true
	c.visibleOps = nil
	return nil
}

// ApplyVisibleOperations appends ops to the staged rectangle stack — the
// apply_visible_operations primitive of spec.md §6.2. Operations are
// applied lazily: nothing is computed until VisibleSelection is called.
func (c *CircuitData) ApplyVisibleOperations(ops ...RectOp) {
	c.visibleOps = append(c.visibleOps, ops...)
}

// VisibleSelection computes and returns the composed selection shown to
// the UI: the base selection with every staged RectOp folded in, in
// order, per spec.md §6.1's visible_selection() query. Returns an empty
// Selection if no base has been set.
func (c *CircuitData) VisibleSelection() *selection.Selection {
	out := selection.New()
	if !c.hasVisibleBase {
		return out
	}

	base, ok := c.Selections.Get(c.visibleBase)
	if !ok {
		return out
	}
	for _, id := range base.LogicItems() {
		out.AddLogicItem(id)
	}
	for _, id := range base.Decorations() {
		out.AddDecoration(id)
	}
	for _, seg := range base.Segments() {
		if part, ok := base.SegmentPart(seg); ok {
			out.AddSegmentPart(seg, part)
		}
	}

	for _, op := range c.visibleOps {
		c.foldRectOp(out, op)
	}
	return out
}

func (c *CircuitData) foldRectOp(out *selection.Selection, op RectOp) {
	for _, ref := range c.Modifier.Spatial.QuerySelection(geometry.ToFineRect(op.Rect)) {
		switch ref.Kind {
		case index.PayloadLogicItem:
			if op.Subtract {
				out.RemoveLogicItem(ref.LogicItemId)
			} else {
				out.AddLogicItem(ref.LogicItemId)
			}
		case index.PayloadDecoration:
			if op.Subtract {
				out.RemoveDecoration(ref.DecorationId)
			} else {
				out.AddDecoration(ref.DecorationId)
			}
		case index.PayloadSegment:
			c.foldSegmentRectOp(out, ref.Segment, op)
		}
	}
}

// foldSegmentRectOp adds or removes the whole of ref's current line from
// out — a segment is an atomic unit under a rectangle operation even
// though selections can in general hold partial segments (those come only
// from explicit AddToSelection calls, not from bulk rectangle ops).
func (c *CircuitData) foldSegmentRectOp(out *selection.Selection, seg vocabulary.Segment, op RectOp) {
	tree := c.Modifier.Layout.Wires.Tree(seg.Wire)
	if int(seg.Index) >= tree.Len() {
		return
	}
	full := geometry.FullPart(tree.Line(seg.Index))
	if op.Subtract {
		out.Submit(message.Info{Kind: message.KindSegmentPartDeleted, SegmentPartSrc: message.SegmentPart{Segment: seg, Part: full}})
		return
	}
	part, _ := layout.NewPartSelection(full)
	out.AddSegmentPart(seg, part)
}

// MoveSelection bulk-moves every logic item, decoration, and whole segment
// held by the selection named id by (dx, dy), the "move a whole selection"
// bulk edit spec.md §4.8 names. It relies on the temporary-only move
// primitives, so only temporary members actually move: inserted members
// are silently skipped, matching the rest of this module's temporary-only
// move semantics (Modifier.MoveOrDeleteTemporary*).
func (c *CircuitData) MoveSelection(id vocabulary.SelectionId, dx, dy geometry.Grid) error {
	s, ok := c.Selections.Get(id)
	if !ok {
		return fmt.Errorf("%w: unknown selection %v", vocabulary.ErrNotFound, id)
	}

	c.BeginGroup()
	for _, liID := range s.LogicItems() {
		if c.Modifier.Layout.LogicItems.Get(liID).DisplayState != vocabulary.DisplayStateTemporary {
			continue
		}
		if err := c.Modifier.MoveOrDeleteTemporaryLogicItem(liID, dx, dy); err != nil {
			return err
		}
	}
	for _, decID := range s.Decorations() {
		if c.Modifier.Layout.Decorations.Get(decID).DisplayState != vocabulary.DisplayStateTemporary {
			continue
		}
		if err := c.Modifier.MoveOrDeleteTemporaryDecoration(decID, dx, dy); err != nil {
			return err
		}
	}
	for _, seg := range s.Segments() {
		if !seg.Wire.IsReserved() {
			continue
		}
		if _, err := c.MoveTemporary(seg, dx, dy); err != nil {
			return err
		}
	}
	return nil
}

// DragLogicItem is the single-item special case of MoveSelection used
// while the user drags one element interactively, per spec.md §4.8's
// "drag logic" bulk edit — a plain alias kept separate because a drag
// operates outside of any SelectionStore entry.
func (c *CircuitData) DragLogicItem(id vocabulary.LogicItemId, dx, dy geometry.Grid) error {
	return c.Modifier.MoveOrDeleteTemporaryLogicItem(id, dx, dy)
}

// RegularizeAfterPaste runs RegularizeTemporarySelection across the
// pasted selection, skipping the merge at each of trueCrosspoints, the
// "regularise after a paste" bulk edit of spec.md §4.8 — pasted geometry
// lands as a batch of disjoint temporary segments that need their
// endpoint classification (and any accidental collinear splits at a
// junction) cleaned up before the user can continue editing it as one
// shape.
func (c *CircuitData) RegularizeAfterPaste(selection []vocabulary.Segment, trueCrosspoints []geometry.Point) error {
	return c.Modifier.RegularizeTemporarySelection(selection, trueCrosspoints)
}
