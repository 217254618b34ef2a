// Package layout holds the column-store Layout (logic items, decorations,
// wires), the per-wire SegmentTree, and the PartSelection container that
// tracks sub-ranges of a segment.
package layout

import (
	"fmt"
	"sort"

	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/vocabulary"
)

// PartSelection is a sorted, pairwise-disjoint, non-touching list of Parts.
// The zero value is an empty selection.
type PartSelection struct {
	parts []geometry.Part
}

// NewPartSelection builds a PartSelection from zero or more parts, applying
// the same add-and-merge logic as AddPart for each.
func NewPartSelection(parts ...geometry.Part) (PartSelection, error) {
	var s PartSelection
	for _, p := range parts {
		if err := s.AddPart(p); err != nil {
			return PartSelection{}, err
		}
	}
	return s, nil
}

// Parts returns the canonical parts, in order. The returned slice must not
// be mutated by the caller.
func (s *PartSelection) Parts() []geometry.Part {
	return s.parts
}

// Empty reports whether the selection has no parts.
func (s *PartSelection) Empty() bool {
	return len(s.parts) == 0
}

// AddPart inserts p, merging it with any touching or overlapping existing
// parts so the canonical invariant (sorted, disjoint, non-touching) holds
// afterwards.
func (s *PartSelection) AddPart(p geometry.Part) error {
	if p.Length() <= 0 {
		return fmt.Errorf("%w: degenerate part %v", vocabulary.ErrInvalidArgument, p)
	}

	merged := append(append([]geometry.Part{}, s.parts...), p)
	sort.Slice(merged, func(i, j int) bool { return merged[i].Begin() < merged[j].Begin() })

	out := merged[:0:0]
	cur := merged[0]
	for _, next := range merged[1:] {
		if next.Begin() <= cur.End() {
			end := cur.End()
			if next.End() > end {
				end = next.End()
			}
			cur = geometry.MustNewPart(cur.Begin(), end)
			continue
		}
		out = append(out, cur)
		cur = next
	}
	out = append(out, cur)

	s.parts = out
	return nil
}

// RemovePart deletes r from the selection, applying the part-algebra case
// table from spec.md §4.1 to every existing part.
func (s *PartSelection) RemovePart(r geometry.Part) error {
	if r.Length() <= 0 {
		return fmt.Errorf("%w: degenerate part %v", vocabulary.ErrInvalidArgument, r)
	}

	var out []geometry.Part
	for _, p := range s.parts {
		out = append(out, geometry.Difference(p, r)...)
	}
	s.parts = out
	return nil
}

// CopyDef describes where a copy_parts/move_parts operation reads from and
// writes to. |Destination| must equal |Source|.
type CopyDef struct {
	Source      geometry.Part
	Destination geometry.Part
}

// CopyParts copies the portion of src that falls within def.Source into
// dst, shifted so def.Source maps onto def.Destination. dst is modified in
// place; src is left unchanged.
func CopyParts(dst *PartSelection, src *PartSelection, def CopyDef) error {
	if def.Source.Length() != def.Destination.Length() {
		return fmt.Errorf("%w: copy_def source length %d != destination length %d",
			vocabulary.ErrInvalidArgument, def.Source.Length(), def.Destination.Length())
	}

	shift := def.Destination.Begin() - def.Source.Begin()
	for _, p := range src.parts {
		overlap, ok := geometry.Intersect(p, def.Source)
		if !ok {
			continue
		}
		shifted := overlap.Shift(shift)
		clipped, ok := geometry.Intersect(shifted, def.Destination)
		if !ok {
			continue
		}
		if err := dst.AddPart(clipped); err != nil {
			return err
		}
	}
	return nil
}

// MoveParts is CopyParts followed by removing def.Source from src.
func MoveParts(dst *PartSelection, src *PartSelection, def CopyDef) error {
	if err := CopyParts(dst, src, def); err != nil {
		return err
	}
	return src.RemovePart(def.Source)
}

// InvertedSelection returns the complement of s within full, as a canonical
// PartSelection. Used by SegmentTree.CalculateNormalLines to find the
// non-valid sub-ranges of a segment.
func (s *PartSelection) InvertedSelection(full geometry.Part) (PartSelection, error) {
	var out PartSelection
	cursor := full.Begin()
	for _, p := range s.parts {
		if p.Begin() > cursor {
			if err := out.AddPart(geometry.MustNewPart(cursor, p.Begin())); err != nil {
				return PartSelection{}, err
			}
		}
		if p.End() > cursor {
			cursor = p.End()
		}
	}
	if cursor < full.End() {
		if err := out.AddPart(geometry.MustNewPart(cursor, full.End())); err != nil {
			return PartSelection{}, err
		}
	}
	return out, nil
}

// CheckInvariants verifies the canonical-form invariant: sorted, no two
// parts overlap or touch. Intended for test harnesses (spec.md §8).
func (s *PartSelection) CheckInvariants() error {
	for i := 0; i < len(s.parts); i++ {
		if s.parts[i].Begin() >= s.parts[i].End() {
			return fmt.Errorf("%w: part %d is degenerate: %v", vocabulary.ErrStateViolation, i, s.parts[i])
		}
		if i+1 < len(s.parts) {
			if s.parts[i].End() >= s.parts[i+1].Begin() {
				return fmt.Errorf("%w: parts %d and %d overlap or touch: %v, %v",
					vocabulary.ErrStateViolation, i, i+1, s.parts[i], s.parts[i+1])
			}
		}
	}
	return nil
}

// Equal reports whether two selections hold the same canonical parts.
func (s *PartSelection) Equal(o *PartSelection) bool {
	if len(s.parts) != len(o.parts) {
		return false
	}
	for i := range s.parts {
		if s.parts[i] != o.parts[i] {
			return false
		}
	}
	return true
}
