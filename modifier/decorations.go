package modifier

import (
	"fmt"

	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/history"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/message"
	"github.com/sarchlab/logikedit/vocabulary"
)

// AddDecoration allocates a new decoration at pos, with its display state
// set from mode, mirroring AddLogicItem per spec.md §6.2. Decorations never
// collide with anything (they are not part of the collision rule table of
// spec.md §4.4), so insert_or_discard never discards one.
func (m *Modifier) AddDecoration(def layout.Decoration, pos geometry.Point, mode vocabulary.InsertionMode) (vocabulary.DecorationId, error) {
	m.beginGroup()

	delta := pos.Add(-def.Position.X, -def.Position.Y)
	def.Position = pos
	def.BoundingRect = geometry.NewRect(
		def.BoundingRect.P0.Add(delta.X, delta.Y),
		def.BoundingRect.P1.Add(delta.X, delta.Y),
	)
	def.DisplayState = vocabulary.DisplayStateTemporary

	id := m.Layout.Decorations.Add(def)
	m.emit(message.Info{Kind: message.KindDecorationCreated, DecorationId: id, DecorationData: def})
	m.History.Push(history.Entry{Kind: history.EntryCreateTemporaryElement, Target: history.TargetDecoration, DecorationId: id, Decoration: def})

	if mode == vocabulary.InsertionModeTemporary {
		return id, nil
	}

	state := vocabulary.ToDisplayState(mode, true)
	m.Layout.Decorations.SetDisplayState(id, state)
	def.DisplayState = state
	if state.IsInserted() {
		m.emit(message.Info{Kind: message.KindDecorationInserted, DecorationId: id, DecorationData: def})
	}
	return id, nil
}

// ChangeDecorationInsertionMode transitions id between temporary, colliding,
// and inserted. Per AddDecoration's note, collisions never applies in
// practice (decorations are always collision-free) but the mode is still
// accepted for symmetry with ChangeLogicItemInsertionMode.
func (m *Modifier) ChangeDecorationInsertionMode(id vocabulary.DecorationId, mode vocabulary.InsertionMode) error {
	m.beginGroup()

	dec := m.Layout.Decorations.Get(id)
	wasInserted := dec.DisplayState.IsInserted()
	newState := vocabulary.ToDisplayState(mode, true)

	if wasInserted {
		m.emit(message.Info{Kind: message.KindDecorationUninserted, DecorationId: id, DecorationData: dec})
	}

	m.History.Push(history.Entry{
		Kind: history.EntrySetInsertionMode, Target: history.TargetDecoration,
		DecorationId: id, Mode: mode, PrevDisplayState: dec.DisplayState,
	})
	m.Layout.Decorations.SetDisplayState(id, newState)
	dec.DisplayState = newState

	if newState.IsInserted() {
		m.emit(message.Info{Kind: message.KindDecorationInserted, DecorationId: id, DecorationData: dec})
	}
	return nil
}

// DeleteTemporaryDecoration removes id, which must currently be in the
// temporary state.
func (m *Modifier) DeleteTemporaryDecoration(id vocabulary.DecorationId) error {
	m.beginGroup()

	dec := m.Layout.Decorations.Get(id)
	if dec.DisplayState != vocabulary.DisplayStateTemporary {
		return fmt.Errorf("%w: delete_temporary_decoration requires temporary state, got %v", vocabulary.ErrStateViolation, dec.DisplayState)
	}

	m.History.Push(history.Entry{Kind: history.EntryDeleteTemporaryElement, Target: history.TargetDecoration, DecorationId: id, Decoration: dec})
	_, err := m.deleteDecorationRow(id)
	return err
}

func (m *Modifier) deleteDecorationRow(id vocabulary.DecorationId) (vocabulary.DecorationId, error) {
	dec := m.Layout.Decorations.Get(id)
	m.emit(message.Info{Kind: message.KindDecorationDeleted, DecorationId: id, DecorationData: dec})

	relocated := m.Layout.Decorations.SwapAndDelete(id)
	if relocated != nil && *relocated != id {
		moved := m.Layout.Decorations.Get(id)
		kind := message.KindDecorationIdUpdated
		if moved.DisplayState.IsInserted() {
			kind = message.KindInsertedDecorationIdUpdated
		}
		m.emit(message.Info{Kind: kind, OldDecorationId: *relocated, DecorationId: id})
	}
	return id, nil
}

// MoveOrDeleteTemporaryDecoration shifts a temporary decoration by (dx, dy)
// if the resulting position is representable; otherwise it deletes it.
func (m *Modifier) MoveOrDeleteTemporaryDecoration(id vocabulary.DecorationId, dx, dy geometry.Grid) error {
	m.beginGroup()

	dec := m.Layout.Decorations.Get(id)
	if dec.DisplayState != vocabulary.DisplayStateTemporary {
		return fmt.Errorf("%w: move_or_delete_temporary_decoration requires temporary state, got %v", vocabulary.ErrStateViolation, dec.DisplayState)
	}

	newPos := dec.Position.Add(dx, dy)
	newRect := geometry.NewRect(
		dec.BoundingRect.P0.Add(dx, dy),
		dec.BoundingRect.P1.Add(dx, dy),
	)
	if !newPos.X.InRange() || !newPos.Y.InRange() ||
		!newRect.P0.X.InRange() || !newRect.P1.X.InRange() ||
		!newRect.P0.Y.InRange() || !newRect.P1.Y.InRange() {
		m.History.Push(history.Entry{Kind: history.EntryDeleteTemporaryElement, Target: history.TargetDecoration, DecorationId: id, Decoration: dec})
		_, err := m.deleteDecorationRow(id)
		return err
	}

	m.History.Push(history.Entry{Kind: history.EntryMoveByDelta, Target: history.TargetDecoration, DecorationId: id, Dx: dx, Dy: dy})
	m.Layout.Decorations.SetPosition(id, newPos)
	return nil
}
