package modifier

import (
	"fmt"

	"github.com/sarchlab/logikedit/circuitinfo"
	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/history"
	"github.com/sarchlab/logikedit/index"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/message"
	"github.com/sarchlab/logikedit/vocabulary"
)

// AddLogicItem allocates a new logic item of the given definition at pos,
// with its display state set from mode, per spec.md §4.7.1's
// add_logic_item primitive. def.Position and def.BoundingRect are
// overwritten from pos; for a FixedSize ElementType the bounding rect is
// derived from circuitinfo, for a VariableSize one def.BoundingRect (the
// unrotated body size) is used as supplied.
func (m *Modifier) AddLogicItem(def layout.LogicItem, pos geometry.Point, mode vocabulary.InsertionMode) (vocabulary.LogicItemId, error) {
	m.beginGroup()

	def.Position = pos
	def.BoundingRect = circuitinfo.WorldBoundingRect(def.Type, pos, def.Orientation, def.BoundingRect)
	def.DisplayState = vocabulary.DisplayStateTemporary

	id := m.Layout.LogicItems.Add(def)
	m.emit(message.Info{Kind: message.KindLogicItemCreated, LogicItemId: id, LogicItemData: def})
	m.History.Push(history.Entry{Kind: history.EntryCreateTemporaryElement, Target: history.TargetLogicItem, LogicItemId: id, LogicItem: def})

	if mode == vocabulary.InsertionModeTemporary {
		return id, nil
	}

	collisionFree := m.logicItemCollisionFree(def)
	state := vocabulary.ToDisplayState(mode, collisionFree)

	if mode == vocabulary.InsertionModeInsertOrDiscard && !collisionFree {
		m.Layout.LogicItems.SetDisplayState(id, vocabulary.DisplayStateTemporary)
		m.History.Push(history.Entry{Kind: history.EntryDeleteTemporaryElement, Target: history.TargetLogicItem, LogicItemId: id, LogicItem: def})
		return m.deleteLogicItemRow(id)
	}

	m.Layout.LogicItems.SetDisplayState(id, state)
	def.DisplayState = state
	if state.IsInserted() {
		m.emit(message.Info{Kind: message.KindLogicItemInserted, LogicItemId: id, LogicItemData: def})
	}
	return id, nil
}

// logicItemCollisionFree checks whether every cell of item's bounding rect
// is CacheStateEmpty in Collision. Connector points are not checked
// separately, and no cell may be shared with a wire or element connection.
func (m *Modifier) logicItemCollisionFree(item layout.LogicItem) bool {
	for x := item.BoundingRect.P0.X; x <= item.BoundingRect.P1.X; x++ {
		for y := item.BoundingRect.P0.Y; y <= item.BoundingRect.P1.Y; y++ {
			p := geometry.Point{X: x, Y: y}
			if m.Collision.StateAt(p) != index.CacheStateEmpty {
				return false
			}
		}
	}
	return true
}

// ChangeLogicItemInsertionMode transitions id between temporary, colliding,
// and inserted, adjusting its display state and emitting the paired
// uninsert/insert messages spec.md §4.7.1 calls for. Per spec.md §3,
// neither collisions nor insert_or_discard ever error on a collision:
// collisions mode renders colliding, and insert_or_discard discards the
// item outright.
func (m *Modifier) ChangeLogicItemInsertionMode(id vocabulary.LogicItemId, mode vocabulary.InsertionMode) error {
	m.beginGroup()

	item := m.Layout.LogicItems.Get(id)
	wasInserted := item.DisplayState.IsInserted()
	// An inserted item's own cells are in Collision; it was checked on entry.
	collisionFree := wasInserted || m.logicItemCollisionFree(item)

	if mode == vocabulary.InsertionModeInsertOrDiscard && !collisionFree {
		if wasInserted {
			m.emit(message.Info{Kind: message.KindLogicItemUninserted, LogicItemId: id, LogicItemData: item})
		}
		m.History.Push(history.Entry{Kind: history.EntryDeleteTemporaryElement, Target: history.TargetLogicItem, LogicItemId: id, LogicItem: item})
		_, err := m.deleteLogicItemRow(id)
		return err
	}

	newState := vocabulary.ToDisplayState(mode, collisionFree)

	if wasInserted {
		m.emit(message.Info{Kind: message.KindLogicItemUninserted, LogicItemId: id, LogicItemData: item})
	}

	m.History.Push(history.Entry{
		Kind: history.EntrySetInsertionMode, Target: history.TargetLogicItem,
		LogicItemId: id, Mode: mode, PrevDisplayState: item.DisplayState,
	})
	m.Layout.LogicItems.SetDisplayState(id, newState)
	item.DisplayState = newState

	if newState.IsInserted() {
		m.emit(message.Info{Kind: message.KindLogicItemInserted, LogicItemId: id, LogicItemData: item})
	}
	return nil
}

// DeleteTemporaryLogicItem removes id, which must currently be in the
// temporary state.
func (m *Modifier) DeleteTemporaryLogicItem(id vocabulary.LogicItemId) error {
	m.beginGroup()

	item := m.Layout.LogicItems.Get(id)
	if item.DisplayState != vocabulary.DisplayStateTemporary {
		return fmt.Errorf("%w: delete_temporary_logicitem requires temporary state, got %v", vocabulary.ErrStateViolation, item.DisplayState)
	}

	m.History.Push(history.Entry{Kind: history.EntryDeleteTemporaryElement, Target: history.TargetLogicItem, LogicItemId: id, LogicItem: item})
	_, err := m.deleteLogicItemRow(id)
	return err
}

func (m *Modifier) deleteLogicItemRow(id vocabulary.LogicItemId) (vocabulary.LogicItemId, error) {
	item := m.Layout.LogicItems.Get(id)
	m.emit(message.Info{Kind: message.KindLogicItemDeleted, LogicItemId: id, LogicItemData: item})

	relocated := m.Layout.LogicItems.SwapAndDelete(id)
	if relocated != nil && *relocated != id {
		moved := m.Layout.LogicItems.Get(id)
		kind := message.KindLogicItemIdUpdated
		if moved.DisplayState.IsInserted() {
			kind = message.KindInsertedLogicItemIdUpdated
		}
		m.emit(message.Info{Kind: kind, OldLogicItemId: *relocated, LogicItemId: id})
	}
	return id, nil
}

// MoveOrDeleteTemporaryLogicItem shifts a temporary logic item by (dx, dy)
// if the resulting position is representable and collision-free; otherwise
// it deletes the item, per spec.md §4.7.1.
func (m *Modifier) MoveOrDeleteTemporaryLogicItem(id vocabulary.LogicItemId, dx, dy geometry.Grid) error {
	m.beginGroup()

	item := m.Layout.LogicItems.Get(id)
	if item.DisplayState != vocabulary.DisplayStateTemporary {
		return fmt.Errorf("%w: move_or_delete_temporary_logicitem requires temporary state, got %v", vocabulary.ErrStateViolation, item.DisplayState)
	}

	newPos := item.Position.Add(dx, dy)
	if !newPos.X.InRange() || !newPos.Y.InRange() {
		m.History.Push(history.Entry{Kind: history.EntryDeleteTemporaryElement, Target: history.TargetLogicItem, LogicItemId: id, LogicItem: item})
		_, err := m.deleteLogicItemRow(id)
		return err
	}

	newRect := circuitinfo.WorldBoundingRect(item.Type, newPos, item.Orientation, item.BoundingRect)
	if !newRect.P0.X.InRange() || !newRect.P1.X.InRange() || !newRect.P0.Y.InRange() || !newRect.P1.Y.InRange() {
		m.History.Push(history.Entry{Kind: history.EntryDeleteTemporaryElement, Target: history.TargetLogicItem, LogicItemId: id, LogicItem: item})
		_, err := m.deleteLogicItemRow(id)
		return err
	}

	m.History.Push(history.Entry{Kind: history.EntryMoveByDelta, Target: history.TargetLogicItem, LogicItemId: id, Dx: dx, Dy: dy})
	m.Layout.LogicItems.SetPosition(id, newPos)
	return nil
}
