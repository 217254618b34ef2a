// Package modifier implements spec.md §4.7: the primitives that create,
// move, and reclassify logic items and wire segments, the three-phase
// (temporary -> colliding -> inserted) wire insertion protocol, and the
// history journal integration that makes every primitive reversible.
package modifier

import (
	"errors"

	"github.com/sarchlab/logikedit/history"
	"github.com/sarchlab/logikedit/index"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/message"
)

// Modifier is the sole mutator of a Layout. It owns the layout and the
// broadcaster every index/selection observes, and drives the collision and
// spatial indices directly since the wire insertion-mode algorithm (§4.7.2,
// §4.7.3) actively queries them rather than merely observing their state.
type Modifier struct {
	Layout      *layout.Layout
	Broadcaster *message.Broadcaster
	History     *history.Stack

	Collision    *index.Collision
	Spatial      index.Spatial
	LogicInputs  *index.LogicItemInputIndex
	LogicOutputs *index.LogicItemOutputIndex
	WireInputs   *index.WireInputIndex
	WireOutputs  *index.WireOutputIndex
	Keys         *index.KeyIndex
}

// New returns a Modifier over a fresh, empty Layout, with every built-in
// index wired to its Broadcaster in the order spec.md §4.6 requires
// (registration order is the broadcast order).
func New() *Modifier {
	m := &Modifier{
		Layout:       layout.New(),
		Broadcaster:  &message.Broadcaster{},
		History:      history.NewStack(),
		Collision:    index.NewCollision(),
		Spatial:      index.NewSpatial(),
		LogicInputs:  index.NewLogicItemInputIndex(),
		LogicOutputs: index.NewLogicItemOutputIndex(),
		WireInputs:   index.NewWireInputIndex(),
		WireOutputs:  index.NewWireOutputIndex(),
		Keys:         index.NewKeyIndex(),
	}

	m.Broadcaster.Register(m.Collision)
	m.Broadcaster.Register(m.Spatial)
	m.Broadcaster.Register(m.LogicInputs)
	m.Broadcaster.Register(m.LogicOutputs)
	m.Broadcaster.Register(m.WireInputs)
	m.Broadcaster.Register(m.WireOutputs)
	m.Broadcaster.Register(m.Keys)

	return m
}

// emit is a short alias used throughout the primitives below.
func (m *Modifier) emit(msg message.Info) { m.Broadcaster.Submit(msg) }

var errUnreachable = errors.New("unreachable modifier state")

// beginGroup opens a history group for one user-facing edit. Primitives
// that emit more than one history entry call this once at their start.
func (m *Modifier) beginGroup() { m.History.BeginGroup() }
