package index

import (
	"github.com/sarchlab/logikedit/circuitinfo"
	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/message"
	"github.com/sarchlab/logikedit/vocabulary"
)

// LogicItemInputIndex resolves which logic item's input connector, if any,
// lives at a grid point. It only tracks *inserted* logic items.
type LogicItemInputIndex struct {
	inner *ConnectorIndex[vocabulary.LogicItemId]
}

// NewLogicItemInputIndex returns an empty LogicItemInputIndex.
func NewLogicItemInputIndex() *LogicItemInputIndex {
	return &LogicItemInputIndex{inner: NewConnectorIndex[vocabulary.LogicItemId]()}
}

// Lookup returns the connector at p, if any.
func (idx *LogicItemInputIndex) Lookup(p geometry.Point) (Connector[vocabulary.LogicItemId], bool) {
	return idx.inner.Lookup(p)
}

// Len returns the number of registered connectors.
func (idx *LogicItemInputIndex) Len() int { return idx.inner.Len() }

// AllocatedSize reports the index's memory footprint.
func (idx *LogicItemInputIndex) AllocatedSize() int { return idx.inner.AllocatedSize() }

// Validate checks internal consistency; see ConnectorIndex.Validate.
func (idx *LogicItemInputIndex) Validate() bool { return idx.inner.Validate() }

// Submit implements message.Consumer.
func (idx *LogicItemInputIndex) Submit(msg message.Info) {
	switch msg.Kind {
	case message.KindLogicItemInserted:
		points, cs := logicItemConnectors(msg.LogicItemId, msg.LogicItemData, true)
		idx.inner.Insert(msg.LogicItemId, points, cs)
	case message.KindLogicItemUninserted:
		idx.inner.Remove(msg.LogicItemId)
	case message.KindInsertedLogicItemIdUpdated:
		idx.inner.Rekey(msg.OldLogicItemId, msg.LogicItemId)
	}
}

// LogicItemOutputIndex mirrors LogicItemInputIndex for output connectors.
type LogicItemOutputIndex struct {
	inner *ConnectorIndex[vocabulary.LogicItemId]
}

// NewLogicItemOutputIndex returns an empty LogicItemOutputIndex.
func NewLogicItemOutputIndex() *LogicItemOutputIndex {
	return &LogicItemOutputIndex{inner: NewConnectorIndex[vocabulary.LogicItemId]()}
}

func (idx *LogicItemOutputIndex) Lookup(p geometry.Point) (Connector[vocabulary.LogicItemId], bool) {
	return idx.inner.Lookup(p)
}

func (idx *LogicItemOutputIndex) Len() int { return idx.inner.Len() }

func (idx *LogicItemOutputIndex) AllocatedSize() int { return idx.inner.AllocatedSize() }

func (idx *LogicItemOutputIndex) Validate() bool { return idx.inner.Validate() }

func (idx *LogicItemOutputIndex) Submit(msg message.Info) {
	switch msg.Kind {
	case message.KindLogicItemInserted:
		points, cs := logicItemConnectors(msg.LogicItemId, msg.LogicItemData, false)
		idx.inner.Insert(msg.LogicItemId, points, cs)
	case message.KindLogicItemUninserted:
		idx.inner.Remove(msg.LogicItemId)
	case message.KindInsertedLogicItemIdUpdated:
		idx.inner.Rekey(msg.OldLogicItemId, msg.LogicItemId)
	}
}

// logicItemConnectors resolves the world-space points and connector
// records for every input (or every output, if inputs is false) connector
// of a logic item, via circuitinfo.
func logicItemConnectors(owner vocabulary.LogicItemId, data layout.LogicItem, inputs bool) ([]geometry.Point, []Connector[vocabulary.LogicItemId]) {
	var points []geometry.Point
	var cs []Connector[vocabulary.LogicItemId]

	visit := func(i int, p geometry.Point, facing vocabulary.Orientation) {
		points = append(points, p)
		cs = append(cs, Connector[vocabulary.LogicItemId]{Owner: owner, Index: i, Orientation: facing})
	}

	if inputs {
		circuitinfo.IterInputLocations(data.Type, data.Position, data.Orientation, visit)
	} else {
		circuitinfo.IterOutputLocations(data.Type, data.Position, data.Orientation, visit)
	}
	return points, cs
}
