// Package index implements the derived structures spec.md §4.4 describes:
// the four point->connector indices, the collision cache, the spatial
// R-tree, and the stable key<->id map. Every index is a pure message.
// Consumer — it never reads Layout directly, only the InfoMessage stream a
// Modifier broadcasts (spec.md §4.4's "submit(msg) transitions their
// state" contract).
package index

import (
	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/vocabulary"
)

// Connector names one connector of an owning logic item or wire, at the
// point it occupies and the direction it faces.
type Connector[OwnerID comparable] struct {
	Owner       OwnerID
	Index       int
	Orientation vocabulary.Orientation
}

// ConnectorIndex is a generic point -> connector map shared by the four
// spec.md §4.4 connector indices (LogicItemInputIndex, LogicItemOutputIndex,
// WireInputIndex, WireOutputIndex), parameterized over their owner id type.
type ConnectorIndex[OwnerID comparable] struct {
	byPoint map[geometry.Point]Connector[OwnerID]
	byOwner map[OwnerID][]geometry.Point
}

// NewConnectorIndex returns an empty ConnectorIndex.
func NewConnectorIndex[OwnerID comparable]() *ConnectorIndex[OwnerID] {
	return &ConnectorIndex[OwnerID]{
		byPoint: make(map[geometry.Point]Connector[OwnerID]),
		byOwner: make(map[OwnerID][]geometry.Point),
	}
}

// Lookup returns the connector registered at p, if any.
func (idx *ConnectorIndex[OwnerID]) Lookup(p geometry.Point) (Connector[OwnerID], bool) {
	c, ok := idx.byPoint[p]
	return c, ok
}

// Insert registers every connector in cs for owner, each at its own point.
func (idx *ConnectorIndex[OwnerID]) Insert(owner OwnerID, points []geometry.Point, cs []Connector[OwnerID]) {
	for i, p := range points {
		idx.byPoint[p] = cs[i]
	}
	idx.byOwner[owner] = append(idx.byOwner[owner], points...)
}

// Remove deletes every connector registered for owner.
func (idx *ConnectorIndex[OwnerID]) Remove(owner OwnerID) {
	for _, p := range idx.byOwner[owner] {
		delete(idx.byPoint, p)
	}
	delete(idx.byOwner, owner)
}

// Rekey moves every connector registered under oldOwner to newOwner,
// without touching their points or connector indices.
func (idx *ConnectorIndex[OwnerID]) Rekey(oldOwner, newOwner OwnerID) {
	points := idx.byOwner[oldOwner]
	delete(idx.byOwner, oldOwner)
	if len(points) == 0 {
		return
	}
	idx.byOwner[newOwner] = points
	for _, p := range points {
		c := idx.byPoint[p]
		c.Owner = newOwner
		idx.byPoint[p] = c
	}
}

// Len returns the number of registered connectors.
func (idx *ConnectorIndex[OwnerID]) Len() int { return len(idx.byPoint) }

// AllocatedSize reports an estimated memory footprint of the backing maps,
// from their len(), per spec.md §4.4.
func (idx *ConnectorIndex[OwnerID]) AllocatedSize() int {
	return len(idx.byPoint)*48 + len(idx.byOwner)*32
}

// Validate re-derives nothing on its own (ConnectorIndex has no Layout
// dependency beyond the message stream it already consumed); it only
// checks each owner's recorded points still resolve back to that owner,
// catching internal corruption. Intended for the test harness described in
// spec.md §4.4.
func (idx *ConnectorIndex[OwnerID]) Validate() bool {
	for owner, points := range idx.byOwner {
		for _, p := range points {
			c, ok := idx.byPoint[p]
			if !ok || c.Owner != owner {
				return false
			}
		}
	}
	return true
}
