package layout

import (
	"fmt"

	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/vocabulary"
)

// AttrsClockGenerator holds the type-specific attributes of a clock
// generator logic item: the simulation-time period it alternates on.
type AttrsClockGenerator struct {
	Period vocabulary.Delay
}

// LogicItem is the caller-facing view of one row of the LogicItems table,
// assembled on read; the table itself is column-oriented (see LogicItems).
type LogicItem struct {
	Type            vocabulary.ElementType
	InputCount      vocabulary.ConnectionCount
	OutputCount     vocabulary.ConnectionCount
	Position        geometry.Point
	Orientation     vocabulary.Orientation
	SubCircuitId    uint32
	InputInverters  []bool
	OutputInverters []bool
	OutputDelays    []vocabulary.Delay
	DisplayState    vocabulary.DisplayState
	BoundingRect    geometry.Rect

	ClockGenerator *AttrsClockGenerator
}

// LogicItems is the dense column-store table of logic items.
type LogicItems struct {
	typ             []vocabulary.ElementType
	inputCount      []vocabulary.ConnectionCount
	outputCount     []vocabulary.ConnectionCount
	position        []geometry.Point
	orientation     []vocabulary.Orientation
	subCircuitId    []uint32
	inputInverters  [][]bool
	outputInverters [][]bool
	outputDelays    [][]vocabulary.Delay
	displayState    []vocabulary.DisplayState
	boundingRect    []geometry.Rect

	clockGenerators map[vocabulary.LogicItemId]AttrsClockGenerator
}

// newLogicItems returns an initialised, empty LogicItems table.
func newLogicItems() *LogicItems {
	return &LogicItems{clockGenerators: make(map[vocabulary.LogicItemId]AttrsClockGenerator)}
}

// Len returns the number of logic items currently stored.
func (l *LogicItems) Len() int { return len(l.typ) }

// Add appends a new logic item and returns its id.
func (l *LogicItems) Add(item LogicItem) vocabulary.LogicItemId {
	id := vocabulary.LogicItemId(len(l.typ))
	l.typ = append(l.typ, item.Type)
	l.inputCount = append(l.inputCount, item.InputCount)
	l.outputCount = append(l.outputCount, item.OutputCount)
	l.position = append(l.position, item.Position)
	l.orientation = append(l.orientation, item.Orientation)
	l.subCircuitId = append(l.subCircuitId, item.SubCircuitId)
	l.inputInverters = append(l.inputInverters, item.InputInverters)
	l.outputInverters = append(l.outputInverters, item.OutputInverters)
	l.outputDelays = append(l.outputDelays, item.OutputDelays)
	l.displayState = append(l.displayState, item.DisplayState)
	l.boundingRect = append(l.boundingRect, item.BoundingRect)

	if item.ClockGenerator != nil {
		l.clockGenerators[id] = *item.ClockGenerator
	}
	return id
}

// Get assembles the caller-facing view of the item at id.
func (l *LogicItems) Get(id vocabulary.LogicItemId) LogicItem {
	item := LogicItem{
		Type:            l.typ[id],
		InputCount:      l.inputCount[id],
		OutputCount:     l.outputCount[id],
		Position:        l.position[id],
		Orientation:     l.orientation[id],
		SubCircuitId:    l.subCircuitId[id],
		InputInverters:  l.inputInverters[id],
		OutputInverters: l.outputInverters[id],
		OutputDelays:    l.outputDelays[id],
		DisplayState:    l.displayState[id],
		BoundingRect:    l.boundingRect[id],
	}
	if attrs, ok := l.clockGenerators[id]; ok {
		a := attrs
		item.ClockGenerator = &a
	}
	return item
}

// SetPosition updates the position (and bounding rect, by delta shift) of
// id.
func (l *LogicItems) SetPosition(id vocabulary.LogicItemId, pos geometry.Point) {
	delta := pos.Add(-l.position[id].X, -l.position[id].Y)
	l.position[id] = pos
	l.boundingRect[id] = geometry.NewRect(
		l.boundingRect[id].P0.Add(delta.X, delta.Y),
		l.boundingRect[id].P1.Add(delta.X, delta.Y),
	)
}

// SetDisplayState updates the display state of id.
func (l *LogicItems) SetDisplayState(id vocabulary.LogicItemId, state vocabulary.DisplayState) {
	l.displayState[id] = state
}

// SetClockGeneratorAttrs sets (or clears, if attrs is nil) the clock
// generator attributes of id.
func (l *LogicItems) SetClockGeneratorAttrs(id vocabulary.LogicItemId, attrs *AttrsClockGenerator) {
	if attrs == nil {
		delete(l.clockGenerators, id)
		return
	}
	l.clockGenerators[id] = *attrs
}

// SwapAndDelete removes id by moving the last row into its slot. Returns
// the id that was relocated into id's slot, if any.
func (l *LogicItems) SwapAndDelete(id vocabulary.LogicItemId) (relocated *vocabulary.LogicItemId) {
	last := vocabulary.LogicItemId(len(l.typ) - 1)
	if id != last {
		l.typ[id] = l.typ[last]
		l.inputCount[id] = l.inputCount[last]
		l.outputCount[id] = l.outputCount[last]
		l.position[id] = l.position[last]
		l.orientation[id] = l.orientation[last]
		l.subCircuitId[id] = l.subCircuitId[last]
		l.inputInverters[id] = l.inputInverters[last]
		l.outputInverters[id] = l.outputInverters[last]
		l.outputDelays[id] = l.outputDelays[last]
		l.displayState[id] = l.displayState[last]
		l.boundingRect[id] = l.boundingRect[last]
		if attrs, ok := l.clockGenerators[last]; ok {
			l.clockGenerators[id] = attrs
			delete(l.clockGenerators, last)
		} else {
			delete(l.clockGenerators, id)
		}
		relocated = &last
	} else {
		delete(l.clockGenerators, id)
	}

	l.typ = l.typ[:last]
	l.inputCount = l.inputCount[:last]
	l.outputCount = l.outputCount[:last]
	l.position = l.position[:last]
	l.orientation = l.orientation[:last]
	l.subCircuitId = l.subCircuitId[:last]
	l.inputInverters = l.inputInverters[:last]
	l.outputInverters = l.outputInverters[:last]
	l.outputDelays = l.outputDelays[:last]
	l.displayState = l.displayState[:last]
	l.boundingRect = l.boundingRect[:last]
	return relocated
}

// AllocatedSize reports the cap()-based memory footprint of the table's
// backing slices and maps, per spec.md §4.4.
func (l *LogicItems) AllocatedSize() int {
	const ptrSize = 8
	size := cap(l.typ)*elementTypeSize +
		cap(l.inputCount)*ptrSize + cap(l.outputCount)*ptrSize +
		cap(l.position)*16 + cap(l.orientation)*ptrSize +
		cap(l.subCircuitId)*4 + cap(l.boundingRect)*32 +
		cap(l.inputInverters)*24 + cap(l.outputInverters)*24 + cap(l.outputDelays)*24
	size += len(l.clockGenerators) * (8 + 8)
	return size
}

const elementTypeSize = 8

func (l *LogicItems) String() string {
	return fmt.Sprintf("LogicItems{count=%d}", l.Len())
}
