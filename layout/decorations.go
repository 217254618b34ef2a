package layout

import (
	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/vocabulary"
)

// Size2D is a decoration's footprint in grid cells.
type Size2D struct {
	Width, Height geometry.Grid
}

// AttrsTextElement holds the type-specific attributes of a text decoration.
type AttrsTextElement struct {
	Text     string
	FontSize int
}

// Decoration is the caller-facing view of one row of the Decorations
// table.
type Decoration struct {
	Type         vocabulary.DecorationType
	Size         Size2D
	Position     geometry.Point
	DisplayState vocabulary.DisplayState
	BoundingRect geometry.Rect

	TextElement *AttrsTextElement
}

// Decorations is the dense column-store table of decorations.
type Decorations struct {
	typ          []vocabulary.DecorationType
	size         []Size2D
	position     []geometry.Point
	displayState []vocabulary.DisplayState
	boundingRect []geometry.Rect

	textElements map[vocabulary.DecorationId]AttrsTextElement
}

func newDecorations() *Decorations {
	return &Decorations{textElements: make(map[vocabulary.DecorationId]AttrsTextElement)}
}

// Len returns the number of decorations currently stored.
func (d *Decorations) Len() int { return len(d.typ) }

// Add appends a new decoration and returns its id.
func (d *Decorations) Add(dec Decoration) vocabulary.DecorationId {
	id := vocabulary.DecorationId(len(d.typ))
	d.typ = append(d.typ, dec.Type)
	d.size = append(d.size, dec.Size)
	d.position = append(d.position, dec.Position)
	d.displayState = append(d.displayState, dec.DisplayState)
	d.boundingRect = append(d.boundingRect, dec.BoundingRect)

	if dec.TextElement != nil {
		d.textElements[id] = *dec.TextElement
	}
	return id
}

// Get assembles the caller-facing view of the decoration at id.
func (d *Decorations) Get(id vocabulary.DecorationId) Decoration {
	dec := Decoration{
		Type:         d.typ[id],
		Size:         d.size[id],
		Position:     d.position[id],
		DisplayState: d.displayState[id],
		BoundingRect: d.boundingRect[id],
	}
	if attrs, ok := d.textElements[id]; ok {
		a := attrs
		dec.TextElement = &a
	}
	return dec
}

// SetPosition updates the position of id.
func (d *Decorations) SetPosition(id vocabulary.DecorationId, pos geometry.Point) {
	delta := pos.Add(-d.position[id].X, -d.position[id].Y)
	d.position[id] = pos
	d.boundingRect[id] = geometry.NewRect(
		d.boundingRect[id].P0.Add(delta.X, delta.Y),
		d.boundingRect[id].P1.Add(delta.X, delta.Y),
	)
}

// SetDisplayState updates the display state of id.
func (d *Decorations) SetDisplayState(id vocabulary.DecorationId, state vocabulary.DisplayState) {
	d.displayState[id] = state
}

// SwapAndDelete removes id by moving the last row into its slot. Returns
// the id that was relocated into id's slot, if any.
func (d *Decorations) SwapAndDelete(id vocabulary.DecorationId) (relocated *vocabulary.DecorationId) {
	last := vocabulary.DecorationId(len(d.typ) - 1)
	if id != last {
		d.typ[id] = d.typ[last]
		d.size[id] = d.size[last]
		d.position[id] = d.position[last]
		d.displayState[id] = d.displayState[last]
		d.boundingRect[id] = d.boundingRect[last]
		if attrs, ok := d.textElements[last]; ok {
			d.textElements[id] = attrs
			delete(d.textElements, last)
		} else {
			delete(d.textElements, id)
		}
		relocated = &last
	} else {
		delete(d.textElements, id)
	}

	d.typ = d.typ[:last]
	d.size = d.size[:last]
	d.position = d.position[:last]
	d.displayState = d.displayState[:last]
	d.boundingRect = d.boundingRect[:last]
	return relocated
}

// AllocatedSize reports the cap()-based memory footprint of the table.
func (d *Decorations) AllocatedSize() int {
	size := cap(d.typ)*8 + cap(d.size)*8 + cap(d.position)*16 +
		cap(d.displayState)*8 + cap(d.boundingRect)*32
	size += len(d.textElements) * 40
	return size
}
