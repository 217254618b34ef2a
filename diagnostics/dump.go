// Package diagnostics renders a Layout's contents to an io.Writer, for
// operator-facing debugging. It replaces the teacher's ad hoc
// fmt.Printf("%+v\n", ...) dump in core/util.go's PrintState with a real
// table renderer — this module carries no simulation state to print, but
// an editable circuit's three tables deserve the same treatment.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/vocabulary"
)

// DumpLayout renders every logic item, decoration, and wire in l as three
// tables to w, in the style of the teacher's PrintState: one table per
// table, title set, row per entity.
func DumpLayout(w io.Writer, l *layout.Layout) {
	dumpLogicItems(w, l.LogicItems)
	fmt.Fprintln(w)
	dumpDecorations(w, l.Decorations)
	fmt.Fprintln(w)
	dumpWires(w, l.Wires)
}

func dumpLogicItems(w io.Writer, items *layout.LogicItems) {
	t := table.NewWriter()
	t.SetTitle("Logic Items")
	t.AppendHeader(table.Row{"Id", "Type", "Position", "Orientation", "Inputs", "Outputs", "State"})

	for i := 0; i < items.Len(); i++ {
		id := vocabulary.LogicItemId(i)
		item := items.Get(id)
		t.AppendRow(table.Row{
			id, item.Type, item.Position, item.Orientation,
			item.InputCount, item.OutputCount, item.DisplayState,
		})
	}
	fmt.Fprintln(w, t.Render())
}

func dumpDecorations(w io.Writer, decs *layout.Decorations) {
	t := table.NewWriter()
	t.SetTitle("Decorations")
	t.AppendHeader(table.Row{"Id", "Type", "Position", "Size", "State"})

	for i := 0; i < decs.Len(); i++ {
		id := vocabulary.DecorationId(i)
		dec := decs.Get(id)
		t.AppendRow(table.Row{id, dec.Type, dec.Position, dec.Size, dec.DisplayState})
	}
	fmt.Fprintln(w, t.Render())
}

func dumpWires(w io.Writer, wires *layout.Wires) {
	t := table.NewWriter()
	t.SetTitle("Wires")
	t.AppendHeader(table.Row{"WireId", "State", "Segments", "HasInput", "OutputCount"})

	for i := 0; i < wires.Len(); i++ {
		id := vocabulary.WireId(i)
		tree := wires.Tree(id)
		t.AppendRow(table.Row{id, wires.DisplayState(id), tree.Len(), tree.HasInput(), tree.OutputCount()})
	}
	fmt.Fprintln(w, t.Render())
}

// AllocatedSizeReport is one row of the allocated_size() memory accounting
// of spec.md §4.4 — a component name and its AllocatedSize() in bytes —
// rendered by DumpAllocatedSizes.
type AllocatedSizeReport struct {
	Name  string
	Bytes int
}

// DumpAllocatedSizes renders a table of component name -> AllocatedSize(),
// the memory-accounting view spec.md §4.4's "An allocated_size() reporter
// supports memory accounting" calls for.
func DumpAllocatedSizes(w io.Writer, rows []AllocatedSizeReport) {
	t := table.NewWriter()
	t.SetTitle("Allocated Size")
	t.AppendHeader(table.Row{"Component", "Bytes"})

	total := 0
	for _, r := range rows {
		t.AppendRow(table.Row{r.Name, r.Bytes})
		total += r.Bytes
	}
	t.AppendFooter(table.Row{"Total", total})
	fmt.Fprintln(w, t.Render())
}
