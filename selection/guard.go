package selection

import "github.com/sarchlab/logikedit/vocabulary"

// Guard is the RAII-style scoped selection of spec.md §4.5: it creates a
// fresh Selection in the store on construction and guarantees the
// selection is destroyed when Close runs, on every exit path including a
// panic unwind through a deferred call.
type Guard struct {
	store  *Store
	id     vocabulary.SelectionId
	closed bool
}

// NewGuard creates a fresh selection in store and returns a Guard owning
// it. Callers must defer g.Close().
func NewGuard(store *Store) *Guard {
	return &Guard{store: store, id: store.Create()}
}

// ID returns the guarded selection's id.
func (g *Guard) ID() vocabulary.SelectionId { return g.id }

// Selection returns the guarded Selection itself.
func (g *Guard) Selection() *Selection {
	s, _ := g.store.Get(g.id)
	return s
}

// Close destroys the guarded selection. Idempotent — calling it more than
// once (e.g. an explicit Close followed by a deferred one) is a no-op
// after the first call.
func (g *Guard) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.store.Destroy(g.id)
}
