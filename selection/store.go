package selection

import (
	"github.com/rs/xid"

	"github.com/sarchlab/logikedit/message"
	"github.com/sarchlab/logikedit/vocabulary"
)

// Store is the SelectionStore of spec.md §4.5: a map from SelectionId to
// Selection that broadcasts every InfoMessage it receives to every
// contained selection.
type Store struct {
	nextID     vocabulary.SelectionId
	selections map[vocabulary.SelectionId]*Selection
}

// NewStore returns an empty Store. Its id counter is seeded from
// github.com/rs/xid's globally-unique, lock-free generator — spec.md
// §4.5 asks for a "monotonically incrementing counter whose seed is drawn
// from a 31-bit random source", and xid's low 31 bits give exactly that
// without a hand-rolled PRNG.
func NewStore() *Store {
	raw := xid.New().Bytes()
	var seed31 uint32
	for _, b := range raw {
		seed31 = seed31<<8 ^ uint32(b)
	}
	seed31 &= 0x7fffffff

	return &Store{
		nextID:     vocabulary.SelectionId(seed31),
		selections: make(map[vocabulary.SelectionId]*Selection),
	}
}

// Create allocates a new, empty Selection and returns its id.
func (st *Store) Create() vocabulary.SelectionId {
	st.nextID++
	id := st.nextID
	st.selections[id] = New()
	return id
}

// Destroy removes the selection registered under id, if any.
func (st *Store) Destroy(id vocabulary.SelectionId) {
	delete(st.selections, id)
}

// Get returns the selection registered under id.
func (st *Store) Get(id vocabulary.SelectionId) (*Selection, bool) {
	s, ok := st.selections[id]
	return s, ok
}

// Len returns the number of selections currently stored.
func (st *Store) Len() int { return len(st.selections) }

// Submit implements message.Consumer, fanning msg out to every contained
// selection.
func (st *Store) Submit(msg message.Info) {
	for _, s := range st.selections {
		s.Submit(msg)
	}
}
