package ptnet

import (
	"fmt"
	"math"
)

// MarkingEntry is the token count of one place.
type MarkingEntry struct {
	Place  PlaceRef
	Tokens uint
}

// MarkingVector is a snapshot of the marking of every place, in canonical
// place order. Later mutations of the net do not change it.
type MarkingVector struct {
	entries []MarkingEntry
	index   map[PlaceRef]int
}

// Get returns the tokens of p and whether p was part of the snapshot.
func (m *MarkingVector) Get(p PlaceRef) (uint, bool) {
	i, ok := m.index[p]
	if !ok {
		return 0, false
	}
	return m.entries[i].Tokens, true
}

func (m *MarkingVector) Len() int { return len(m.entries) }

func (m *MarkingVector) Entries() []MarkingEntry {
	out := make([]MarkingEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Total is the sum of all tokens in the vector. A sum that does not fit in a
// uint fails with ErrOverflow.
func (m *MarkingVector) Total() (uint, error) {
	var total uint
	for _, e := range m.entries {
		if e.Tokens > math.MaxUint-total {
			return 0, fmt.Errorf("%w: total marking of %d places", ErrOverflow, len(m.entries))
		}
		total += e.Tokens
	}
	return total, nil
}
