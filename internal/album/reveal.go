package album

import "github.com/arcanaland/binder/internal/catalog"

// RevealMap records which cards show their back face, keyed by global slot
// index. Absent entries are unrevealed. Only card slots are ever present.
type RevealMap map[int]bool

// Revealed reports whether the card at index shows its back face
func (r RevealMap) Revealed(index int) bool {
	return r[index]
}

// Toggle flips the reveal state of index. Empty or out-of-range slots are
// left alone. It reports whether the map changed.
func (r RevealMap) Toggle(slots []catalog.Slot, index int) bool {
	if index < 0 || index >= len(slots) || slots[index].Empty() {
		return false
	}
	if r[index] {
		delete(r, index)
	} else {
		r[index] = true
	}
	return true
}

func (r RevealMap) clone() RevealMap {
	out := make(RevealMap, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
