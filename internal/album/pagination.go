package album

import (
	"errors"
	"fmt"

	"github.com/arcanaland/binder/internal/catalog"
)

// Page layout. A page holds PageCapacity slots laid out as a Columns x Rows grid.
const (
	Columns      = 3
	Rows         = 2
	PageCapacity = Columns * Rows
)

var ErrPageOutOfRange = errors.New("page out of range")

// PageCount returns ceil(len(slots) / capacity). A nil or empty collection has no pages.
func PageCount(c *catalog.Collection, capacity int) int {
	if c == nil || capacity <= 0 {
		return 0
	}
	return (len(c.Slots) + capacity - 1) / capacity
}

// SlotsForPage returns the slots of a page, always capacity long. Positions
// past the end of a short last page are Empty.
func SlotsForPage(c *catalog.Collection, page, capacity int) ([]catalog.Slot, error) {
	count := PageCount(c, capacity)
	if page < 0 || page >= count {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrPageOutOfRange, page, count)
	}

	start := page * capacity
	end := min(len(c.Slots), start+capacity)

	out := make([]catalog.Slot, capacity)
	copy(out, c.Slots[start:end])
	return out, nil
}

// GlobalIndex converts a page-local slot index to its collection-wide index
func GlobalIndex(page, local, capacity int) int {
	return page*capacity + local
}
