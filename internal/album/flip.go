package album

// Orientation of a page in the book
type Orientation int

const (
	Unflipped Orientation = iota
	Flipped
)

func (o Orientation) String() string {
	if o == Flipped {
		return "Flipped"
	}
	return "Unflipped"
}

// Direction of an in-flight page turn
type Direction int

const (
	None Direction = iota
	Forward
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// pageTurn is a page turn waiting for its settle point
type pageTurn struct {
	gen   uint64
	dir   Direction
	from  int
	timer Timer
}

// flipper tracks the current page, per-page orientation and the album-wide
// animation lock. The lock is held exactly while pending is non-nil.
type flipper struct {
	current int
	flipped []Orientation
	pending *pageTurn
	gen     uint64
}

func (f *flipper) animating() bool {
	return f.pending != nil
}

func (f *flipper) canAdvance() bool {
	return !f.animating() && f.current < len(f.flipped)-1
}

func (f *flipper) canRetreat() bool {
	return !f.animating() && f.current > 0
}

// begin takes the lock for a turn in dir. Callers check canAdvance/canRetreat first.
func (f *flipper) begin(dir Direction) *pageTurn {
	f.gen++
	f.pending = &pageTurn{gen: f.gen, dir: dir, from: f.current}
	return f.pending
}

// commit applies the pending turn if gen still identifies it and releases the
// lock. A stale gen is ignored.
func (f *flipper) commit(gen uint64) bool {
	turn := f.pending
	if turn == nil || turn.gen != gen {
		return false
	}

	switch turn.dir {
	case Forward:
		f.flipped[turn.from] = Flipped
		f.current = turn.from + 1
	case Backward:
		f.current = turn.from - 1
		f.flipped[f.current] = Unflipped
	}
	f.pending = nil
	return true
}

// reset cancels any pending turn and resizes the book to pages, all Unflipped.
// It reports whether a pending turn was cancelled.
func (f *flipper) reset(pages int) bool {
	cancelled := false
	if f.pending != nil {
		if f.pending.timer != nil {
			f.pending.timer.Stop()
		}
		cancelled = true
	}
	f.gen++
	f.pending = nil
	f.current = 0
	f.flipped = make([]Orientation, pages)
	return cancelled
}

func (f *flipper) direction() Direction {
	if f.pending == nil {
		return None
	}
	return f.pending.dir
}
