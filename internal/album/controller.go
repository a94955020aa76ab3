// Package album implements the paginated card album: pages of six slots that
// turn with a timed animation, and cards that flip independently of pages.
//
// A Controller owns all album state. It is not safe for concurrent use; the
// Scheduler it is given must deliver callbacks on the owning goroutine.
package album

import (
	"log/slog"
	"time"

	"github.com/arcanaland/binder/internal/catalog"
)

// DefaultFlipDuration is the full length of a page turn animation. Data
// commits at the midpoint.
const DefaultFlipDuration = 800 * time.Millisecond

// Source looks up collections by ID. *catalog.Catalog satisfies it.
type Source interface {
	Collection(id string) (*catalog.Collection, error)
}

// SwitchResult is the outcome of SwitchCollection
type SwitchResult int

const (
	SwitchOK SwitchResult = iota
	SwitchNotFound
)

func (r SwitchResult) String() string {
	if r == SwitchNotFound {
		return "not found"
	}
	return "ok"
}

// Options configures a Controller
type Options struct {
	FlipDuration time.Duration // Defaults to DefaultFlipDuration
	Scheduler    Scheduler     // Defaults to Immediate
	Logger       *slog.Logger
	OnChange     func(View) // Called with the new projection after every state change
}

// State is a snapshot of the album
type State struct {
	CollectionID string
	Page         int
	Flipped      []Orientation
	Revealed     RevealMap
	Animating    bool
	Turning      Direction
}

// Controller is the only writer of album state
type Controller struct {
	source    Source
	duration  time.Duration
	scheduler Scheduler
	log       *slog.Logger
	onChange  func(View)

	collection *catalog.Collection
	flip       flipper
	reveal     RevealMap
}

// New creates a controller with no collection selected
func New(source Source, opts Options) *Controller {
	c := &Controller{
		source:    source,
		duration:  opts.FlipDuration,
		scheduler: opts.Scheduler,
		log:       opts.Logger,
		onChange:  opts.OnChange,
		reveal:    RevealMap{},
	}
	if c.duration <= 0 {
		c.duration = DefaultFlipDuration
	}
	if c.scheduler == nil {
		c.scheduler = Immediate
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	return c
}

// FlipDuration returns the full page turn animation length
func (c *Controller) FlipDuration() time.Duration {
	return c.duration
}

// SettleDelay returns the delay between a page turn request and its commit
func (c *Controller) SettleDelay() time.Duration {
	return c.duration / 2
}

// Collection returns the current collection, nil before the first switch
func (c *Controller) Collection() *catalog.Collection {
	return c.collection
}

// PageCount returns the number of pages in the current collection
func (c *Controller) PageCount() int {
	return len(c.flip.flipped)
}

// SwitchCollection makes id the current collection and fully resets the album,
// cancelling any page turn in flight. An unknown id leaves state untouched.
func (c *Controller) SwitchCollection(id string) SwitchResult {
	col, err := c.source.Collection(id)
	if err != nil || col == nil {
		c.log.Debug("switch collection ignored", "collection", id, "error", err)
		return SwitchNotFound
	}

	pages := PageCount(col, PageCapacity)
	if c.flip.reset(pages) {
		c.log.Debug("page turn cancelled", "reason", "collection switch")
	}
	c.collection = col
	c.reveal = RevealMap{}

	c.log.Debug("switch collection", "collection", id, "pages", pages, "slots", len(col.Slots))
	c.emit()
	return SwitchOK
}

// NextPage requests a forward page turn. Requests at the last page or while a
// turn is in flight are dropped. It reports whether a turn was started.
func (c *Controller) NextPage() bool {
	if !c.flip.canAdvance() {
		c.log.Debug("page turn dropped", "direction", Forward, "page", c.flip.current, "animating", c.flip.animating())
		return false
	}
	c.beginTurn(Forward)
	return true
}

// PrevPage requests a backward page turn. Requests at the first page or while
// a turn is in flight are dropped. It reports whether a turn was started.
func (c *Controller) PrevPage() bool {
	if !c.flip.canRetreat() {
		c.log.Debug("page turn dropped", "direction", Backward, "page", c.flip.current, "animating", c.flip.animating())
		return false
	}
	c.beginTurn(Backward)
	return true
}

func (c *Controller) beginTurn(dir Direction) {
	turn := c.flip.begin(dir)
	gen := turn.gen
	c.log.Debug("page turn requested", "direction", dir, "page", turn.from)
	c.emit()

	timer := c.scheduler.Schedule(c.SettleDelay(), func() { c.commitTurn(gen) })
	if c.flip.pending == turn {
		turn.timer = timer
	}
}

func (c *Controller) commitTurn(gen uint64) {
	if !c.flip.commit(gen) {
		c.log.Debug("stale page turn ignored", "generation", gen)
		return
	}
	c.log.Debug("page turn committed", "page", c.flip.current)
	c.emit()
}

// ToggleCard flips the card at a page-local index of the current page. Empty
// and out-of-range slots are ignored. It reports whether state changed.
func (c *Controller) ToggleCard(local int) bool {
	if c.collection == nil || local < 0 || local >= PageCapacity {
		return false
	}
	index := GlobalIndex(c.flip.current, local, PageCapacity)
	if !c.reveal.Toggle(c.collection.Slots, index) {
		return false
	}
	c.log.Debug("card toggled", "index", index, "revealed", c.reveal.Revealed(index))
	c.emit()
	return true
}

// State returns a copy of the current album state
func (c *Controller) State() State {
	s := State{
		Page:      c.flip.current,
		Flipped:   append([]Orientation(nil), c.flip.flipped...),
		Revealed:  c.reveal.clone(),
		Animating: c.flip.animating(),
		Turning:   c.flip.direction(),
	}
	if c.collection != nil {
		s.CollectionID = c.collection.ID
	}
	return s
}

// View projects the current state
func (c *Controller) View() View {
	return Project(c.collection, c.State())
}

func (c *Controller) emit() {
	if c.onChange != nil {
		c.onChange(c.View())
	}
}
