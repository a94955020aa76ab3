package album

import (
	"fmt"
	"strings"

	"github.com/arcanaland/binder/internal/card"
	"github.com/arcanaland/binder/internal/catalog"
)

// SlotView is one grid position as the rendering surface sees it
type SlotView struct {
	Global   int
	Local    int
	Card     *card.Card
	Empty    bool
	Revealed bool
}

// View is the render model of the album
type View struct {
	CollectionID   string
	CollectionName string
	Description    string
	Page           int
	PageCount      int
	Front          []SlotView // Visible page
	Back           []SlotView // Next page's front, nil on the last page
	Flipped        []Orientation
	Animating      bool
	Turning        Direction
	CanGoPrev      bool
	CanGoNext      bool
}

// Project maps a collection and album state to a View. It has no side effects
// and returns fresh slices on every call.
func Project(c *catalog.Collection, s State) View {
	if c == nil {
		return View{}
	}

	pages := PageCount(c, PageCapacity)
	v := View{
		CollectionID:   c.ID,
		CollectionName: c.Name,
		Description:    c.Description,
		Page:           s.Page,
		PageCount:      pages,
		Flipped:        append([]Orientation(nil), s.Flipped...),
		Animating:      s.Animating,
		Turning:        s.Turning,
		CanGoPrev:      !s.Animating && s.Page > 0,
		CanGoNext:      !s.Animating && s.Page < pages-1,
	}
	v.Front = projectPage(c, s, s.Page)
	if s.Page+1 < pages {
		v.Back = projectPage(c, s, s.Page+1)
	}
	return v
}

func projectPage(c *catalog.Collection, s State, page int) []SlotView {
	slots, err := SlotsForPage(c, page, PageCapacity)
	if err != nil {
		return nil
	}
	out := make([]SlotView, len(slots))
	for i, slot := range slots {
		global := GlobalIndex(page, i, PageCapacity)
		out[i] = SlotView{
			Global:   global,
			Local:    i,
			Card:     slot.Card,
			Empty:    slot.Empty(),
			Revealed: !slot.Empty() && s.Revealed.Revealed(global),
		}
	}
	return out
}

// Label is a one-line description of the slot
func (sv SlotView) Label() string {
	switch {
	case sv.Empty:
		return "(empty)"
	case sv.Revealed:
		parts := make([]string, 0, len(sv.Card.Attributes))
		for _, a := range sv.Card.Attributes {
			parts = append(parts, a.Trait+"="+a.Value)
		}
		return fmt.Sprintf("%s {%s}", sv.Card.Name, strings.Join(parts, ", "))
	default:
		return fmt.Sprintf("%s [%s]", sv.Card.Name, sv.Card.Rarity)
	}
}

// String renders the view as plain text, one grid row per line
func (v View) String() string {
	if v.CollectionID == "" {
		return "(no collection)\n"
	}

	var b strings.Builder
	if v.PageCount == 0 {
		fmt.Fprintf(&b, "%s · no pages\n", v.CollectionName)
		return b.String()
	}
	fmt.Fprintf(&b, "%s · page %d/%d\n", v.CollectionName, v.Page+1, v.PageCount)
	for row := 0; row < Rows; row++ {
		cells := make([]string, 0, Columns)
		for col := 0; col < Columns; col++ {
			i := row*Columns + col
			if i < len(v.Front) {
				cells = append(cells, fmt.Sprintf("%d:%s", i+1, v.Front[i].Label()))
			}
		}
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString("\n")
	}

	flips := make([]string, len(v.Flipped))
	for i, o := range v.Flipped {
		if o == Flipped {
			flips[i] = "F"
		} else {
			flips[i] = "U"
		}
	}
	fmt.Fprintf(&b, "pages [%s] prev:%t next:%t", strings.Join(flips, ""), v.CanGoPrev, v.CanGoNext)
	if v.Animating {
		fmt.Fprintf(&b, " turning:%s", v.Turning)
	}
	b.WriteString("\n")
	return b.String()
}
