package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcanaland/binder/internal/album"
	"github.com/arcanaland/binder/internal/card"
)

const (
	cellWidth  = 24
	cellHeight = 7
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5F5F5")).Background(lipgloss.Color("#5A4FCF")).Padding(0, 1)
	descStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"})
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"})

	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(cellWidth).
			Height(cellHeight).
			Padding(0, 1)
	emptyCellStyle = cellStyle.Copy().
			BorderForeground(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"})
)

var rarityColors = map[card.Rarity]lipgloss.Color{
	card.Common:    lipgloss.Color("#9E9E9E"),
	card.Uncommon:  lipgloss.Color("#4CAF50"),
	card.Rare:      lipgloss.Color("#2196F3"),
	card.Epic:      lipgloss.Color("#9C27B0"),
	card.Legendary: lipgloss.Color("#FFA000"),
}

func (m *Model) View() string {
	v := m.ctrl.View()
	if v.CollectionID == "" {
		return "No collections in catalog.\n\n" + m.help.View(m.keys) + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %d/%d", v.CollectionName, m.colIndex+1, len(m.collections))))
	b.WriteString("\n")
	if v.Description != "" {
		desc := descStyle
		if m.width > 4 {
			desc = desc.Copy().Width(m.width - 4)
		}
		b.WriteString(desc.Render(v.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if v.PageCount == 0 {
		b.WriteString(dimStyle.Render("This collection has no cards yet."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderSpread(v))
		b.WriteString("\n")
		m.pager.SetTotalPages(v.PageCount)
		m.pager.Page = v.Page
		fmt.Fprintf(&b, "%s  page %d/%d\n", m.pager.View(), v.Page+1, v.PageCount)
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// renderSpread draws the visible page, squeezed while a page turn is in
// flight. Before the commit the leaving page narrows; after it the arriving
// page widens back out.
func (m *Model) renderSpread(v album.View) string {
	grid := renderGrid(v.Front)
	if m.anim == nil {
		return grid
	}

	progress := float64(m.anim.frame) / animFrames
	scale := math.Abs(1 - 2*progress)
	full := lipgloss.Width(grid)
	width := int(float64(full) * scale)
	if width < 1 {
		width = 1
	}

	squeezed := lipgloss.NewStyle().MaxWidth(width).Render(grid)
	if m.anim.dir == album.Backward {
		return lipgloss.PlaceHorizontal(full, lipgloss.Right, squeezed)
	}
	return squeezed
}

func renderGrid(slots []album.SlotView) string {
	rows := make([]string, 0, album.Rows)
	for r := 0; r < album.Rows; r++ {
		cells := make([]string, 0, album.Columns)
		for c := 0; c < album.Columns; c++ {
			i := r*album.Columns + c
			if i >= len(slots) {
				break
			}
			cells = append(cells, renderCell(slots[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(s album.SlotView) string {
	if s.Empty {
		return emptyCellStyle.Render(dimStyle.Render(fmt.Sprintf("%d  ·", s.Local+1)))
	}

	color := rarityColors[s.Card.Rarity]
	style := cellStyle.Copy().BorderForeground(color)
	name := lipgloss.NewStyle().Bold(true).Render(truncate(s.Card.Name, cellWidth-2))

	var lines []string
	if s.Revealed {
		lines = append(lines, name)
		for _, a := range s.Card.Attributes {
			if len(lines) >= cellHeight {
				break
			}
			lines = append(lines, truncate(fmt.Sprintf("%s: %s", card.TraitLabel(a.Trait), a.Value), cellWidth-2))
		}
		if len(s.Card.Attributes) == 0 {
			lines = append(lines, dimStyle.Render("no traits"))
		}
	} else {
		lines = append(lines,
			fmt.Sprintf("%d", s.Local+1),
			name,
			lipgloss.NewStyle().Foreground(color).Render(s.Card.Rarity.String()),
			"",
			dimStyle.Render(fmt.Sprintf("#%d", s.Global+1)),
		)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
