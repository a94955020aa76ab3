// Package ui is the interactive terminal surface of the album.
package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcanaland/binder/internal/album"
	"github.com/arcanaland/binder/internal/catalog"
)

// Number of frames drawn over a full page turn
const animFrames = 8

// Options configures the album model
type Options struct {
	Collection   string // Initial collection, the first one when empty or unknown
	FlipDuration time.Duration
	Logger       *slog.Logger
}

// frameMsg advances the page turn animation
type frameMsg struct {
	id uint64
}

// turnAnim tracks the visual page turn. It runs for the full flip duration,
// while the album commits at the midpoint.
type turnAnim struct {
	id    uint64
	frame int
	dir   album.Direction
}

// Model is the bubbletea model for the album
type Model struct {
	collections []*catalog.Collection
	colIndex    int

	ctrl  *album.Controller
	sched *teaScheduler
	log   *slog.Logger

	anim   *turnAnim
	animID uint64

	keys     keyMap
	help     help.Model
	pager    paginator.Model
	showHelp bool

	width  int
	height int

	lastCard string // ID of the most recently revealed card
	status   string
	copyFn   func(string) error
}

// New creates the album model over a loaded catalog
func New(cat *catalog.Catalog, opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = 1
	pager.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "252"}).Render("•")
	pager.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "250", Dark: "238"}).Render("•")

	m := &Model{
		collections: cat.Collections(),
		sched:       newTeaScheduler(),
		log:         log,
		keys:        defaultKeys(),
		help:        help.New(),
		pager:       pager,
		copyFn:      clipboard.WriteAll,
	}
	m.ctrl = album.New(cat, album.Options{
		FlipDuration: opts.FlipDuration,
		Scheduler:    m.sched,
		Logger:       log,
	})

	if len(m.collections) > 0 {
		start := 0
		for i, c := range m.collections {
			if c.ID == opts.Collection {
				start = i
			}
		}
		if opts.Collection != "" && m.collections[start].ID != opts.Collection {
			m.status = fmt.Sprintf("unknown collection %q", opts.Collection)
		}
		m.switchTo(start)
	}
	return m
}

// Controller exposes the album controller
func (m *Model) Controller() *album.Controller {
	return m.ctrl
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case fireMsg:
		m.sched.fire(msg.id)

	case frameMsg:
		if m.anim == nil || m.anim.id != msg.id {
			break
		}
		m.anim.frame++
		if m.anim.frame >= animFrames {
			m.anim = nil
			break
		}
		cmds = append(cmds, m.frameTick(msg.id))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
		case key.Matches(msg, m.keys.Next):
			if m.ctrl.NextPage() {
				cmds = append(cmds, m.startAnim(album.Forward))
			}
		case key.Matches(msg, m.keys.Prev):
			if m.ctrl.PrevPage() {
				cmds = append(cmds, m.startAnim(album.Backward))
			}
		case key.Matches(msg, m.keys.Toggle):
			m.toggle(int(msg.String()[0] - '1'))
		case key.Matches(msg, m.keys.NextCollection):
			m.cycle(1)
		case key.Matches(msg, m.keys.PrevCollection):
			m.cycle(-1)
		case key.Matches(msg, m.keys.Copy):
			m.copyCard()
		}
	}

	cmds = append(cmds, m.sched.drain()...)
	return m, tea.Batch(cmds...)
}

func (m *Model) switchTo(index int) {
	col := m.collections[index]
	if m.ctrl.SwitchCollection(col.ID) != album.SwitchOK {
		m.status = fmt.Sprintf("unknown collection %q", col.ID)
		return
	}
	m.colIndex = index
	m.anim = nil
	m.lastCard = ""
}

func (m *Model) cycle(delta int) {
	n := len(m.collections)
	if n == 0 {
		return
	}
	m.status = ""
	m.switchTo(((m.colIndex+delta)%n + n) % n)
}

func (m *Model) toggle(local int) {
	if !m.ctrl.ToggleCard(local) {
		return
	}
	v := m.ctrl.View()
	if local < len(v.Front) && v.Front[local].Revealed {
		m.lastCard = v.Front[local].Card.ID
	}
}

func (m *Model) copyCard() {
	if m.lastCard == "" {
		m.status = "flip a card first"
		return
	}
	if err := m.copyFn(m.lastCard); err != nil {
		m.log.Warn("clipboard write failed", "error", err)
		m.status = "clipboard unavailable"
		return
	}
	m.status = fmt.Sprintf("copied %s", m.lastCard)
}

func (m *Model) startAnim(dir album.Direction) tea.Cmd {
	m.animID++
	m.anim = &turnAnim{id: m.animID, dir: dir}
	return m.frameTick(m.animID)
}

func (m *Model) frameTick(id uint64) tea.Cmd {
	return tea.Tick(m.ctrl.FlipDuration()/animFrames, func(time.Time) tea.Msg {
		return frameMsg{id: id}
	})
}
