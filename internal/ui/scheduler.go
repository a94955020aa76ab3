package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcanaland/binder/internal/album"
)

// fireMsg delivers a scheduled album callback back into Update
type fireMsg struct {
	id uint64
}

// teaScheduler turns album timers into tea.Tick commands so callbacks run on
// the program's update goroutine. Stopping a timer forgets its callback; the
// tick still arrives and is ignored.
type teaScheduler struct {
	seq     uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{pending: make(map[uint64]func())}
}

func (s *teaScheduler) Schedule(d time.Duration, fire func()) album.Timer {
	s.seq++
	id := s.seq
	s.pending[id] = fire
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return fireMsg{id: id}
	}))
	return teaTimer{s: s, id: id}
}

// fire runs the callback for id if it is still pending
func (s *teaScheduler) fire(id uint64) bool {
	f, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	f()
	return true
}

// drain returns the commands queued since the last call
func (s *teaScheduler) drain() []tea.Cmd {
	cmds := s.queued
	s.queued = nil
	return cmds
}

type teaTimer struct {
	s  *teaScheduler
	id uint64
}

func (t teaTimer) Stop() bool {
	if _, ok := t.s.pending[t.id]; !ok {
		return false
	}
	delete(t.s.pending, t.id)
	return true
}
