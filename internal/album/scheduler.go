package album

import "time"

// Timer is a handle to a scheduled callback
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer, false if it had already fired or been stopped.
	Stop() bool
}

// Scheduler runs a callback after a delay. Callbacks must be delivered on the
// goroutine that owns the Controller.
type Scheduler interface {
	Schedule(d time.Duration, fire func()) Timer
}

// Immediate fires every callback synchronously, ignoring the delay. Useful for
// headless navigation where no animation is shown.
var Immediate Scheduler = immediateScheduler{}

type immediateScheduler struct{}

func (immediateScheduler) Schedule(_ time.Duration, fire func()) Timer {
	fire()
	return firedTimer{}
}

type firedTimer struct{}

func (firedTimer) Stop() bool { return false }

// ManualScheduler is a fake clock. Callbacks fire only from Advance, in due
// order, on the calling goroutine.
type ManualScheduler struct {
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	due     time.Duration
	seq     uint64
	fire    func()
	stopped bool
	fired   bool
}

func (t *manualTask) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewManualScheduler returns a fake clock at time zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Schedule(d time.Duration, fire func()) Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTask{due: s.now + d, seq: s.seq, fire: fire}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by d, firing every callback that comes due.
// Callbacks scheduled while advancing fire too if they fall inside the window.
// It returns the number of callbacks fired.
func (s *ManualScheduler) Advance(d time.Duration) int {
	target := s.now + d
	fired := 0
	for {
		next := s.popDue(target)
		if next == nil {
			break
		}
		s.now = next.due
		next.fired = true
		next.fire()
		fired++
	}
	s.now = target
	return fired
}

// Now returns the elapsed fake time
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of callbacks waiting to fire
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (s *ManualScheduler) popDue(target time.Duration) *manualTask {
	best := -1
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.stopped || t.fired {
			continue
		}
		live = append(live, t)
	}
	s.tasks = live

	for i, t := range s.tasks {
		if t.due > target {
			continue
		}
		if best < 0 || t.due < s.tasks[best].due || (t.due == s.tasks[best].due && t.seq < s.tasks[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	t := s.tasks[best]
	s.tasks = append(s.tasks[:best], s.tasks[best+1:]...)
	return t
}
