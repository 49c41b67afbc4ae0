package viz

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg carries the generation of the schedule that produced it.
type tickMsg struct {
	gen uint64
}

// teaScheduler feeds playback ticks through the bubbletea event loop. A
// schedule is a chain of tea.Tick commands; each delivered tickMsg runs the
// tick and, if the schedule survived it, arms the next one. Messages from a
// cancelled schedule are dropped.
type teaScheduler struct {
	mu       sync.Mutex
	gen      uint64
	interval time.Duration
	tick     func()
	armed    bool
}

func newTeaScheduler() *teaScheduler { return &teaScheduler{} }

func (s *teaScheduler) Schedule(interval time.Duration, tick func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	gen := s.gen
	s.interval, s.tick, s.armed = interval, tick, true

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen == gen {
			s.gen++
			s.tick, s.armed = nil, false
		}
	}
}

// pending returns the command that starts a freshly armed schedule, or nil.
func (s *teaScheduler) pending() tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.armed {
		return nil
	}
	s.armed = false
	return s.nextLocked()
}

// deliver runs the tick for msg and returns the command for the next one.
func (s *teaScheduler) deliver(msg tickMsg) tea.Cmd {
	s.mu.Lock()
	if msg.gen != s.gen || s.tick == nil {
		s.mu.Unlock()
		return nil
	}
	tick := s.tick
	s.mu.Unlock()

	tick()

	s.mu.Lock()
	defer s.mu.Unlock()
	if msg.gen != s.gen || s.tick == nil {
		return nil
	}
	return s.nextLocked()
}

func (s *teaScheduler) nextLocked() tea.Cmd {
	gen, d := s.gen, s.interval
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}
