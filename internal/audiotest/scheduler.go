// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/K2976/Flow/mixer"
)

// Scheduler is a mixer.Scheduler driven by Advance instead of the wall
// clock.
type Scheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*timer
}

type timer struct {
	s     *Scheduler
	at    time.Duration
	f     func()
	done  bool
	order int
}

func NewScheduler() *Scheduler { return &Scheduler{} }

func (s *Scheduler) AfterFunc(d time.Duration, f func()) mixer.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	t := &timer{s: s, at: s.now + d, f: f, order: s.seq}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by d and runs every callback that came
// due, earliest first. Callbacks run on the calling goroutine without the
// scheduler lock held.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d

	var due []*timer
	keep := s.timers[:0]
	for _, t := range s.timers {
		switch {
		case t.done:
		case t.at <= s.now:
			t.done = true
			due = append(due, t)
		default:
			keep = append(keep, t)
		}
	}
	s.timers = keep
	s.mu.Unlock()

	slices.SortFunc(due, func(a, b *timer) int {
		return cmp.Or(cmp.Compare(a.at, b.at), cmp.Compare(a.order, b.order))
	})

	for _, t := range due {
		t.f()
	}
}

// Pending counts callbacks that have neither fired nor been stopped.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.timers {
		if !t.done {
			n++
		}
	}
	return n
}

func (t *timer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	return true
}
