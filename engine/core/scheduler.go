package core

import (
	"container/heap"
	"time"
)

// Timer is a delayed callback bound to an entity generation. A zero
// Target means the timer is not tied to any entity.
type Timer struct {
	At     time.Time
	Target EntityID
	Gen    uint64
	Run    func()

	seq uint64
}

type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].At.Equal(h[j].At) {
		return h[i].seq < h[j].seq
	}
	return h[i].At.Before(h[j].At)
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(*Timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// Scheduler is an ordered queue of delayed effects. Callbacks whose target
// was removed or changed generation are dropped instead of run.
type Scheduler struct {
	timers timerHeap
	seq    uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// At queues fn to run once the clock reaches at
func (s *Scheduler) At(at time.Time, target EntityID, gen uint64, fn func()) {
	s.seq++
	heap.Push(&s.timers, &Timer{At: at, Target: target, Gen: gen, Run: fn, seq: s.seq})
}

// Pump runs every due timer in (time, insertion) order. valid reports
// whether a target still exists at the captured generation. Returns the
// number of callbacks run; stale timers are discarded silently.
func (s *Scheduler) Pump(now time.Time, valid func(EntityID, uint64) bool) int {
	ran := 0
	for len(s.timers) > 0 && !s.timers[0].At.After(now) {
		t := heap.Pop(&s.timers).(*Timer)
		if t.Target != 0 && valid != nil && !valid(t.Target, t.Gen) {
			continue
		}
		t.Run()
		ran++
	}
	return ran
}

// Len returns the number of pending timers
func (s *Scheduler) Len() int {
	return len(s.timers)
}

// Clear drops every pending timer
func (s *Scheduler) Clear() {
	s.timers = s.timers[:0]
}
