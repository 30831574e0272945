package engine

import (
	"container/heap"
	"time"
)

// Scheduler is the wall-clock deferred callback queue
// Callbacks run on the loop goroutine from Poll, in due order, ties in scheduling order
// There is no cancellation; callbacks must tolerate stale targets
type Scheduler struct {
	clock TimeProvider
	queue callbackQueue
	seq   uint64
}

type scheduledCallback struct {
	due time.Time
	seq uint64
	fn  func()
}

// callbackQueue implements heap.Interface ordered by (due, seq)
type callbackQueue []scheduledCallback

func (q callbackQueue) Len() int { return len(q) }
func (q callbackQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}
func (q callbackQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *callbackQueue) Push(x any)   { *q = append(*q, x.(scheduledCallback)) }
func (q *callbackQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = scheduledCallback{}
	*q = old[:n-1]
	return item
}

// NewScheduler creates an empty queue on the given wall clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules fn to run once at least d of wall time has passed
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.seq++
	heap.Push(&s.queue, scheduledCallback{due: s.clock.Now().Add(d), seq: s.seq, fn: fn})
}

// Poll runs every callback due at or before now and returns how many ran
// Callbacks scheduled during Poll that are already due also run
func (s *Scheduler) Poll() int {
	now := s.clock.Now()
	ran := 0
	for len(s.queue) > 0 && !s.queue[0].due.After(now) {
		cb := heap.Pop(&s.queue).(scheduledCallback)
		cb.fn()
		ran++
	}
	return ran
}

// Len returns the number of pending callbacks
func (s *Scheduler) Len() int {
	return len(s.queue)
}
