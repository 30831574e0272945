package engine

import (
	"testing"
	"time"
)

// TestSchedulerRunsInDueOrder verifies callbacks fire by due time, ties in scheduling order
func TestSchedulerRunsInDueOrder(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	s := NewScheduler(mock)

	var order []string
	s.After(200*time.Millisecond, func() { order = append(order, "late") })
	s.After(100*time.Millisecond, func() { order = append(order, "first") })
	s.After(100*time.Millisecond, func() { order = append(order, "second") })

	if ran := s.Poll(); ran != 0 {
		t.Fatalf("Expected nothing due yet, ran %d", ran)
	}

	mock.Advance(150 * time.Millisecond)
	if ran := s.Poll(); ran != 2 {
		t.Fatalf("Expected 2 callbacks, ran %d", ran)
	}

	mock.Advance(time.Second)
	s.Poll()

	want := []string{"first", "second", "late"}
	for i := range want {
		if i >= len(order) || order[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, order)
		}
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", s.Len())
	}
}

// TestSchedulerChainedCallbacks verifies a callback can reschedule itself
func TestSchedulerChainedCallbacks(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	s := NewScheduler(mock)

	count := 0
	var step func()
	step = func() {
		count++
		if count < 3 {
			s.After(50*time.Millisecond, step)
		}
	}
	s.After(50*time.Millisecond, step)

	for i := 0; i < 5; i++ {
		mock.Advance(50 * time.Millisecond)
		s.Poll()
	}
	if count != 3 {
		t.Errorf("Expected 3 chained runs, got %d", count)
	}
}

// TestSchedulerZeroDelayRunsSamePoll verifies already-due work scheduled during Poll runs immediately
func TestSchedulerZeroDelayRunsSamePoll(t *testing.T) {
	s := NewScheduler(NewMockTimeProvider(testEpoch))

	ran := false
	s.After(0, func() {
		s.After(0, func() { ran = true })
	})
	if n := s.Poll(); n != 2 || !ran {
		t.Errorf("Expected both callbacks in one poll, ran=%d nested=%v", n, ran)
	}
}
