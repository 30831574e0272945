package engine

import (
	"sync"
	"time"
)

// PausableClock derives game time from a wall clock minus accumulated pauses
// Round timers run on game time; deferred callbacks stay on wall time
type PausableClock struct {
	mu sync.RWMutex

	source    TimeProvider
	startReal time.Time

	paused          bool
	pauseStart      time.Time     // wall time the current pause began
	totalPausedTime time.Duration // cumulative completed pauses
}

// NewPausableClock creates a running clock reading from source
func NewPausableClock(source TimeProvider) *PausableClock {
	return &PausableClock{
		source:    source,
		startReal: source.Now(),
	}
}

// Now returns current game time, frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	ref := pc.source.Now()
	if pc.paused {
		ref = pc.pauseStart
	}
	return ref.Add(-pc.totalPausedTime)
}

// Pause stops game time advancement, idempotent
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.source.Now()
}

// Resume continues game time advancement, idempotent
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// Toggle flips pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
