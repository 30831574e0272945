package session

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrQuit ends Run after a quit command
var ErrQuit = errors.New("quit requested")

// FrameHook runs after every frame on the loop goroutine
type FrameHook func(m *Manager)

// Loop drives a Manager at a fixed frame interval on the pausable game clock
type Loop struct {
	manager  *Manager
	interval time.Duration
	hooks    []FrameHook
	crash    func(r any)
}

// NewLoop creates a loop ticking every interval
func NewLoop(m *Manager, interval time.Duration) *Loop {
	return &Loop{manager: m, interval: interval}
}

// OnFrame registers a hook, e.g. rendering or spectator broadcast
func (l *Loop) OnFrame(hook FrameHook) {
	l.hooks = append(l.hooks, hook)
}

// SetCrashHandler installs a panic handler for the loop goroutine
func (l *Loop) SetCrashHandler(fn func(r any)) {
	l.crash = fn
}

// Run blocks until ctx is done or a quit command is processed
func (l *Loop) Run(ctx context.Context) error {
	if l.crash != nil {
		defer func() {
			if r := recover(); r != nil {
				l.crash(r)
			}
		}()
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	clock := l.manager.Clock()
	last := clock.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			now := clock.Now()
			l.manager.Frame(now.Sub(last).Seconds())
			last = now

			for _, hook := range l.hooks {
				hook(l.manager)
			}
			if l.manager.Quitting() {
				return ErrQuit
			}
		}
	}
}
