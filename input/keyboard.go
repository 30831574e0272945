package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/engine"
	"github.com/lixenwraith/munchies/session"
	"github.com/lixenwraith/munchies/vmath"
)

// Keyboard turns terminal key events into held directions and a dash trigger
// Terminals report no key release, so a direction is held while its key keeps repeating
type Keyboard struct {
	mu    sync.Mutex
	table *KeyTable
	clock engine.TimeProvider

	held map[vmath.Vec3F]time.Time // direction -> last press
	dash bool
}

var (
	_ engine.InputSource = (*Keyboard)(nil)
	_ engine.Resetter    = (*Keyboard)(nil)
)

// NewKeyboard creates a keyboard; nil table or clock use defaults
func NewKeyboard(table *KeyTable, clock engine.TimeProvider) *Keyboard {
	if table == nil {
		table = DefaultKeyTable()
	}
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &Keyboard{
		table: table,
		clock: clock,
		held:  make(map[vmath.Vec3F]time.Time),
	}
}

// HandleKey records motion and dash, and returns the command a key is bound to
// Called from the terminal poller goroutine
func (k *Keyboard) HandleKey(ev *tcell.EventKey) (session.Command, bool) {
	entry, ok := k.table.Lookup(ev)
	if !ok {
		return session.Command{}, false
	}

	switch entry.Behavior {
	case BehaviorMotion:
		k.mu.Lock()
		k.held[entry.Dir] = k.clock.Now()
		k.mu.Unlock()
	case BehaviorDash:
		k.mu.Lock()
		k.dash = true
		k.mu.Unlock()
	case BehaviorCommand:
		return entry.Command, true
	}
	return session.Command{}, false
}

// Poll returns the sum of held directions and consumes a pending dash
func (k *Keyboard) Poll() (vmath.Vec3F, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.clock.Now()
	var dir vmath.Vec3F
	for d, seen := range k.held {
		if now.Sub(seen) > constants.KeyHoldTimeout {
			delete(k.held, d)
			continue
		}
		dir = vmath.V3FAdd(dir, d)
	}

	dash := k.dash
	k.dash = false
	return dir, dash
}

// Reset releases every key
func (k *Keyboard) Reset() {
	k.mu.Lock()
	clear(k.held)
	k.dash = false
	k.mu.Unlock()
}
