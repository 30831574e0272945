package input

import (
	"sync"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/engine"
	"github.com/lixenwraith/munchies/vmath"
)

// Joystick is a virtual stick driven by pointer offsets from its centre
// Offsets are in pixels; screen y maps to arena z
type Joystick struct {
	mu   sync.Mutex
	dir  vmath.Vec3F
	dash bool
}

var _ engine.InputSource = (*Joystick)(nil)

func NewJoystick() *Joystick {
	return &Joystick{}
}

// Set moves the stick; travel is clamped to the stick radius and scaled to at most 1
func (j *Joystick) Set(dx, dy float64) {
	offset := vmath.V3FClampMag(vmath.Vec3F{X: dx, Z: dy}, constants.JoystickMaxDistance)

	j.mu.Lock()
	j.dir = vmath.V3FScale(offset, 1/constants.JoystickMaxDistance)
	j.mu.Unlock()
}

// Release recentres the stick
func (j *Joystick) Release() {
	j.mu.Lock()
	j.dir = vmath.Vec3F{}
	j.mu.Unlock()
}

// Dash queues a dash for the next poll
func (j *Joystick) Dash() {
	j.mu.Lock()
	j.dash = true
	j.mu.Unlock()
}

// Reset drops a queued dash; the stick keeps its deflection
func (j *Joystick) Reset() {
	j.mu.Lock()
	j.dash = false
	j.mu.Unlock()
}

func (j *Joystick) Poll() (vmath.Vec3F, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	dash := j.dash
	j.dash = false
	return j.dir, dash
}

// Mux merges several input sources
// The last source with a non-zero direction wins; any dash triggers
type Mux struct {
	sources []engine.InputSource
}

var (
	_ engine.InputSource = (*Mux)(nil)
	_ engine.Resetter    = (*Mux)(nil)
)

func NewMux(sources ...engine.InputSource) *Mux {
	return &Mux{sources: sources}
}

func (m *Mux) Poll() (vmath.Vec3F, bool) {
	var dir vmath.Vec3F
	dash := false
	for _, s := range m.sources {
		d, ds := s.Poll()
		if d != (vmath.Vec3F{}) {
			dir = d
		}
		dash = dash || ds
	}
	return dir, dash
}

// Reset forwards to every source that latches state
func (m *Mux) Reset() {
	for _, s := range m.sources {
		if r, ok := s.(engine.Resetter); ok {
			r.Reset()
		}
	}
}
