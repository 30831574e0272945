package entity

// Timer is an optional countdown in seconds of simulated time
type Timer struct {
	Remaining float64
	Active    bool
}

// EffectTimers holds one slot per timed power-up; golden has no timer
type EffectTimers struct {
	Speed    Timer
	Strength Timer
	Stamina  Timer
}

// slot returns the timer for a timed power-up, nil for untimed kinds
func (t *EffectTimers) slot(kind PowerupType) *Timer {
	switch kind {
	case PowerupSpeed:
		return &t.Speed
	case PowerupStrength:
		return &t.Strength
	case PowerupStamina:
		return &t.Stamina
	default:
		return nil
	}
}

// Get returns the timer state for a kind
func (t *EffectTimers) Get(kind PowerupType) Timer {
	if s := t.slot(kind); s != nil {
		return *s
	}
	return Timer{}
}

// timedKinds is the iteration order for per-tick decrement
var timedKinds = [...]PowerupType{PowerupSpeed, PowerupStrength, PowerupStamina}
