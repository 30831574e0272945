package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond

	// CueAttack is the shared attack ramp for all cues
	CueAttack = 5 * time.Millisecond
)

// Collect Cue: sine ping
const (
	CollectFreq     = 800.0
	CollectDuration = 200 * time.Millisecond
	CollectGain     = 0.3
)

// Dash Cue: short saw burst
const (
	DashFreq     = 200.0
	DashDuration = 100 * time.Millisecond
	DashGain     = 0.2
)

// Explode Cue: low saw rumble
const (
	ExplodeFreq     = 100.0
	ExplodeDuration = 500 * time.Millisecond
	ExplodeGain     = 0.5
)

// Hit Cue: square thud
const (
	HitFreq     = 150.0
	HitDuration = 150 * time.Millisecond
	HitGain     = 0.3
)

// Powerup Cue: rising sine sweep
const (
	PowerupFreqStart   = 600.0
	PowerupFreqEnd     = 1200.0
	PowerupCueDuration = 300 * time.Millisecond
	PowerupGain        = 0.3
)
