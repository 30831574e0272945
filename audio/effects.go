package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/engine"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave, optionally sweeping frequency exponentially
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a constant-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding exponentially from freq to endFreq over duration
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) currentFreq() float64 {
	if o.endFreq == o.freq || o.freq <= 0 || o.duration == 0 {
		return o.freq
	}
	t := float64(o.position) / float64(o.duration)
	return o.freq * math.Pow(o.endFreq/o.freq, t)
}

// waveSample evaluates one period of w at phase in [0, 1)
func waveSample(w WaveType, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for n = range samples {
		if o.position >= o.duration {
			return n, n > 0
		}
		v := waveSample(o.wave, o.phase)
		samples[n] = [2]float64{v, v}

		_, o.phase = math.Modf(o.phase + o.currentFreq()/float64(o.rate))
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release ramp ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := range samples[:n] {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		gain := e.gainAt(e.position)
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

// gainAt is the envelope level at sample pos; release wins over attack when they overlap
func (e *envelope) gainAt(pos int) float64 {
	if e.releaseSamples > 0 && pos >= e.totalSamples-e.releaseSamples {
		return max(0, float64(e.totalSamples-pos)/float64(e.releaseSamples))
	}
	if e.attackSamples > 0 && pos < e.attackSamples {
		return float64(pos) / float64(e.attackSamples)
	}
	return 1
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a gain stage; zero or negative volume is silent
// math.Log2(0) is -Inf, so silence is flagged instead of computed
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// cueVoice describes one synthesized cue
type cueVoice struct {
	wave     WaveType
	freq     float64
	endFreq  float64
	duration time.Duration
	gain     float64
}

var cueVoices = map[engine.Cue]cueVoice{
	engine.CueCollect: {WaveSine, constants.CollectFreq, constants.CollectFreq, constants.CollectDuration, constants.CollectGain},
	engine.CueDash:    {WaveSaw, constants.DashFreq, constants.DashFreq, constants.DashDuration, constants.DashGain},
	engine.CueExplode: {WaveSaw, constants.ExplodeFreq, constants.ExplodeFreq, constants.ExplodeDuration, constants.ExplodeGain},
	engine.CueHit:     {WaveSquare, constants.HitFreq, constants.HitFreq, constants.HitDuration, constants.HitGain},
	engine.CuePowerup: {WaveSine, constants.PowerupFreqStart, constants.PowerupFreqEnd, constants.PowerupCueDuration, constants.PowerupGain},
}

// CreateCue synthesizes a cue, nil for unknown cues
// Release spans everything after the attack so each cue decays to silence
func CreateCue(cue engine.Cue, cfg *AudioConfig) beep.Streamer {
	v, ok := cueVoices[cue]
	if !ok {
		return nil
	}
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(v.freq, v.endFreq, v.duration, v.wave, rate)
	shaped := NewEnvelope(osc, v.duration, constants.CueAttack, v.duration-constants.CueAttack, rate)

	vol := v.gain * cfg.EffectVolume(cue) * cfg.MasterVolume
	return newVolume(shaped, vol)
}
