package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/munchies/engine"
)

// TestOscillatorSine verifies sine samples stay in range
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples ok=true, got n=%d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
	}
}

// TestOscillatorSquare verifies square wave only emits full-scale values
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square sample %d should be -1 or 1, got %f", i, v)
		}
	}
}

// TestOscillatorDrains verifies the stream ends after its duration
func TestOscillatorDrains(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 10*time.Millisecond, WaveSaw, rate)

	samples := make([][2]float64, 64)
	n, ok := osc.Stream(samples)
	if n != 10 || !ok {
		t.Fatalf("Expected partial fill of 10 samples, got n=%d ok=%v", n, ok)
	}
	n, ok = osc.Stream(samples)
	if n != 0 || ok {
		t.Errorf("Expected drained stream, got n=%d ok=%v", n, ok)
	}
}

// TestSweepRisesInPitch verifies the powerup glide ends near its target frequency
func TestSweepRisesInPitch(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewSweep(100, 200, time.Second, WaveSine, rate).(*oscillator)

	if f := osc.currentFreq(); f != 100 {
		t.Errorf("Expected start frequency 100, got %f", f)
	}
	osc.position = osc.duration / 2
	if f := osc.currentFreq(); f < 141 || f > 142 {
		t.Errorf("Expected geometric midpoint ~141.4, got %f", f)
	}
}

// TestEnvelopeRamps verifies attack starts silent
func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 50*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[30][0] != 1.0 {
		t.Errorf("Expected full sustain at sample 30, got %f", samples[30][0])
	}
	if samples[99][0] <= 0 || samples[99][0] >= samples[60][0] {
		t.Errorf("Expected decaying release, got s60=%f s99=%f", samples[60][0], samples[99][0])
	}
}

// TestCreateCueAllKinds verifies every cue synthesizes and unknown cues do not
func TestCreateCueAllKinds(t *testing.T) {
	cfg := DefaultAudioConfig()
	for _, cue := range []engine.Cue{engine.CueCollect, engine.CueDash, engine.CueExplode, engine.CueHit, engine.CuePowerup} {
		s := CreateCue(cue, cfg)
		if s == nil {
			t.Errorf("Expected streamer for cue %s", cue)
			continue
		}
		total := 0
		buf := make([][2]float64, 512)
		for {
			n, ok := s.Stream(buf)
			total += n
			if !ok {
				break
			}
		}
		if total == 0 {
			t.Errorf("Cue %s produced no samples", cue)
		}
	}

	if CreateCue(engine.Cue(99), cfg) != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}
