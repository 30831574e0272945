package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/engine"
)

// AudioConfig controls cue playback
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[engine.Cue]float64
}

// DefaultAudioConfig returns full-volume cues at the default sample rate
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[engine.Cue]float64{
			engine.CueCollect: 1.0,
			engine.CueDash:    1.0,
			engine.CueExplode: 1.0,
			engine.CueHit:     1.0,
			engine.CuePowerup: 1.0,
		},
	}
}

// EffectVolume returns the per-cue volume, 1 when unset
func (c *AudioConfig) EffectVolume(cue engine.Cue) float64 {
	if v, ok := c.EffectVolumes[cue]; ok {
		return v
	}
	return 1.0
}

// ApplyEnv overlays MUNCHIES_* environment variables onto cfg
func (c *AudioConfig) ApplyEnv() {
	if enabled := os.Getenv("MUNCHIES_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("MUNCHIES_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Per-cue volumes as JSON, e.g. {"explode":0.3}
	if effectVols := os.Getenv("MUNCHIES_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for cue := range c.EffectVolumes {
				if v, ok := volumes[cue.String()]; ok {
					c.EffectVolumes[cue] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("MUNCHIES_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.SampleRate = val
		}
	}
}

// LoadAudioConfig returns defaults with environment overrides applied
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.ApplyEnv()
	return cfg
}
