package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/munchies/audio"
	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/engine"
	"github.com/lixenwraith/munchies/profile"
)

// DefaultFileName is looked up in the working directory when no path is given
const DefaultFileName = "munchies.toml"

// ErrInvalid marks a config that decoded but cannot run a round
var ErrInvalid = errors.New("invalid config")

// Config is the decoded munchies.toml
type Config struct {
	Game     GameConfig     `toml:"game"`
	Audio    AudioConfig    `toml:"audio"`
	Spectate SpectateConfig `toml:"spectate"`
	Profile  ProfileConfig  `toml:"profile"`
	Log      LogConfig      `toml:"log"`
}

// GameConfig holds round tunables
type GameConfig struct {
	RoundTime     float64 `toml:"round_time"`
	ChaosInterval float64 `toml:"chaos_interval"`
	MapSize       float64 `toml:"map_size"`
	BotCount      int     `toml:"bot_count"`
	FruitCount    int     `toml:"fruit_count"`
	BombCount     int     `toml:"bomb_count"`
	PowerupCount  int     `toml:"powerup_count"`
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

// SpectateConfig controls the websocket feed; an empty Addr disables it
type SpectateConfig struct {
	Addr string `toml:"addr"`
}

type ProfileConfig struct {
	Path string `toml:"path"`
}

// LogConfig controls file logging
type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
	Level string `toml:"level"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			RoundTime:     constants.RoundTime,
			ChaosInterval: constants.ChaosInterval,
			MapSize:       constants.MapSize,
			BotCount:      constants.BotCount,
			FruitCount:    constants.FruitCount,
			BombCount:     constants.BombCount,
			PowerupCount:  constants.PowerupCount,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   constants.AudioSampleRate,
		},
		Profile: ProfileConfig{Path: profile.DefaultFileName},
		Log:     LogConfig{Dir: "logs", Level: "debug"},
	}
}

// Load reads path over defaults, then applies environment overrides
// A missing file at the default path is not an error
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	md, err := toml.DecodeFile(path, cfg)
	switch {
	case err == nil:
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Errorf("%s: unknown key %q", path, undecoded[0].String())
		}
	case os.IsNotExist(errors.Cause(err)) && !explicit:
		cfg = Default()
	default:
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays MUNCHIES_* variables for the game, spectate, profile and log sections
// Audio variables are applied by Audio()
func (c *Config) ApplyEnv() {
	if v, ok := envFloat("MUNCHIES_ROUND_TIME"); ok {
		c.Game.RoundTime = v
	}
	if v, ok := envFloat("MUNCHIES_CHAOS_INTERVAL"); ok {
		c.Game.ChaosInterval = v
	}
	if v, ok := envFloat("MUNCHIES_MAP_SIZE"); ok {
		c.Game.MapSize = v
	}
	if v := os.Getenv("MUNCHIES_SPECTATE_ADDR"); v != "" {
		c.Spectate.Addr = v
	}
	if v := os.Getenv("MUNCHIES_PROFILE"); v != "" {
		c.Profile.Path = v
	}
	if v := os.Getenv("MUNCHIES_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.Debug = b
		}
	}
}

func envFloat(key string) (float64, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Validate rejects configs that cannot run a round
func (c *Config) Validate() error {
	g := c.Game
	switch {
	case g.RoundTime <= 0:
		return errors.Wrapf(ErrInvalid, "game.round_time must be positive, got %v", g.RoundTime)
	case g.ChaosInterval <= 0:
		return errors.Wrapf(ErrInvalid, "game.chaos_interval must be positive, got %v", g.ChaosInterval)
	case g.MapSize <= 2*constants.SpawnMargin:
		return errors.Wrapf(ErrInvalid, "game.map_size must exceed %v, got %v", 2*constants.SpawnMargin, g.MapSize)
	case g.BotCount < 0 || g.FruitCount < 0 || g.BombCount < 0 || g.PowerupCount < 0:
		return errors.Wrap(ErrInvalid, "game counts must not be negative")
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return errors.Wrapf(ErrInvalid, "audio.master_volume must be within [0,1], got %v", c.Audio.MasterVolume)
	case c.Audio.SampleRate <= 0:
		return errors.Wrapf(ErrInvalid, "audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	case c.Profile.Path == "":
		return errors.Wrap(ErrInvalid, "profile.path must not be empty")
	}
	return nil
}

// Settings converts the game section into engine settings
func (c *Config) Settings() engine.Settings {
	return engine.Settings{
		RoundTime:     c.Game.RoundTime,
		ChaosInterval: c.Game.ChaosInterval,
		MapSize:       c.Game.MapSize,
		BotCount:      c.Game.BotCount,
		FruitCount:    c.Game.FruitCount,
		BombCount:     c.Game.BombCount,
		PowerupCount:  c.Game.PowerupCount,
	}
}

// AudioSettings builds the sound manager config, then applies audio environment overrides
func (c *Config) AudioSettings() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	ac.ApplyEnv()
	return ac
}
