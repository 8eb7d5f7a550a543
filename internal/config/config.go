package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "encore"

type Config struct {
	Icons string `koanf:"icons"` // "nerd", "unicode", or "none"

	Playback PlaybackConfig `koanf:"playback"`

	UI UIConfig `koanf:"ui"`

	// MPRIS D-Bus service (daemon and TUI, Linux only)
	MPRIS ToggleConfig `koanf:"mpris"`

	// Desktop notifications on track change
	Notifications ToggleConfig `koanf:"notifications"`

	Log LogConfig `koanf:"log"`
}

// PlaybackConfig holds the initial transport settings.
type PlaybackConfig struct {
	Volume       *int          `koanf:"volume"`        // initial volume 0-100 (default: 50)
	TickInterval time.Duration `koanf:"tick_interval"` // progress clock period (default: 1s)
	ShuffleSeed  uint64        `koanf:"shuffle_seed"`  // 0 seeds from the clock
	Shuffle      bool          `koanf:"shuffle"`       // start with shuffle on
	Repeat       string        `koanf:"repeat"`        // "off", "queue" or "track" (default: "off")
}

// UIConfig holds TUI layout settings.
type UIConfig struct {
	DisplayMode string `koanf:"display_mode"` // "compact" or "expanded" (default: "compact")
}

// ToggleConfig is a section with a single enabled switch.
type ToggleConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// LogConfig holds log output settings.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/encore/encore.log
}

// Load merges the user config and ./config.toml, last wins.
func Load() (*Config, error) {
	return load(getConfigPaths())
}

// LoadFrom loads a single explicit config file. A missing file is an error.
func LoadFrom(path string) (*Config, error) {
	path = expandPath(path)
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return load([]string{path})
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Icons = strings.ToLower(strings.TrimSpace(cfg.Icons))
	cfg.UI.DisplayMode = strings.ToLower(strings.TrimSpace(cfg.UI.DisplayMode))
	cfg.Playback.Repeat = strings.ToLower(strings.TrimSpace(cfg.Playback.Repeat))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/encore/config.toml
	if p, err := xdg.SearchConfigFile(filepath.Join(appName, "config.toml")); err == nil {
		paths = append(paths, p)
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetPlaybackConfig returns the playback configuration with defaults applied.
func (c *Config) GetPlaybackConfig() ResolvedPlayback {
	out := ResolvedPlayback{
		Volume:       50,
		TickInterval: time.Second,
		ShuffleSeed:  c.Playback.ShuffleSeed,
		Shuffle:      c.Playback.Shuffle,
		Repeat:       c.Playback.Repeat,
	}
	if v := c.Playback.Volume; v != nil {
		out.Volume = min(max(*v, 0), 100)
	}
	if c.Playback.TickInterval > 0 {
		out.TickInterval = max(c.Playback.TickInterval, 50*time.Millisecond)
	}
	return out
}

// ResolvedPlayback is PlaybackConfig after defaults.
type ResolvedPlayback struct {
	Volume       int
	TickInterval time.Duration
	ShuffleSeed  uint64
	Shuffle      bool
	Repeat       string // parsed by playback.ParseRepeatMode
}

// ExpandedLayout reports whether the player bar uses the two-line layout.
func (c *Config) ExpandedLayout() bool {
	return c.UI.DisplayMode == "expanded"
}

// MPRISEnabled reports whether the MPRIS service should be registered.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS.Enabled == nil || *c.MPRIS.Enabled
}

// NotificationsEnabled reports whether track-change notifications are sent.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		cfg.Level = "info"
	}
	if cfg.File == "" {
		if p, err := xdg.StateFile(filepath.Join(appName, appName+".log")); err == nil {
			cfg.File = p
		}
	}
	return cfg
}
