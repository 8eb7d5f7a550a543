package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGetPlaybackConfig_Defaults(t *testing.T) {
	cfg := Config{}
	pb := cfg.GetPlaybackConfig()

	assert.Equal(t, 50, pb.Volume)
	assert.Equal(t, time.Second, pb.TickInterval)
	assert.Zero(t, pb.ShuffleSeed)
}

func TestGetPlaybackConfig_Values(t *testing.T) {
	tests := []struct {
		name         string
		volume       *int
		tick         time.Duration
		wantVolume   int
		wantInterval time.Duration
	}{
		{"explicit zero volume is kept", intPtr(0), 0, 0, time.Second},
		{"volume clamped high", intPtr(180), 0, 100, time.Second},
		{"volume clamped low", intPtr(-4), 0, 0, time.Second},
		{"custom interval", intPtr(70), 500 * time.Millisecond, 70, 500 * time.Millisecond},
		{"interval floor", nil, time.Millisecond, 50, 50 * time.Millisecond},
		{"negative interval uses default", nil, -time.Second, 50, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Playback: PlaybackConfig{Volume: tt.volume, TickInterval: tt.tick}}
			pb := cfg.GetPlaybackConfig()
			assert.Equal(t, tt.wantVolume, pb.Volume)
			assert.Equal(t, tt.wantInterval, pb.TickInterval)
		})
	}
}

func TestToggles(t *testing.T) {
	cfg := Config{}
	assert.True(t, cfg.MPRISEnabled(), "enabled when unset")
	assert.True(t, cfg.NotificationsEnabled(), "enabled when unset")

	cfg.MPRIS.Enabled = boolPtr(false)
	cfg.Notifications.Enabled = boolPtr(false)
	assert.False(t, cfg.MPRISEnabled())
	assert.False(t, cfg.NotificationsEnabled())
}

func TestExpandedLayout(t *testing.T) {
	assert.False(t, (&Config{}).ExpandedLayout())
	assert.True(t, (&Config{UI: UIConfig{DisplayMode: "expanded"}}).ExpandedLayout())
	assert.False(t, (&Config{UI: UIConfig{DisplayMode: "wide"}}).ExpandedLayout())
}

func TestGetLogConfig(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	cfg := Config{Log: LogConfig{Level: "verbose"}}
	lc := cfg.GetLogConfig()
	assert.Equal(t, "info", lc.Level, "unknown level falls back to info")
	assert.Equal(t, "encore.log", filepath.Base(lc.File))

	cfg = Config{Log: LogConfig{Level: "debug", File: "/tmp/x.log"}}
	lc = cfg.GetLogConfig()
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "/tmp/x.log", lc.File)
}

func TestLoadFrom_BasicConfig(t *testing.T) {
	path := writeConfig(t, `
icons = " Nerd "

[playback]
volume = 72
tick_interval = "250ms"
shuffle_seed = 99
shuffle = true
repeat = " Queue "

[ui]
display_mode = "Expanded"

[mpris]
enabled = false

[log]
level = "DEBUG"
file = "~/encore-test.log"
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "nerd", cfg.Icons)
	require.NotNil(t, cfg.Playback.Volume)
	assert.Equal(t, 72, *cfg.Playback.Volume)
	assert.Equal(t, 250*time.Millisecond, cfg.Playback.TickInterval)
	assert.Equal(t, uint64(99), cfg.Playback.ShuffleSeed)
	pb := cfg.GetPlaybackConfig()
	assert.True(t, pb.Shuffle)
	assert.Equal(t, "queue", pb.Repeat)
	assert.True(t, cfg.ExpandedLayout())
	assert.False(t, cfg.MPRISEnabled())
	assert.True(t, cfg.NotificationsEnabled())
	assert.Equal(t, "debug", cfg.Log.Level)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "encore-test.log"), cfg.Log.File)
}

func TestLoadFrom_Missing(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	path := writeConfig(t, "invalid = [[[")
	_, err := LoadFrom(path)
	require.Error(t, err)
}

func TestLoad_WorkingDirectoryConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("config.toml", []byte("icons = \"none\"\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "none", cfg.Icons)
}

func TestLoad_EmptyConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("config.toml", []byte(""), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)
}
