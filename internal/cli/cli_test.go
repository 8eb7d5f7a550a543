package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/encore/internal/config"
	"github.com/llehouerou/encore/internal/playback"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestAlbumsCommand(t *testing.T) {
	path := writeConfig(t, `icons = "none"`)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"albums", "--config", path, "--section", "library"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "lib-pl1")
	assert.Contains(t, lines[0], "Chill Vibes")
	assert.Contains(t, lines[0], "1 song")
	assert.Equal(t, "4 albums", lines[4])
}

func TestAlbumsCommand_AllSections(t *testing.T) {
	path := writeConfig(t, "")

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"albums", "--config", path})
	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "Future Nostalgia")
	assert.Contains(t, text, "5 songs")
	assert.Contains(t, text, "14 albums")
}

func TestRootCommand_MissingConfig(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"albums", "--config", filepath.Join(t.TempDir(), "nope.toml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load configuration")
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "encore.log")
	logger, f, err := newLogger(config.LogConfig{Level: "warn", File: path})
	require.NoError(t, err)
	require.NotNil(t, f)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "msg=shown")
	assert.Contains(t, string(data), "k=v")
}

func TestNewLogger_NoFileDiscards(t *testing.T) {
	logger, f, err := newLogger(config.LogConfig{Level: "bogus"})
	require.NoError(t, err)
	assert.Nil(t, f)
	logger.Error("nowhere")
}

func TestNewController_FromConfig(t *testing.T) {
	c := newController(config.ResolvedPlayback{Volume: 0}, nil)
	assert.Zero(t, c.Snapshot().Volume, "explicit zero volume")

	c = newController(config.ResolvedPlayback{Volume: 70, ShuffleSeed: 9, Shuffle: true, Repeat: "track"}, nil)
	snap := c.Snapshot()
	assert.Equal(t, 70, snap.Volume)
	assert.True(t, snap.Shuffle)
	assert.Equal(t, playback.RepeatTrack, snap.Repeat)
	assert.True(t, snap.IsLiked("liked-s1"))
	assert.True(t, snap.IsLiked("liked-s2"))
}

func quietConfig(t *testing.T) *config.Config {
	t.Helper()
	off := false
	return &config.Config{
		Icons:         "none",
		MPRIS:         config.ToggleConfig{Enabled: &off},
		Notifications: config.ToggleConfig{Enabled: &off},
		Log:           config.LogConfig{File: filepath.Join(t.TempDir(), "encore.log")},
	}
}

func TestRuntime_PlayAlbum(t *testing.T) {
	rt, err := openRuntime(t.Context(), quietConfig(t))
	require.NoError(t, err)
	defer rt.Close()

	require.NoError(t, rt.playAlbum(t.Context(), "album1"))
	snap := rt.controller.Snapshot()
	assert.Equal(t, playback.StatePlaying, snap.State)
	assert.Equal(t, 5, snap.QueueLen())

	err = rt.playAlbum(t.Context(), "missing")
	require.Error(t, err)
	assert.Equal(t, 5, rt.controller.Snapshot().QueueLen(), "failed request keeps the queue")
}
