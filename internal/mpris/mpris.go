//go:build linux

package mpris

import (
	"log/slog"

	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/encore/internal/playback"
)

// busName is the suffix registered as org.mpris.MediaPlayer2.<busName>.
const busName = "encore"

// Adapter exposes a playback transport over MPRIS on the session bus.
type Adapter struct {
	transport playback.Transport
	server    *server.Server
	sub       *playback.Subscription
	logger    *slog.Logger
	done      chan struct{}
}

// New creates and starts a new MPRIS adapter.
func New(transport playback.Transport, logger *slog.Logger) (*Adapter, error) {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Adapter{
		transport: transport,
		logger:    logger,
		done:      make(chan struct{}),
	}

	a.server = server.NewServer(busName, &rootAdapter{}, &playerAdapter{transport: transport})
	a.sub = transport.Subscribe()

	go func() {
		if err := a.server.Listen(); err != nil {
			a.logger.Warn("mpris server stopped", "err", err)
		}
	}()
	go a.watch()

	return a, nil
}

// watch logs track changes until the adapter or the subscription closes.
// D-Bus clients poll properties, so nothing is pushed from here.
func (a *Adapter) watch() {
	for {
		select {
		case <-a.done:
			return
		case <-a.sub.Done:
			return
		case e := <-a.sub.TrackChanged:
			if e.Current == nil {
				a.logger.Debug("mpris: queue cleared")
				continue
			}
			a.logger.Debug("mpris: track changed",
				"id", e.Current.ID, "title", e.Current.Title, "index", e.Index)
		}
	}
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	close(a.done)
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil
}

func (r *rootAdapter) Quit() error {
	return nil // the app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Encore", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and optional interfaces.
type playerAdapter struct {
	transport playback.Transport
}

func (p *playerAdapter) Next() error {
	p.transport.Next()
	return nil
}

func (p *playerAdapter) Previous() error {
	p.transport.Previous()
	return nil
}

func (p *playerAdapter) Pause() error {
	p.transport.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	return ignoreEmpty(p.transport.Toggle())
}

func (p *playerAdapter) Stop() error {
	p.transport.Stop()
	return nil
}

func (p *playerAdapter) Play() error {
	return ignoreEmpty(p.transport.Play())
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.transport.SeekBy(toSeconds(offset))
	return nil
}

func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	// Stale track ids are ignored per the MPRIS contract.
	t, ok := p.transport.Snapshot().Current()
	if !ok || trackObjectPath(t.ID) != trackID {
		return nil
	}
	p.transport.Seek(toSeconds(position))
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatusFor(p.transport.Snapshot().State), nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	return metadataFor(p.transport.Snapshot()), nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return volumeToMPRIS(p.transport.Snapshot().EffectiveVolume()), nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.transport.SetVolume(volumeFromMPRIS(v))
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return int64(toMicroseconds(p.transport.Snapshot().Progress)), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.transport.Snapshot().CanGoNext(), nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.transport.Snapshot().CanGoPrevious(), nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.transport.Snapshot().HasTrack(), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.transport.Snapshot().HasTrack(), nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.transport.Snapshot().HasTrack(), nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	return loopStatusFor(p.transport.Snapshot().Repeat), nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	p.transport.SetRepeatMode(repeatModeFor(status))
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.transport.Snapshot().Shuffle, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	p.transport.SetShuffle(shuffle)
	return nil
}
