package notify

import (
	"context"
	"log/slog"
	"strings"

	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/playlist"
)

const (
	trackIcon    = "audio-x-generic"
	trackTimeout = 5000
)

// TrackNotifier shows one notification per track, replacing the previous
// one so a skipping user does not pile up popups.
type TrackNotifier struct {
	notifier Notifier
	logger   *slog.Logger
	lastID   uint32
}

// NewTrackNotifier wraps n. A nil logger discards failures.
func NewTrackNotifier(n Notifier, logger *slog.Logger) *TrackNotifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TrackNotifier{notifier: n, logger: logger}
}

// Watch consumes track changes until ctx is cancelled or the
// subscription ends.
func (w *TrackNotifier) Watch(ctx context.Context, sub *playback.Subscription) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-sub.Done:
			return nil
		case e := <-sub.TrackChanged:
			w.Handle(e)
		}
	}
}

// Handle shows a notification for e. A cleared queue closes the last one.
func (w *TrackNotifier) Handle(e playback.TrackChange) {
	if e.Current == nil {
		if w.lastID != 0 {
			if err := w.notifier.Close(w.lastID); err != nil {
				w.logger.Debug("close notification", "err", err)
			}
			w.lastID = 0
		}
		return
	}

	n := TrackNotification(*e.Current)
	n.ReplacesID = w.lastID
	id, err := w.notifier.Notify(n)
	if err != nil {
		w.logger.Warn("send notification", "track", e.Current.ID, "err", err)
		return
	}
	w.lastID = id
}

// TrackNotification builds the "now playing" notification for t.
func TrackNotification(t playlist.Track) Notification {
	var parts []string
	for _, p := range []string{t.Artist, t.AlbumTitle} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return Notification{
		Title:   t.Title,
		Body:    strings.Join(parts, " · "),
		Icon:    trackIcon,
		Timeout: trackTimeout,
		Urgency: UrgencyLow,
	}
}
