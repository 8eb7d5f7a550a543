package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/config"
	"github.com/llehouerou/encore/internal/errmsg"
	"github.com/llehouerou/encore/internal/icons"
	"github.com/llehouerou/encore/internal/mpris"
	"github.com/llehouerou/encore/internal/notify"
	"github.com/llehouerou/encore/internal/playback"
)

// runtime owns everything a command needs to play music.
type runtime struct {
	logger     *slog.Logger
	store      *catalog.Store
	controller *playback.Controller
	cancel     context.CancelFunc
	closers    []io.Closer // closed in reverse order
}

// openRuntime builds the session from cfg and attaches the desktop
// integrations it enables. Integration failures are logged, not fatal.
func openRuntime(ctx context.Context, cfg *config.Config) (*runtime, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, logFile, err := newLogger(cfg.GetLogConfig())
	if err != nil {
		return nil, errmsg.Wrap(errmsg.OpLogFileOpen, err)
	}
	rt := &runtime{logger: logger}
	if logFile != nil {
		rt.closers = append(rt.closers, logFile)
	}

	icons.Init(cfg.Icons)

	rt.store, err = catalog.Open(ctx)
	if err != nil {
		rt.Close()
		return nil, errmsg.Wrap(errmsg.OpCatalogLoad, err)
	}
	rt.closers = append(rt.closers, rt.store)

	rt.controller = newController(cfg.GetPlaybackConfig(), logger)
	rt.closers = append(rt.closers, rt.controller)

	ctx, rt.cancel = context.WithCancel(ctx)
	rt.attachDesktop(ctx, cfg)
	return rt, nil
}

func newController(pb config.ResolvedPlayback, logger *slog.Logger) *playback.Controller {
	opts := playback.Options{
		Volume: pb.Volume,
		Liked:  catalog.InitialLikes(),
		Logger: logger,
	}
	if pb.ShuffleSeed != 0 {
		opts.Rand = rand.New(rand.NewPCG(pb.ShuffleSeed, pb.ShuffleSeed))
	}
	c := playback.NewController(opts)
	if pb.Volume == 0 {
		// Options treat zero as unset.
		c.SetVolume(0)
	}
	c.SetShuffle(pb.Shuffle)
	c.SetRepeatMode(playback.ParseRepeatMode(pb.Repeat))
	return c
}

func (rt *runtime) attachDesktop(ctx context.Context, cfg *config.Config) {
	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(rt.controller, rt.logger)
		if err != nil {
			rt.logger.Warn(errmsg.Format(errmsg.OpMPRISStart, err))
		} else {
			rt.closers = append(rt.closers, adapter)
		}
	}

	if cfg.NotificationsEnabled() {
		n, err := notify.New()
		if err != nil {
			rt.logger.Warn(errmsg.Format(errmsg.OpNotifySend, err))
			return
		}
		watcher := notify.NewTrackNotifier(n, rt.logger)
		sub := rt.controller.Subscribe()
		go func() {
			if err := watcher.Watch(ctx, sub); err != nil && !errors.Is(err, context.Canceled) {
				rt.logger.Warn("notification watcher stopped", "err", err)
			}
		}()
	}
}

// playAlbum replaces the queue with an album.
func (rt *runtime) playAlbum(ctx context.Context, id string) error {
	tracks, err := rt.store.Tracks(ctx, id)
	if err != nil {
		return fmt.Errorf("%s %q: %w", errmsg.OpAlbumLoad, id, err)
	}
	if err := rt.controller.RequestPlayQueue(tracks, 0); err != nil {
		return errmsg.Wrap(errmsg.OpPlaybackStart, err)
	}
	return nil
}

// Close releases resources in reverse order of acquisition.
func (rt *runtime) Close() {
	if rt.cancel != nil {
		rt.cancel()
	}
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i].Close(); err != nil {
			rt.logger.Debug("close", "err", err)
		}
	}
}
