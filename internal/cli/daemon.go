package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/llehouerou/encore/internal/playback"
)

func newDaemonCmd(opts *options) *cobra.Command {
	var album string
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run the playback session without a UI",
		Long: `Run the playback session headless. Control it through MPRIS clients
and media keys; the progress clock keeps running until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDaemon(cmd.Context(), opts, album)
		},
	}
	cmd.Flags().StringVar(&album, "album", "", "play this album on start")
	return cmd
}

func runDaemon(ctx context.Context, opts *options, album string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := openRuntime(ctx, opts.cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	if album != "" {
		if err := rt.playAlbum(ctx, album); err != nil {
			return err
		}
	}

	clock := playback.NewClock(rt.controller, opts.cfg.GetPlaybackConfig().TickInterval)
	rt.logger.Info("daemon started", "tick", clock.Interval(), "album", album)

	err = clock.Run(ctx)
	rt.logger.Info("daemon stopped")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
