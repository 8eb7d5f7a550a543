// Package cli wires configuration, the catalog and the playback session
// into the encore commands.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/encore/internal/app"
	"github.com/llehouerou/encore/internal/config"
	"github.com/llehouerou/encore/internal/errmsg"
	"github.com/llehouerou/encore/internal/ui/playerbar"
)

type options struct {
	configFile string
	startAlbum string
	cfg        *config.Config
}

// NewRootCmd builds the encore command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "encore",
		Short: "Browse albums and play them in the terminal",
		Long: `Encore is a terminal music front-end: browse the catalog, queue albums
and control playback from the keyboard, media keys or MPRIS clients.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.loadConfig()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "",
		"config file (default: $XDG_CONFIG_HOME/encore/config.toml)")
	root.Flags().StringVar(&opts.startAlbum, "album", "", "open and play this album on start")

	root.AddCommand(newDaemonCmd(opts), newAlbumsCmd(opts))
	return root
}

func (o *options) loadConfig() error {
	var err error
	if o.configFile != "" {
		o.cfg, err = config.LoadFrom(o.configFile)
	} else {
		o.cfg, err = config.Load()
	}
	return errmsg.Wrap(errmsg.OpConfigLoad, err)
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, opts *options) error {
	rt, err := openRuntime(cmd.Context(), opts.cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	mode := playerbar.ModeCompact
	if opts.cfg.ExpandedLayout() {
		mode = playerbar.ModeExpanded
	}

	model := app.New(app.Options{
		Catalog:      rt.store,
		Transport:    rt.controller,
		TickInterval: opts.cfg.GetPlaybackConfig().TickInterval,
		DisplayMode:  mode,
		StartAlbum:   opts.startAlbum,
		Logger:       rt.logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
