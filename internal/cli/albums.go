package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/errmsg"
)

var allSections = []string{catalog.SectionRecent, catalog.SectionFeatured, catalog.SectionLibrary}

func newAlbumsCmd(_ *options) *cobra.Command {
	var section string
	cmd := &cobra.Command{
		Use:   "albums",
		Short: "List the albums in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sections := allSections
			if section != "" {
				sections = []string{section}
			}
			store, err := catalog.Open(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s: %w", errmsg.OpCatalogLoad, err)
			}
			defer store.Close()
			return listAlbums(cmd.Context(), cmd.OutOrStdout(), store, sections)
		},
	}
	cmd.Flags().StringVar(&section, "section", "", "only list one section (recent, featured, library)")
	return cmd
}

// listAlbums writes one tab-aligned line per album:
// id, title, artist, year and song count.
func listAlbums(ctx context.Context, w io.Writer, store *catalog.Store, sections []string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	total := 0
	for _, section := range sections {
		albums, err := store.Albums(ctx, section)
		if err != nil {
			return fmt.Errorf("%s: %w", errmsg.OpCatalogLoad, err)
		}
		for _, a := range albums {
			count, err := store.SongCount(ctx, a.ID)
			if err != nil {
				return fmt.Errorf("%s %q: %w", errmsg.OpAlbumLoad, a.ID, err)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
				a.ID, a.Title, a.Artist, a.Year, english.Plural(count, "song", ""))
			total++
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, english.Plural(total, "album", ""))
	return err
}
