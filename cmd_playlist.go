package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/llehouerou/imusic/internal/catalog"
	"github.com/llehouerou/imusic/internal/ui/render"
)

var playlistCover string

var playlistCmd = &cobra.Command{
	Use:   "playlist",
	Short: "Manage playlists",
}

var playlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List playlists",
	Args:  cobra.NoArgs,
	RunE: withCatalog(func(cmd *cobra.Command, cat *catalog.Catalog, _ []string) error {
		pls, err := cat.LoadPlaylists()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if len(pls) == 0 {
			fmt.Fprintln(w, "no playlists")
			return nil
		}
		widths := []int{36, 40}
		fmt.Fprintln(w, render.Columns(listWidth, widths, "ID", "Name", "Songs"))
		for _, pl := range pls {
			fmt.Fprintln(w, render.Columns(listWidth, widths, pl.ID, pl.Name, strconv.Itoa(len(pl.Songs))))
		}
		return nil
	}),
}

var playlistShowCmd = &cobra.Command{
	Use:   "show <playlist>",
	Short: "Show the songs of a playlist in play order",
	Args:  cobra.ExactArgs(1),
	RunE: withCatalog(func(cmd *cobra.Command, cat *catalog.Catalog, args []string) error {
		pl, err := findPlaylist(cat, args[0])
		if err != nil {
			return err
		}
		songs, err := cat.LoadLibrary()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, pl.Name)
		if c := cat.CoverFile(*pl); c != "" {
			fmt.Fprintf(w, "cover: %s\n", c)
		}
		byPath := lo.KeyBy(songs, func(s catalog.Song) string { return s.Path })
		widths := []int{4, 40, 30}
		for i, path := range pl.Paths() {
			s, ok := byPath[path]
			if !ok {
				fmt.Fprintln(w, render.Columns(listWidth, widths, strconv.Itoa(i+1), "(missing) "+path))
				continue
			}
			fmt.Fprintln(w, render.Columns(listWidth, widths, strconv.Itoa(i+1), s.Title, s.Artist, s.Duration))
		}
		return nil
	}),
}

var playlistCreateCmd = &cobra.Command{
	Use:   "create <name> [song...]",
	Short: "Create a playlist from library songs (numbers or paths)",
	Args:  cobra.MinimumNArgs(1),
	RunE: withCatalog(func(cmd *cobra.Command, cat *catalog.Catalog, args []string) error {
		paths, err := songPaths(cat, args[1:])
		if err != nil {
			return err
		}
		var cover *string
		if playlistCover != "" {
			cover = &playlistCover
		}
		pl, err := cat.SavePlaylist(args[0], cover, paths)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s) with %d songs\n", pl.Name, pl.ID, len(pl.Songs))
		return nil
	}),
}

var playlistAddCmd = &cobra.Command{
	Use:   "add <playlist> <song>...",
	Short: "Append library songs to a playlist",
	Args:  cobra.MinimumNArgs(2),
	RunE: withCatalog(func(cmd *cobra.Command, cat *catalog.Catalog, args []string) error {
		pl, err := findPlaylist(cat, args[0])
		if err != nil {
			return err
		}
		paths, err := songPaths(cat, args[1:])
		if err != nil {
			return err
		}
		if err := cat.AddSongsToPlaylist(pl.ID, paths); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %d songs to %s\n", len(paths), pl.Name)
		return nil
	}),
}

var playlistMoveCmd = &cobra.Command{
	Use:   "move <playlist> <from> <to>",
	Short: "Move the entry at position from to position to (1-based)",
	Args:  cobra.ExactArgs(3),
	RunE: withCatalog(func(_ *cobra.Command, cat *catalog.Catalog, args []string) error {
		pl, err := findPlaylist(cat, args[0])
		if err != nil {
			return err
		}
		from, err1 := strconv.Atoi(args[1])
		to, err2 := strconv.Atoi(args[2])
		if err := errors.CombineErrors(err1, err2); err != nil {
			return errors.Wrap(err, "positions must be numbers")
		}
		paths := pl.Paths()
		if from < 1 || from > len(paths) || to < 1 || to > len(paths) {
			return errors.Newf("positions must be between 1 and %d", len(paths))
		}
		return cat.UpdatePlaylistSongOrder(pl.ID, catalog.Reorder(paths, from-1, to-1))
	}),
}

var playlistRmCmd = &cobra.Command{
	Use:   "rm <playlist>",
	Short: "Delete a playlist and its cover",
	Args:  cobra.ExactArgs(1),
	RunE: withCatalog(func(cmd *cobra.Command, cat *catalog.Catalog, args []string) error {
		pl, err := findPlaylist(cat, args[0])
		if err != nil {
			return err
		}
		if err := cat.DeletePlaylist(pl.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", pl.Name)
		return nil
	}),
}

func init() {
	playlistCreateCmd.Flags().StringVar(&playlistCover, "cover", "", "cover image to resize and store with the playlist")

	playlistCmd.AddCommand(
		playlistListCmd,
		playlistShowCmd,
		playlistCreateCmd,
		playlistAddCmd,
		playlistMoveCmd,
		playlistRmCmd,
	)
	rootCmd.AddCommand(playlistCmd)
}

// findPlaylist resolves ref as a playlist id, then as a case-insensitive
// name.
func findPlaylist(cat *catalog.Catalog, ref string) (*catalog.Playlist, error) {
	pl, err := cat.GetPlaylistDetails(ref)
	if err == nil {
		return pl, nil
	}
	if !errors.Is(err, catalog.ErrPlaylistNotFound) {
		return nil, err
	}

	pls, err := cat.LoadPlaylists()
	if err != nil {
		return nil, err
	}
	match, ok := lo.Find(pls, func(p catalog.Playlist) bool { return strings.EqualFold(p.Name, ref) })
	if !ok {
		return nil, errors.Wrapf(catalog.ErrPlaylistNotFound, "%q", ref)
	}
	return &match, nil
}

func songPaths(cat *catalog.Catalog, refs []string) ([]string, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	songs, err := cat.LoadLibrary()
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(refs))
	for _, ref := range refs {
		s, err := findSong(songs, ref)
		if err != nil {
			return nil, err
		}
		paths = append(paths, s.Path)
	}
	return paths, nil
}
