package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/llehouerou/imusic/internal/app"
	"github.com/llehouerou/imusic/internal/catalog"
	"github.com/llehouerou/imusic/internal/ui/render"
)

const listWidth = 100

var (
	importTitle  string
	importArtist string
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Inspect and edit the song library",
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List library songs",
	Args:  cobra.NoArgs,
	RunE: withCatalog(func(cmd *cobra.Command, cat *catalog.Catalog, _ []string) error {
		songs, err := cat.LoadLibrary()
		if err != nil {
			return err
		}
		printSongs(cmd.OutOrStdout(), songs)
		return nil
	}),
}

var libraryAddCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Copy an audio file into the music folder and add it to the library",
	Long: `Copy an audio file into the music folder and add it to the library.

Title and artist default to the file's tags, then to its name.`,
	Args: cobra.ExactArgs(1),
	RunE: withCatalog(func(cmd *cobra.Command, cat *catalog.Catalog, args []string) error {
		song, err := cat.SaveNewSong(importTitle, importArtist, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s - %s (%s)\n", song.Artist, song.Title, song.Duration)
		return nil
	}),
}

var libraryRmCmd = &cobra.Command{
	Use:   "rm <song>",
	Short: "Delete a song by number or path, removing it from every playlist",
	Args:  cobra.ExactArgs(1),
	RunE: withCatalog(func(cmd *cobra.Command, cat *catalog.Catalog, args []string) error {
		songs, err := cat.LoadLibrary()
		if err != nil {
			return err
		}
		song, err := findSong(songs, args[0])
		if err != nil {
			return err
		}
		if err := cat.DeleteSong(song.Path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", song.Title)
		return nil
	}),
}

var librarySizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Show the disk usage of the music folder",
	Args:  cobra.NoArgs,
	RunE: withCatalog(func(cmd *cobra.Command, cat *catalog.Catalog, _ []string) error {
		size, err := cat.FolderSize()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", size, cat.MusicFolder())
		return nil
	}),
}

var folderCmd = &cobra.Command{
	Use:   "folder [path]",
	Short: "Show or set the music folder",
	Args:  cobra.MaximumNArgs(1),
	RunE: withCatalog(func(cmd *cobra.Command, cat *catalog.Catalog, args []string) error {
		if len(args) == 1 {
			if err := cat.SetMusicFolder(args[0]); err != nil {
				return err
			}
		}
		folder := cat.MusicFolder()
		if folder == "" {
			return catalog.ErrNoMusicFolder
		}
		fmt.Fprintln(cmd.OutOrStdout(), folder)
		return nil
	}),
}

func init() {
	libraryAddCmd.Flags().StringVarP(&importTitle, "title", "t", "", "song title")
	libraryAddCmd.Flags().StringVarP(&importArtist, "artist", "a", "", "song artist")

	libraryCmd.AddCommand(libraryListCmd, libraryAddCmd, libraryRmCmd, librarySizeCmd)
	rootCmd.AddCommand(libraryCmd, folderCmd)
}

// withCatalog opens the catalog without audio for the duration of run.
func withCatalog(run func(*cobra.Command, *catalog.Catalog, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		closeLog, err := setupLogging("stderr")
		if err != nil {
			return err
		}
		defer closeLog()

		store, cat, err := app.OpenCatalog(cfg)
		if err != nil {
			return err
		}
		defer store.Close()
		return run(cmd, cat, args)
	}
}

func printSongs(w io.Writer, songs []catalog.Song) {
	if len(songs) == 0 {
		fmt.Fprintln(w, "library is empty")
		return
	}
	widths := []int{4, 40, 30}
	fmt.Fprintln(w, render.Columns(listWidth, widths, "#", "Title", "Artist", "Time"))
	for i, s := range songs {
		fmt.Fprintln(w, render.Columns(listWidth, widths, strconv.Itoa(i+1), s.Title, s.Artist, s.Duration))
	}
}

// findSong resolves ref as a 1-based number from "library list" or as a
// song path.
func findSong(songs []catalog.Song, ref string) (catalog.Song, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(songs) {
			return catalog.Song{}, errors.Newf("song number %d out of range (1-%d)", n, len(songs))
		}
		return songs[n-1], nil
	}
	song, ok := lo.Find(songs, func(s catalog.Song) bool {
		return s.Path == ref || strings.HasSuffix(s.Path, "/"+ref)
	})
	if !ok {
		return catalog.Song{}, errors.Wrapf(catalog.ErrSongNotFound, "%q", ref)
	}
	return song, nil
}
