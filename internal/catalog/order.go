package catalog

import (
	"slices"

	"github.com/samber/lo"
)

// Resolve joins the playlist entries against library by path, in position
// order. Entries whose song is no longer in the library are dropped.
func Resolve(pl Playlist, library []Song) []Song {
	byPath := lo.KeyBy(library, func(s Song) string { return s.Path })
	return lo.FilterMap(sortedItems(pl.Songs), func(item PlaylistItem, _ int) (Song, bool) {
		s, ok := byPath[item.SongPath]
		return s, ok
	})
}

// Reorder moves the element at from to index to and returns the new sequence.
// Out of range indices return an unchanged copy. The input is not modified.
func Reorder(seq []string, from, to int) []string {
	out := slices.Clone(seq)
	if from < 0 || from >= len(seq) || to < 0 || to >= len(seq) || from == to {
		return out
	}
	item := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, item)
}

// IndexOf returns the position of the song with path in songs, or -1.
func IndexOf(songs []Song, path string) int {
	return slices.IndexFunc(songs, func(s Song) bool { return s.Path == path })
}

func sortedItems(items []PlaylistItem) []PlaylistItem {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b PlaylistItem) int { return a.Position - b.Position })
	return out
}

// densePositions numbers paths 0..n-1.
func densePositions(paths []string) []PlaylistItem {
	return lo.Map(paths, func(p string, i int) PlaylistItem {
		return PlaylistItem{Position: i, SongPath: p}
	})
}
