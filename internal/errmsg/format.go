// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Library operations
	OpLibraryLoad Op = "load library"
	OpSongImport  Op = "import song"
	OpSongDelete  Op = "delete song"

	// Music folder operations
	OpFolderSet  Op = "set music folder"
	OpFolderSize Op = "measure music folder"

	// Playlist operations
	OpPlaylistCreate Op = "create playlist"
	OpPlaylistLoad   Op = "load playlist"
	OpPlaylistAdd    Op = "add songs to playlist"
	OpPlaylistMove   Op = "move playlist item"
	OpPlaylistDelete Op = "delete playlist"

	// Playback operations
	OpPlaybackLoad   Op = "load track"
	OpPlaybackStart  Op = "start playback"
	OpPlaybackStream Op = "play track"
	OpVolumeSet      Op = "set volume"

	// Initialization
	OpInitialize Op = "initialize application"
)

// ForPlayback maps a playback error operation ("load", "play", "stream") to
// its Op.
func ForPlayback(operation string) Op {
	switch operation {
	case "load":
		return OpPlaybackLoad
	case "play":
		return OpPlaybackStart
	case "stream":
		return OpPlaybackStream
	default:
		return Op(operation)
	}
}

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
