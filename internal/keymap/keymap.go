package keymap

// Contexts a binding can belong to.
const (
	ContextGlobal    = "global"
	ContextPlayback  = "playback"
	ContextLibrary   = "library"
	ContextPlaylists = "playlists"
	ContextPlaylist  = "playlist"
)

// Binding describes a single key binding. List bindings have no Action; the
// list component handles them and they are listed for help only.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", ContextGlobal},
	{ActionSwitchView, []string{"tab"}, "switch view", ContextGlobal},
	{ActionBack, []string{"esc", "backspace"}, "back", ContextPlaylist},

	// Playback
	{ActionPlayPause, []string{" "}, "play/pause", ContextPlayback},
	{ActionNext, []string{"n"}, "next", ContextPlayback},
	{ActionPrevious, []string{"p"}, "previous", ContextPlayback},
	{ActionSkipForward, []string{"right", "l"}, "skip forward", ContextPlayback},
	{ActionSkipBack, []string{"left", "h"}, "skip back", ContextPlayback},
	{ActionVolumeUp, []string{"+", "="}, "volume up", ContextPlayback},
	{ActionVolumeDown, []string{"-"}, "volume down", ContextPlayback},
	{ActionToggleLoop, []string{"r"}, "loop", ContextPlayback},

	// Lists
	{"", []string{"enter"}, "play", ContextLibrary},
	{"", []string{"d"}, "delete song", ContextLibrary},
	{ActionAdd, []string{"a"}, "add song", ContextLibrary},
	{"", []string{"enter"}, "open", ContextPlaylists},
	{"", []string{"d"}, "delete playlist", ContextPlaylists},
	{ActionAdd, []string{"a"}, "new playlist", ContextPlaylists},
	{"", []string{"enter"}, "play from here", ContextPlaylist},
	{"", []string{"K"}, "move up", ContextPlaylist},
	{"", []string{"J"}, "move down", ContextPlaylist},
	{"", []string{"d"}, "remove", ContextPlaylist},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Label returns the display form of a key.
func Label(key string) string {
	switch key {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return key
}
