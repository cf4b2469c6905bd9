// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionSwitchView Action = "switch_view"
	ActionBack       Action = "back"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionNext        Action = "next"
	ActionPrevious    Action = "previous"
	ActionSkipForward Action = "skip_forward"
	ActionSkipBack    Action = "skip_back"
	ActionVolumeUp    Action = "volume_up"
	ActionVolumeDown  Action = "volume_down"
	ActionToggleLoop  Action = "toggle_loop"

	// List actions
	ActionAdd Action = "add"
)
