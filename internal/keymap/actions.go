// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit          Action = "quit"
	ActionHelp          Action = "help"
	ActionViewHome      Action = "view_home"
	ActionViewLibrary   Action = "view_library"
	ActionBack          Action = "back"
	ActionToggleDisplay Action = "toggle_player_display"

	// Playback actions
	ActionPlayPause       Action = "play_pause"
	ActionStop            Action = "stop"
	ActionNextTrack       Action = "next_track"
	ActionPrevTrack       Action = "prev_track"
	ActionSeekForward     Action = "seek_forward"
	ActionSeekBack        Action = "seek_back"
	ActionSeekForwardLong Action = "seek_forward_long"
	ActionSeekBackLong    Action = "seek_back_long"
	ActionVolumeUp        Action = "volume_up"
	ActionVolumeDown      Action = "volume_down"
	ActionToggleMute      Action = "toggle_mute"
	ActionCycleRepeat     Action = "cycle_repeat"
	ActionToggleShuffle   Action = "toggle_shuffle"
	ActionLikeCurrent     Action = "like_current"
	ActionClearQueue      Action = "clear_queue"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Selection/activation actions
	ActionSelect      Action = "select"       // enter - open album / play song
	ActionPlayAll     Action = "play_all"     // p - play album from the top
	ActionShufflePlay Action = "shuffle_play" // P - shuffle album
	ActionToggleLike  Action = "toggle_like"  // f - like the selected song
)

// IsTransport reports whether the action drives the playback session
// regardless of the focused page.
func (a Action) IsTransport() bool {
	switch a {
	case ActionPlayPause, ActionStop, ActionNextTrack, ActionPrevTrack,
		ActionSeekForward, ActionSeekBack, ActionSeekForwardLong, ActionSeekBackLong,
		ActionVolumeUp, ActionVolumeDown, ActionToggleMute,
		ActionCycleRepeat, ActionToggleShuffle, ActionLikeCurrent, ActionClearQueue:
		return true
	}
	return false
}
