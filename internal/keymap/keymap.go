// Package keymap defines key bindings for the application.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// Binding describes a single key binding for documentation.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "browse", "album"
}

// Bindings contains all key bindings for help generation and resolution.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionViewHome, []string{"f1", "1"}, "Home", "global"},
	{ActionViewLibrary, []string{"f2", "2"}, "Your library", "global"},
	{ActionBack, []string{"esc", "backspace"}, "Back", "global"},
	{ActionToggleDisplay, []string{"v"}, "Toggle player display", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"b", "pgup"}, "Previous track", "playback"},
	{ActionSeekBack, []string{"shift+left", "H"}, "Seek -5s", "playback"},
	{ActionSeekForward, []string{"shift+right", "L"}, "Seek +5s", "playback"},
	{ActionSeekBackLong, []string{"alt+shift+left"}, "Seek -30s", "playback"},
	{ActionSeekForwardLong, []string{"alt+shift+right"}, "Seek +30s", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionToggleMute, []string{"m"}, "Mute/unmute", "playback"},
	{ActionCycleRepeat, []string{"R"}, "Cycle repeat mode", "playback"},
	{ActionToggleShuffle, []string{"S"}, "Toggle shuffle", "playback"},
	{ActionLikeCurrent, []string{"F"}, "Like playing track", "playback"},
	{ActionClearQueue, []string{"ctrl+x"}, "Clear queue", "playback"},

	// Album grid / list pages
	{ActionMoveUp, []string{"k", "up"}, "Move up", "browse"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "browse"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "browse"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "browse"},
	{ActionPageUp, []string{"ctrl+u"}, "Half page up", "browse"},
	{ActionPageDown, []string{"ctrl+d"}, "Half page down", "browse"},
	{ActionSelect, []string{"enter", "l", "right"}, "Open album", "browse"},
	{ActionPlayAll, []string{"p"}, "Play album", "browse"},

	// Album detail
	{ActionSelect, []string{"enter"}, "Play song", "album"},
	{ActionPlayAll, []string{"p"}, "Play all", "album"},
	{ActionShufflePlay, []string{"P"}, "Shuffle play", "album"},
	{ActionToggleLike, []string{"f"}, "Like/unlike song", "album"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// HelpKeyMap adapts bindings to the bubbles help component.
type HelpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

// shortActions are shown in the one-line footer.
var shortActions = []Action{
	ActionPlayPause, ActionNextTrack, ActionPrevTrack, ActionSelect, ActionHelp, ActionQuit,
}

// NewHelpKeyMap builds the help view for the given contexts, one column each.
func NewHelpKeyMap(contexts ...string) HelpKeyMap {
	var m HelpKeyMap
	seen := make(map[Action]bool)
	for _, ctx := range contexts {
		var column []key.Binding
		for _, b := range ByContext(ctx) {
			column = append(column, toKeyBinding(b))
		}
		if len(column) > 0 {
			m.full = append(m.full, column)
		}
	}
	for _, action := range shortActions {
		for _, ctx := range contexts {
			for _, b := range ByContext(ctx) {
				if b.Action == action && !seen[action] {
					seen[action] = true
					m.short = append(m.short, toKeyBinding(b))
				}
			}
		}
	}
	return m
}

func toKeyBinding(b Binding) key.Binding {
	label := b.Keys[0]
	if label == " " {
		label = "space"
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(label, b.Description),
	)
}

// ShortHelp implements help.KeyMap.
func (m HelpKeyMap) ShortHelp() []key.Binding {
	return m.short
}

// FullHelp implements help.KeyMap.
func (m HelpKeyMap) FullHelp() [][]key.Binding {
	return m.full
}
