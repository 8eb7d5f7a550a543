//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectNonEmpty  bool
		expectMinLength int
	}{
		{"global context", "global", true, 5},
		{"playback context", "playback", true, 10},
		{"browse context", "browse", true, 5},
		{"album context", "album", true, 3},
		{"unknown context returns empty", "unknown", false, 0},
		{"empty context returns empty", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectNonEmpty && len(result) == 0 {
				t.Errorf("ByContext(%q) returned empty, expected non-empty", tt.context)
			}
			if !tt.expectNonEmpty && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}
			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestByContextPlaybackBindings(t *testing.T) {
	playbackBindings := ByContext("playback")

	for _, b := range playbackBindings {
		if !b.Action.IsTransport() {
			t.Errorf("playback binding %q is not a transport action", b.Action)
		}
	}

	expectedActions := []Action{
		ActionPlayPause,
		ActionStop,
		ActionNextTrack,
		ActionPrevTrack,
		ActionToggleMute,
		ActionCycleRepeat,
		ActionToggleShuffle,
	}

	for _, action := range expectedActions {
		found := false
		for _, b := range playbackBindings {
			if b.Action == action {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected action %q in playback bindings", action)
		}
	}
}

func TestIsTransport(t *testing.T) {
	if !ActionSeekForward.IsTransport() {
		t.Error("seek should be a transport action")
	}
	if ActionSelect.IsTransport() || ActionQuit.IsTransport() || ActionPlayAll.IsTransport() {
		t.Error("page actions should not be transport actions")
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for i, b := range Bindings {
		if b.Action == "" {
			t.Errorf("binding[%d] has empty Action", i)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		}
		if b.Context == "" {
			t.Errorf("binding[%d] (%s) has empty Context", i, b.Action)
		}
	}
}

func TestBindingsHaveValidContexts(t *testing.T) {
	validContexts := map[string]bool{
		"global":   true,
		"playback": true,
		"browse":   true,
		"album":    true,
	}

	for i, b := range Bindings {
		if !validContexts[b.Context] {
			t.Errorf("binding[%d] (%s) has invalid context: %q", i, b.Action, b.Context)
		}
	}
}

func TestNoKeyBoundTwiceInOneContext(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range Bindings {
		for _, k := range b.Keys {
			id := b.Context + "/" + k
			if prev, ok := seen[id]; ok && prev != b.Action {
				t.Errorf("key %q bound to %q and %q in %s", k, prev, b.Action, b.Context)
			}
			seen[id] = b.Action
		}
	}
}

func TestNewHelpKeyMap(t *testing.T) {
	m := NewHelpKeyMap("album", "playback", "global")

	full := m.FullHelp()
	if len(full) != 3 {
		t.Fatalf("FullHelp() has %d columns, want 3", len(full))
	}
	if len(full[0]) != len(ByContext("album")) {
		t.Errorf("album column has %d bindings, want %d", len(full[0]), len(ByContext("album")))
	}

	short := m.ShortHelp()
	if len(short) != len(shortActions) {
		t.Fatalf("ShortHelp() has %d bindings, want %d", len(short), len(shortActions))
	}
	if got := short[0].Help().Key; got != "space" {
		t.Errorf("play/pause help key = %q, want %q", got, "space")
	}
	if !key.Matches(keyMsg("enter"), short[3]) {
		t.Error("select binding should match enter")
	}
}

func TestNewHelpKeyMap_UnknownContext(t *testing.T) {
	m := NewHelpKeyMap("unknown")
	if len(m.FullHelp()) != 0 || len(m.ShortHelp()) != 0 {
		t.Error("unknown context should produce an empty help map")
	}
}

// keyMsg satisfies fmt.Stringer the way tea.KeyMsg does for key.Matches.
type keyMsg string

func (k keyMsg) String() string { return string(k) }
