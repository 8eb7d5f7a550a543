package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Album     string
	Playlist  string
	Play      string
	Pause     string
	Previous  string
	Next      string
	Volume    string
	Mute      string
	Shuffle   string
	RepeatAll string
	RepeatOne string
	Favorite  string
	Playing   string // row marker for the active track
}

var (
	nerdIcons = Icons{
		Album:     "󰀥 ", // nf-md-album
		Playlist:  "󰲸 ", // nf-md-playlist_music
		Play:      "\uf04b", // nf-fa-play
		Pause:     "\uf04c", // nf-fa-pause
		Previous:  "\uf048", // nf-fa-step_backward
		Next:      "\uf051", // nf-fa-step_forward
		Volume:    "󰕾",      // nf-md-volume_high
		Mute:      "󰝟",      // nf-md-volume_off
		Shuffle:   "󰒟",      // nf-md-shuffle
		RepeatAll: "󰑖",      // nf-md-repeat
		RepeatOne: "󰑘",      // nf-md-repeat_once
		Favorite:  "󰣐",      // nf-md-heart
		Playing:   "󰐊",      // nf-md-play
	}

	unicodeIcons = Icons{
		Album:     "💿 ",
		Playlist:  "📋 ",
		Play:      "▶",
		Pause:     "⏸",
		Previous:  "⏮",
		Next:      "⏭",
		Volume:    "🔊",
		Mute:      "🔇",
		Shuffle:   "🔀",
		RepeatAll: "🔁",
		RepeatOne: "🔂",
		Favorite:  "♥",
		Playing:   "♪",
	}

	noneIcons = Icons{
		Album:     "",
		Playlist:  "",
		Play:      ">",
		Pause:     "||",
		Previous:  "|<",
		Next:      ">|",
		Volume:    "Vol",
		Mute:      "Mute",
		Shuffle:   "[S]",
		RepeatAll: "[R]",
		RepeatOne: "[1]",
		Favorite:  "*",
		Playing:   ">",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatAlbum formats an album name with the appropriate icon.
func FormatAlbum(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Album + name
}

// FormatPlaylist formats a playlist name with the appropriate icon.
func FormatPlaylist(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Playlist + name
}

// Play returns the play icon.
func Play() string { return current.Play }

// Pause returns the pause icon.
func Pause() string { return current.Pause }

// Previous returns the previous-track icon.
func Previous() string { return current.Previous }

// Next returns the next-track icon.
func Next() string { return current.Next }

// Volume returns the speaker icon, or the muted one when muted is set.
func Volume(muted bool) string {
	if muted {
		return current.Mute
	}
	return current.Volume
}

// Shuffle returns the shuffle icon.
func Shuffle() string {
	return current.Shuffle
}

// RepeatAll returns the repeat all icon.
func RepeatAll() string {
	return current.RepeatAll
}

// RepeatOne returns the repeat one icon.
func RepeatOne() string {
	return current.RepeatOne
}

// Favorite returns the favorite/heart icon.
func Favorite() string {
	return current.Favorite
}

// Playing returns the marker drawn next to the active row.
func Playing() string {
	return current.Playing
}
