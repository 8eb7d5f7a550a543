package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Green - playing row, active controls
	Secondary lipgloss.Color // Purple - progress gradient end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	BgCursor lipgloss.Color // Cursor/selection highlight
	Border   lipgloss.Color // Player bar frame

	Liked lipgloss.Color // Heart on liked songs
	Error lipgloss.Color // Status line failures

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style // Default text
	Muted    lipgloss.Style // Dimmed text
	Subtle   lipgloss.Style // Very dim text
	Title    lipgloss.Style // Bold, bright
	Playing  lipgloss.Style // Currently playing track
	Active   lipgloss.Style // Loaded but not playing track
	Cursor   lipgloss.Style // Cursor background highlight
	Liked    lipgloss.Style
	Error    lipgloss.Style
	Disabled lipgloss.Style // Controls that cannot act (no next track)
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#1db954"),
	Secondary: lipgloss.Color("#a78bfa"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#e0e0e0"),
	FgMuted:  lipgloss.Color("#a0a0a0"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#2a2a2a"),
	Border:   lipgloss.Color("#404040"),

	Liked: lipgloss.Color("#ff5c8a"),
	Error: lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Active: lipgloss.NewStyle().Foreground(t.Primary),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Liked:    lipgloss.NewStyle().Foreground(t.Liked),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Disabled: lipgloss.NewStyle().Foreground(t.FgSubtle),
	}
}
