// Package theme maps named tokens to concrete colours and fonts for the
// renderers. Selection UI and persistence live outside this package.
package theme

import "github.com/charmbracelet/lipgloss"

// Tokens understood by [Theme.Lookup].
const (
	TokenAccent     = "accent"
	TokenMuted      = "muted"
	TokenBackground = "background"
	TokenText       = "text"
	TokenFontMono   = "font-mono"
)

// Theme defines one colour scheme.
type Theme struct {
	Name       string
	Label      string
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	FontMono   string
}

// Available themes
var (
	Terminal = Theme{
		Name:       "terminal",
		Label:      "Terminal Cathedral",
		Accent:     lipgloss.Color("#6dff95"), // phosphor green
		Muted:      lipgloss.Color("#88b39a"),
		Background: lipgloss.Color("#07110b"),
		Text:       lipgloss.Color("#d8ffe4"),
		FontMono:   "monospace",
	}

	Obsidian = Theme{
		Name:       "obsidian",
		Label:      "Obsidian Atelier",
		Accent:     lipgloss.Color("#c9a6ff"), // lilac
		Muted:      lipgloss.Color("#8a8199"),
		Background: lipgloss.Color("#0d0b10"),
		Text:       lipgloss.Color("#ece6f5"),
		FontMono:   "monospace",
	}

	Zine = Theme{
		Name:       "zine",
		Label:      "Zine Workshop",
		Accent:     lipgloss.Color("#ff5a36"), // risograph red
		Muted:      lipgloss.Color("#6b6257"),
		Background: lipgloss.Color("#f4efe6"),
		Text:       lipgloss.Color("#1d1a16"),
		FontMono:   "monospace",
	}

	// All available themes; the first is the default.
	Themes = []Theme{
		Terminal,
		Obsidian,
		Zine,
	}
)

// Lookup resolves a token, returning "" for unknown tokens so callers can
// apply their own fallback.
func (t Theme) Lookup(token string) string {
	switch token {
	case TokenAccent:
		return string(t.Accent)
	case TokenMuted:
		return string(t.Muted)
	case TokenBackground:
		return string(t.Background)
	case TokenText:
		return string(t.Text)
	case TokenFontMono:
		return t.FontMono
	}
	return ""
}

// Get returns a theme by name, falling back to [Terminal].
func Get(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Terminal
}

// Valid reports whether name is a known theme.
func Valid(name string) bool {
	for _, t := range Themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Names returns the list of available theme names.
func Names() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
