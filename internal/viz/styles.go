package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/foxjammin/sigilry/internal/theme"
)

// Styles are rebuilt from the active theme on every View.
type Styles struct {
	Panel   lipgloss.Style
	Header  lipgloss.Style
	Sigil   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Running lipgloss.Style
	Paused  lipgloss.Style
	Hint    lipgloss.Style
	Graph   lipgloss.Style
}

func NewStyles(t theme.Theme) Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1).
			Width(sidePanelWidth - 2),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		Sigil:   lipgloss.NewStyle().Foreground(t.Accent).MarginTop(1),
		Label:   lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		Value:   lipgloss.NewStyle().Foreground(t.Text),
		Running: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Paused:  lipgloss.NewStyle().Bold(true).Foreground(t.Muted),
		Hint:    lipgloss.NewStyle().Foreground(t.Muted).Italic(true).MarginTop(1),
		Graph:   lipgloss.NewStyle().Foreground(t.Accent),
	}
}

// GradientText shades text from one colour to another, interpolating in
// Luv space.
func GradientText(text string, from, to lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	start, err1 := colorful.Hex(string(from))
	end, err2 := colorful.Hex(string(to))
	if err1 != nil || err2 != nil {
		return text
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := start.BlendLuv(end, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// Separator draws a centred diamond rule.
func Separator(width int, style lipgloss.Style) string {
	if width < 8 {
		return style.Render(strings.Repeat("─", max(0, width)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-2)
	right := strings.Repeat("─", width-mid-3)
	return style.Render(left + " ◆ " + right)
}
