package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the site palette.
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Highlight lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	CodeBlock  lipgloss.Color
}

// DefaultTheme returns the teal and purple site theme
func DefaultTheme() Theme {
	return Theme{
		Primary:   "#2DD4BF", // teal-400
		Secondary: "#A855F7", // purple-500
		Accent:    "#EC4899", // pink-500
		Highlight: "#14B8A6", // teal-500

		Success: "#0FD976",
		Warning: "#FFA500",
		Error:   "#F87171", // red-400
		Info:    "#2DD4BF",

		Background: "#000000",
		Foreground: "#FFFFFF",
		Muted:      "#6B7280", // gray-500
		Border:     "#333333",
		CodeBlock:  "#111827", // gray-900
	}
}

// Level maps a status word to its color. Unknown levels are muted.
func (t Theme) Level(level string) lipgloss.Color {
	switch level {
	case "success", "good":
		return t.Success
	case "warning":
		return t.Warning
	case "error", "danger":
		return t.Error
	case "info":
		return t.Info
	}
	return t.Muted
}

// BaseStyles builds lipgloss styles from a Theme.
type BaseStyles struct {
	Theme Theme
}

func NewBaseStyles() *BaseStyles {
	return &BaseStyles{Theme: DefaultTheme()}
}

func (s *BaseStyles) fg(c lipgloss.Color, bold bool) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Bold(bold)
}

func (s *BaseStyles) Title() lipgloss.Style { return s.fg(s.Theme.Primary, true).Padding(0, 1) }

func (s *BaseStyles) Subtitle() lipgloss.Style { return s.fg(s.Theme.Secondary, true).Padding(0, 1) }

func (s *BaseStyles) Label() lipgloss.Style { return s.fg(s.Theme.Primary, false) }

func (s *BaseStyles) Value() lipgloss.Style { return s.fg(s.Theme.Foreground, false) }

func (s *BaseStyles) Muted() lipgloss.Style { return s.fg(s.Theme.Muted, false) }

// Status is the bold message style for a level ("success", "error", ...).
func (s *BaseStyles) Status(level string) lipgloss.Style { return s.fg(s.Theme.Level(level), true) }

func (s *BaseStyles) Success() lipgloss.Style { return s.Status("success") }

func (s *BaseStyles) Warning() lipgloss.Style { return s.Status("warning") }

func (s *BaseStyles) Error() lipgloss.Style { return s.Status("error") }

func (s *BaseStyles) Info() lipgloss.Style { return s.Status("info") }

// Box is a rounded, padded border. Zero width or height leaves that axis
// to the content.
func (s *BaseStyles) Box(width, height int, borderColor lipgloss.Color) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2)
	if width > 0 {
		style = style.Width(width)
	}
	if height > 0 {
		style = style.Height(height)
	}
	return style
}

// Frame is the card box for a card outerWidth cells wide, border
// included. Focused cards get the primary border.
func (s *BaseStyles) Frame(outerWidth, height int, focused bool) lipgloss.Style {
	c := s.Theme.Border
	if focused {
		c = s.Theme.Primary
	}
	return s.Box(outerWidth-2, height, c)
}

// StatusIndicator renders "● status" in the level's color.
func (s *BaseStyles) StatusIndicator(status, level string) string {
	return s.Status(level).Render("● " + status)
}

// Gradient renders text with each rune colored along the teal to pink ramp
func (s *BaseStyles) Gradient(text string) string {
	ramp := []lipgloss.Color{s.Theme.Primary, s.Theme.Highlight, s.Theme.Secondary, s.Theme.Accent}
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var b strings.Builder
	for i, r := range runes {
		b.WriteString(s.fg(ramp[i*len(ramp)/len(runes)], true).Render(string(r)))
	}
	return b.String()
}

// Command renders a shell command the way the site shows code blocks
func (s *BaseStyles) Command(cmd string) string {
	return s.fg(s.Theme.Primary, false).
		Background(s.Theme.CodeBlock).
		Padding(0, 1).
		Render("$ " + cmd)
}

func (s *BaseStyles) Badge(text string, color lipgloss.Color) string {
	return s.fg(color, false).
		Background(s.Theme.Background).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Render(text)
}

func (s *BaseStyles) Hint(text string) string {
	return s.Muted().Italic(true).Render(text)
}

// KeyBinding renders "key description" with the key highlighted.
func (s *BaseStyles) KeyBinding(key, description string) string {
	return s.fg(s.Theme.Primary, true).Render(key) + " " + s.Value().Render(description)
}
