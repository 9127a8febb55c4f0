package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// inner is the text area of a card: border and 1x2 padding removed.
func inner(width, height int) (int, int) {
	return max(width-6, 10), max(height-4, 3)
}

// frame joins lines and draws them in box, clipped to the box height.
func frame(box lipgloss.Style, lines []string, height, innerHeight int) string {
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if height > 0 {
		content = Clip(content, innerHeight)
	}
	return box.Render(content)
}

// PlatformCard renders one download target (macOS, Linux, Windows)
type PlatformCard struct {
	Icon     string
	Title    string
	Desc     string
	Rows     [][2]string // label, value
	Button   string
	Link     string
	Detected string // marker shown when this is the user's platform
	Width    int
	Height   int
	Focused  bool
	Disabled bool
}

// Render creates the platform card view
func (p *PlatformCard) Render() string {
	styles := NewBaseStyles()
	innerWidth, innerHeight := inner(p.Width, p.Height)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Theme.Foreground).
		Render(strings.TrimSpace(p.Icon + " " + p.Title))
	if p.Detected != "" {
		title += " " + styles.StatusIndicator(p.Detected, "info")
	}

	lines := []string{title}
	if p.Desc != "" {
		lines = append(lines, styles.Muted().Render(TruncateString(p.Desc, innerWidth)))
	}
	lines = append(lines, "")

	for _, row := range p.Rows {
		label := styles.Label().Render(row[0] + ":")
		value := styles.Value().Render(TruncateString(row[1], innerWidth-lipgloss.Width(row[0])-2))
		lines = append(lines, label+" "+value)
	}

	if p.Button != "" {
		btn := lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Theme.Background).
			Background(styles.Theme.Primary).
			Padding(0, 1)
		if p.Disabled {
			btn = btn.Background(styles.Theme.Muted)
		} else if !p.Focused {
			btn = btn.Background(styles.Theme.Secondary)
		}
		lines = append(lines, "", btn.Render(TruncateString(p.Button, innerWidth-2)))
	}
	if p.Link != "" {
		lines = append(lines, styles.Muted().Render(TruncateString(p.Link, innerWidth)))
	}

	return frame(styles.Frame(p.Width, p.Height, p.Focused), lines, p.Height, innerHeight)
}

// InfoCard renders an informational card
type InfoCard struct {
	Title   string
	Lines   []string
	Width   int
	Height  int
	Focused bool
}

// Render creates the info card view
func (i *InfoCard) Render() string {
	styles := NewBaseStyles()
	innerWidth, innerHeight := inner(i.Width, i.Height)

	// Title
	title := ""
	if i.Title != "" {
		title = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Theme.Primary).
			Width(innerWidth).
			Render(i.Title)
	}

	// Lines
	contentLines := []string{}
	if title != "" {
		contentLines = append(contentLines, title, "")
	}

	for _, line := range i.Lines {
		contentLines = append(contentLines, lipgloss.NewStyle().
			Foreground(styles.Theme.Foreground).
			Width(innerWidth).
			Render(line))
	}

	return frame(styles.Frame(i.Width, i.Height, i.Focused), contentLines, i.Height, innerHeight)
}

// ListCard renders a selectable list
type ListCard struct {
	Title        string
	Items        []string
	Hints        []string // optional right-aligned text per item
	SelectedItem int
	Empty        string
	Width        int
	Height       int
}

// Render creates the list card view
func (l *ListCard) Render() string {
	styles := NewBaseStyles()
	innerWidth, innerHeight := inner(l.Width, l.Height)

	// Title
	contentLines := []string{}
	if l.Title != "" {
		contentLines = append(contentLines, l.Title, "")
	}

	if len(l.Items) == 0 && l.Empty != "" {
		contentLines = append(contentLines, lipgloss.NewStyle().
			Foreground(styles.Theme.Muted).
			Width(innerWidth).
			Align(lipgloss.Center).
			Render(l.Empty))
	}

	for i, item := range l.Items {
		hint := ""
		if i < len(l.Hints) {
			hint = l.Hints[i]
		}
		truncated := TruncateString(item, innerWidth-3-lipgloss.Width(hint))
		gap := innerWidth - 2 - lipgloss.Width(truncated) - lipgloss.Width(hint)
		if gap < 1 {
			gap = 1
		}
		text := truncated + strings.Repeat(" ", gap) + hint

		if i == l.SelectedItem {
			line := lipgloss.NewStyle().
				Foreground(styles.Theme.Primary).
				Bold(true).
				Width(innerWidth).
				Render("▶ " + text)
			contentLines = append(contentLines, line)
		} else {
			line := lipgloss.NewStyle().
				Foreground(styles.Theme.Foreground).
				Width(innerWidth).
				Render("  " + text)
			contentLines = append(contentLines, line)
		}
	}

	return frame(styles.Frame(l.Width, l.Height, true), contentLines, l.Height, innerHeight)
}

var statusIcons = map[string]string{
	"success": "✓",
	"error":   "✗",
	"warning": "⚠",
	"info":    "ℹ",
}

// StatusCard renders a status message card
type StatusCard struct {
	Type    string // "success", "error", "warning", "info"
	Message string
	Width   int
}

// Render creates the status card view
func (s *StatusCard) Render() string {
	if s.Message == "" {
		return ""
	}

	styles := NewBaseStyles()

	kind := s.Type
	if _, ok := statusIcons[kind]; !ok {
		kind = "info"
	}
	content := TruncateString(fmt.Sprintf("%s %s", statusIcons[kind], s.Message), s.Width)
	return styles.Status(kind).Width(s.Width).Render(content)
}

// Grid renders items in a grid layout
type Grid struct {
	Items   []string
	Columns int
	Spacing int
	Width   int
}

// ColumnWidth is the width each item should be rendered at
func (g *Grid) ColumnWidth() int {
	if g.Columns <= 0 {
		return g.Width
	}
	w := (g.Width - g.Spacing*(g.Columns-1)) / g.Columns
	if w < 10 {
		w = 10
	}
	return w
}

// Render creates a grid view
func (g *Grid) Render() string {
	if len(g.Items) == 0 || g.Columns <= 0 {
		return ""
	}

	colWidth := g.ColumnWidth()
	spacer := strings.Repeat(" ", g.Spacing)

	rows := []string{}
	for i := 0; i < len(g.Items); i += g.Columns {
		rowItems := []string{}
		for j := 0; j < g.Columns && i+j < len(g.Items); j++ {
			if j > 0 && g.Spacing > 0 {
				rowItems = append(rowItems, spacer)
			}
			rowItems = append(rowItems, lipgloss.NewStyle().
				Width(colWidth).
				Render(g.Items[i+j]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rowItems...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
